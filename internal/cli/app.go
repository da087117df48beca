// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/scc-digitalhub/mycloud-cli-sdk/sdk/services/files"
	"github.com/scc-digitalhub/mycloud-cli-sdk/sdk/utils"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Command describes one binary.
type Command struct {
	Kind      files.Kind
	ArgsUsage string
	Usage     string
	Flags     []cli.Flag
	// Options maps command flags onto build options.
	Options func(ctx *cli.Context) []files.BuildOption
}

var (
	BaseURLFlag = &cli.StringFlag{
		Name:    "base-url",
		Aliases: []string{"u"},
		Usage:   "file-server endpoint (default http://localhost:5000, env MYCLOUD_ENDPOINT)",
	}
	EnvFlag = &cli.StringFlag{
		Name:    "env",
		Aliases: []string{"e"},
		Usage:   "environment section of ~/.mycloud.ini",
	}
	VerboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "debug logging on stderr",
	}
)

// Main runs the command on os.Args and exits with its status.
func Main(c Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := Run(ctx, c, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// Run returns 0 on success and 1 on any validation or transport error,
// after writing a one-line diagnostic to stderr.
func Run(ctx context.Context, c Command, args []string, stdout, stderr io.Writer) int {
	app := NewApp(c, stdout, stderr)
	if err := app.RunContext(ctx, flagsFirst(app.Flags, args)); err != nil {
		fmt.Fprintln(stderr, color.RedString("error: %v", err))
		return 1
	}
	return 0
}

func NewApp(c Command, stdout, stderr io.Writer) *cli.App {
	flags := append([]cli.Flag{BaseURLFlag, EnvFlag, VerboseFlag}, c.Flags...)
	return &cli.App{
		Name:            string(c.Kind),
		Usage:           c.Usage,
		ArgsUsage:       c.ArgsUsage,
		Flags:           flags,
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		// errors are reported by Run, never by exiting from inside the app
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(ctx *cli.Context) error {
			return action(ctx, c)
		},
	}
}

func action(ctx *cli.Context, c Command) error {
	var opts []files.BuildOption
	if c.Options != nil {
		opts = c.Options(ctx)
	}

	req, err := files.Build(c.Kind, ctx.Args().Slice(), opts...)
	if err != nil {
		if errors.Is(err, files.ErrWrongArgCount) {
			usage := string(c.Kind)
			if c.ArgsUsage != "" {
				usage += " " + c.ArgsUsage
			}
			return fmt.Errorf("%w (usage: %s)", err, usage)
		}
		return err
	}

	v := viper.New()
	if err := utils.RegisterIniCfgWithViper(v, utils.IniPath(), ctx.String(EnvFlag.Name)); err != nil {
		return err
	}
	if ctx.IsSet(BaseURLFlag.Name) {
		v.Set(utils.MycloudEndpoint, ctx.String(BaseURLFlag.Name))
	}
	conf, err := utils.SDKConfig(v)
	if err != nil {
		return err
	}

	logger := utils.NewLogger(ctx.App.ErrWriter, ctx.Bool(VerboseFlag.Name))
	defer func() { _ = logger.Sync() }()
	logger.Debug("configuration resolved",
		zap.String("environment", v.GetString(utils.CurrentEnvironment)),
		zap.String("endpoint", conf.Core.BaseURL),
	)

	svc, err := files.NewFilesService(ctx.Context, conf, files.WithLogger(logger))
	if err != nil {
		return err
	}

	res, err := svc.Dispatch(ctx.Context, req, ctx.App.Writer)
	if err != nil {
		return err
	}
	if res.Path != "" {
		logger.Info("file saved", zap.String("path", res.Path), zap.String("size", utils.HumanBytes(res.Bytes)))
	}
	return nil
}
