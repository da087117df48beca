// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/scc-digitalhub/mycloud-cli-sdk/sdk/services/files"
	"github.com/urfave/cli/v2"
)

var (
	DestFlag = &cli.StringFlag{
		Name:    "dest",
		Aliases: []string{"d"},
		Usage:   "local directory/file or s3://bucket/prefix/ to store the file in",
	}
	ParentFlag = &cli.StringFlag{
		Name:    "parent",
		Aliases: []string{"p"},
		Usage:   "list the content of this directory id",
	}
	FormatFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
	}
)

func Download() Command {
	return Command{
		Kind:      files.KindDownload,
		ArgsUsage: "<file_id>",
		Usage:     "download a file, saved under the name suggested by the server",
		Flags:     []cli.Flag{DestFlag},
		Options: func(ctx *cli.Context) []files.BuildOption {
			return []files.BuildOption{files.WithDestination(ctx.String(DestFlag.Name))}
		},
	}
}

func ListFiles() Command {
	return Command{
		Kind:  files.KindListFiles,
		Usage: "list the files stored on the server",
		Flags: []cli.Flag{ParentFlag, FormatFlag},
		Options: func(ctx *cli.Context) []files.BuildOption {
			return []files.BuildOption{
				files.WithParent(ctx.String(ParentFlag.Name)),
				files.WithFormat(ctx.String(FormatFlag.Name)),
			}
		},
	}
}

func MakeDir() Command {
	return Command{
		Kind:      files.KindMakeDir,
		ArgsUsage: "<dirname>",
		Usage:     "create a directory",
	}
}

func Upload() Command {
	return Command{
		Kind:      files.KindUpload,
		ArgsUsage: "<local_path|s3://bucket/key>",
		Usage:     "upload a file",
	}
}

func DeleteFile() Command {
	return Command{
		Kind:      files.KindDelete,
		ArgsUsage: "<file_id>",
		Usage:     "delete a file or a directory with its content",
	}
}

func StorageUsage() Command {
	return Command{
		Kind:  files.KindStorageUsage,
		Usage: "show used and available storage",
		Flags: []cli.Flag{FormatFlag},
		Options: func(ctx *cli.Context) []files.BuildOption {
			return []files.BuildOption{files.WithFormat(ctx.String(FormatFlag.Name))}
		},
	}
}

func DownloadMultiple() Command {
	return Command{
		Kind:      files.KindDownloadMultiple,
		ArgsUsage: "<file_id> [file_id...]",
		Usage:     "download several files as one zip archive",
		Flags:     []cli.Flag{DestFlag},
		Options: func(ctx *cli.Context) []files.BuildOption {
			return []files.BuildOption{files.WithDestination(ctx.String(DestFlag.Name))}
		},
	}
}

func View() Command {
	return Command{
		Kind:      files.KindView,
		ArgsUsage: "<file_id>",
		Usage:     "print the content of a file",
	}
}
