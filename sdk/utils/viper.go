// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/scc-digitalhub/mycloud-cli-sdk/sdk/config"
	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

// Settings holds all logical keys. Tags:
// - vkey: Viper key
// - env: canonical env name (UPPER_SNAKE). If empty, derived from vkey
// - default: optional default to set if key is unset
// - secret: "true" if sensitive
type Settings struct {
	MycloudEndpoint    string `vkey:"mycloud_endpoint"      env:"MYCLOUD_ENDPOINT"      default:"http://localhost:5000"`
	MycloudTimeout     string `vkey:"mycloud_timeout"       env:"MYCLOUD_TIMEOUT"       default:"0s"`
	AwsAccessKeyID     string `vkey:"aws_access_key_id"     env:"AWS_ACCESS_KEY_ID"     secret:"true"`
	AwsSecretAccessKey string `vkey:"aws_secret_access_key" env:"AWS_SECRET_ACCESS_KEY" secret:"true"`
	AwsSessionToken    string `vkey:"aws_session_token"     env:"AWS_SESSION_TOKEN"     secret:"true"`
	AwsRegion          string `vkey:"aws_region"            env:"AWS_REGION"`
	AwsEndpointURL     string `vkey:"aws_endpoint_url"      env:"AWS_ENDPOINT_URL"`
}

// IniPath is $MYCLOUD_INI, or ~/.mycloud.ini.
func IniPath() string {
	if p := os.Getenv(IniPathEnv); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return home + string(os.PathSeparator) + IniName
}

// resolveEnvName: --env > "default"
func resolveEnvName(optionalEnv ...string) string {
	if len(optionalEnv) > 0 && optionalEnv[0] != "" && strings.ToLower(optionalEnv[0]) != "null" {
		return optionalEnv[0]
	}
	return "default"
}

// BindEnvFromStruct binds env vars and defaults for every Settings field.
func BindEnvFromStruct(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	rt := reflect.TypeOf(Settings{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)

		key := f.Tag.Get("vkey")
		if key == "" {
			continue
		}

		env := f.Tag.Get("env")
		if env == "" {
			env = strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		}
		_ = v.BindEnv(key, env)

		if def := f.Tag.Get("default"); def != "" {
			v.SetDefault(key, def)
		}
	}
}

// loadIniSection copies [DEFAULT] then the selected section into v as
// config values, so that env vars and flags still take precedence.
func loadIniSection(v *viper.Viper, cfg *ini.File, env string) string {
	def := cfg.Section("DEFAULT")
	selected := def
	name := "DEFAULT"
	if env != "" && cfg.HasSection(env) {
		selected = cfg.Section(env)
		name = env
	}

	merged := make(map[string]interface{})
	for _, k := range def.Keys() {
		merged[k.Name()] = k.Value()
	}
	if selected != def {
		for _, k := range selected.Keys() {
			merged[k.Name()] = k.Value()
		}
	}
	delete(merged, CurrentEnvironment)
	_ = v.MergeConfigMap(merged)
	return name
}

// RegisterIniCfgWithViper:
// 1) bind ENV from struct
// 2) load the INI file if present (a missing file is not an error)
// 3) load the active section; active env: --env > DEFAULT.current_environment > default
func RegisterIniCfgWithViper(v *viper.Viper, iniPath string, optionalEnv ...string) error {
	BindEnvFromStruct(v)

	env := resolveEnvName(optionalEnv...)
	if _, err := os.Stat(iniPath); err != nil {
		if os.IsNotExist(err) {
			v.Set(CurrentEnvironment, env)
			return nil
		}
		return fmt.Errorf("cannot access ini file: %w", err)
	}

	cfg, err := ini.Load(iniPath)
	if err != nil {
		return fmt.Errorf("failed to read ini file: %w", err)
	}

	if env == "default" {
		if cur := cfg.Section("DEFAULT").Key(CurrentEnvironment).String(); cur != "" {
			env = cur
		}
	}
	if env != "default" && !cfg.HasSection(env) {
		return fmt.Errorf("environment %q not found in %s", env, iniPath)
	}

	v.Set(CurrentEnvironment, loadIniSection(v, cfg, env))
	return nil
}

// SDKConfig maps the resolved viper values onto the SDK config.
func SDKConfig(v *viper.Viper) (config.Config, error) {
	var timeout time.Duration
	if raw := v.GetString(MycloudTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return config.Config{}, fmt.Errorf("invalid %s %q: %w", MycloudTimeout, raw, err)
		}
		timeout = d
	}

	return config.Config{
		Core: config.CoreConfig{
			BaseURL: v.GetString(MycloudEndpoint),
			Timeout: timeout,
		},
		S3: config.S3Config{
			AccessKey:   v.GetString(AwsAccessKeyID),
			SecretKey:   v.GetString(AwsSecretAccessKey),
			AccessToken: v.GetString(AwsSessionToken),
			Region:      v.GetString(AwsRegion),
			EndpointURL: v.GetString(AwsEndpointURL),
		},
	}.WithDefaults(), nil
}
