// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// DefaultBaseURL is the file-server endpoint used when none is configured.
const DefaultBaseURL = "http://localhost:5000"

// Config passed to the SDK (no viper/INI here)
type Config struct {
	Core CoreConfig
	S3   S3Config
}

type CoreConfig struct {
	BaseURL string
	// Timeout bounds a whole call; zero means no limit.
	Timeout time.Duration
}

type S3Config struct {
	AccessKey   string
	SecretKey   string
	AccessToken string
	Region      string
	EndpointURL string
}

// WithDefaults returns a copy of c with empty fields filled in.
func (c Config) WithDefaults() Config {
	if c.Core.BaseURL == "" {
		c.Core.BaseURL = DefaultBaseURL
	}
	return c
}
