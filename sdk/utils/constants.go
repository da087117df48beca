// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

const (
	IniName            = ".mycloud.ini"
	IniPathEnv         = "MYCLOUD_INI"
	CurrentEnvironment = "current_environment"

	MycloudEndpoint    = "mycloud_endpoint"
	MycloudTimeout     = "mycloud_timeout"
	AwsAccessKeyID     = "aws_access_key_id"
	AwsSecretAccessKey = "aws_secret_access_key"
	AwsSessionToken    = "aws_session_token"
	AwsRegion          = "aws_region"
	AwsEndpointURL     = "aws_endpoint_url"
)

// Output formats understood by FormatOutput.
const (
	FormatShort = "short"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatText  = "text"
)
