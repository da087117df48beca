// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"sigs.k8s.io/yaml"
)

func TranslateFormat(format string) string {
	switch strings.ToLower(format) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	case "text", "txt":
		return FormatText
	default:
		return FormatShort
	}
}

// FormatOutput renders a JSON response body. json is indented, yaml is
// converted, anything else returns the body unchanged. json and yaml
// require a valid JSON body.
func FormatOutput(body []byte, format string) ([]byte, error) {
	f := TranslateFormat(format)
	if (f == FormatJSON || f == FormatYAML) && !json.Valid(body) {
		return nil, fmt.Errorf("response is not json")
	}
	switch f {
	case FormatJSON:
		return []byte(PrettyJSON(body) + "\n"), nil
	case FormatYAML:
		out, err := yaml.JSONToYAML(body)
		if err != nil {
			return nil, fmt.Errorf("yaml conversion failed: %w", err)
		}
		return out, nil
	default:
		return body, nil
	}
}

func PrettyJSON(b []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return string(b) // fallback: unindented
	}
	return out.String()
}

// HumanBytes prints n with a binary unit.
func HumanBytes(n int64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
		TB = 1024 * GB
	)
	switch {
	case n >= TB:
		return fmt.Sprintf("%.2f TB", float64(n)/float64(TB))
	case n >= GB:
		return fmt.Sprintf("%.2f GB", float64(n)/float64(GB))
	case n >= MB:
		return fmt.Sprintf("%.2f MB", float64(n)/float64(MB))
	case n >= KB:
		return fmt.Sprintf("%.2f KB", float64(n)/float64(KB))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
