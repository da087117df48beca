// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// ParsedPath is a location given on the command line. Scheme is "file" for
// plain local paths.
type ParsedPath struct {
	Scheme   string
	Host     string
	Path     string
	Filename string
}

// IsLocal reports whether the location refers to the local filesystem.
func (p *ParsedPath) IsLocal() bool {
	return p.Scheme == "file"
}

// ParsePath splits s3://bucket/key and http(s):// locations; anything
// without a recognised scheme is a local path and is kept verbatim.
func ParsePath(p string) (*ParsedPath, error) {
	i := strings.Index(p, "://")
	if i <= 0 {
		return &ParsedPath{Scheme: "file", Path: p, Filename: localBase(p)}, nil
	}

	scheme := strings.ToLower(p[:i])
	switch scheme {
	case "s3", "http", "https":
	default:
		return nil, fmt.Errorf("unsupported scheme %q", scheme)
	}

	u, err := url.Parse(p)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", p, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("missing host in %q", p)
	}

	parsed := &ParsedPath{
		Scheme:   scheme,
		Host:     u.Host,
		Path:     u.Path,
		Filename: path.Base(u.Path),
	}
	if scheme == "http" || scheme == "https" {
		// keep the whole url, it is what gets fetched
		parsed.Path = p
	}
	if strings.HasSuffix(u.Path, "/") || u.Path == "" {
		parsed.Filename = ""
	}
	return parsed, nil
}

// localBase is the base name of a local path, accepting both separators.
func localBase(p string) string {
	p = strings.TrimRight(p, `/\`)
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		p = p[i+1:]
	}
	return p
}
