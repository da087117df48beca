// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// flagsFirst moves flags (with their values) in front of the positional
// arguments, so "download 42 --dest out" parses like "download --dest out 42".
// Everything after "--" stays positional. args[0] is the program name.
func flagsFirst(flags []cli.Flag, args []string) []string {
	if len(args) < 2 {
		return args
	}

	takesValue := map[string]bool{}
	for _, f := range flags {
		v := false
		if df, ok := f.(cli.DocGenerationFlag); ok {
			v = df.TakesValue()
		}
		for _, name := range f.Names() {
			takesValue[name] = v
		}
	}

	opts := []string{args[0]}
	var positional []string
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		tok := rest[i]
		if tok == "--" {
			positional = append(positional, rest[i+1:]...)
			break
		}
		if len(tok) < 2 || tok[0] != '-' {
			positional = append(positional, tok)
			continue
		}
		opts = append(opts, tok)
		name := strings.TrimLeft(tok, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if takesValue[name] && i+1 < len(rest) {
			i++
			opts = append(opts, rest[i])
		}
	}

	if len(positional) == 0 {
		return opts
	}
	return append(append(opts, "--"), positional...)
}
