// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package main

import "github.com/scc-digitalhub/mycloud-cli-sdk/internal/cli"

func main() {
	cli.Main(cli.MakeDir())
}
