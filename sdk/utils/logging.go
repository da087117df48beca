// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a console logger writing to w, normally stderr: stdout
// is reserved for server output. Levels are coloured unless color.NoColor
// is set (not a terminal, or NO_COLOR).
func NewLogger(w io.Writer, verbose bool) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if color.NoColor {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder

	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	return zap.New(
		zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(zapcore.AddSync(w)), level),
	)
}
