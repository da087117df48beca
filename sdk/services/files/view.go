// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"io"
	"net/http"
)

// View performs GET {base}/view/{id} and writes the inline content to out.
func (s *FilesService) View(ctx context.Context, req View, out io.Writer) (*Result, error) {
	url := s.http.BuildURL("view", req.FileID, nil)
	return s.passThrough(ctx, "view", http.MethodGet, url, "", nil, out)
}
