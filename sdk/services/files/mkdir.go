// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MakeDir performs POST {base}/mkdir with {"dirname": ...}.
func (s *FilesService) MakeDir(ctx context.Context, req MakeDir, out io.Writer) (*Result, error) {
	body, err := json.Marshal(mkdirBody{Dirname: req.Dirname})
	if err != nil {
		return nil, &TransportError{Kind: ErrClientUnavailable, Op: "make dir", Err: fmt.Errorf("failed to marshal: %w", err)}
	}

	url := s.http.BuildURL("mkdir", "", nil)
	return s.passThrough(ctx, "make dir", http.MethodPost, url, "application/json", bytes.NewReader(body), out)
}
