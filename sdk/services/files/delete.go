// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"io"
	"net/http"
)

func (s *FilesService) Delete(ctx context.Context, req Delete, out io.Writer) (*Result, error) {
	url := s.http.BuildURL("delete", req.FileID, nil)
	return s.passThrough(ctx, "delete", http.MethodDelete, url, "", nil, out)
}
