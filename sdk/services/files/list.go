// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/scc-digitalhub/mycloud-cli-sdk/sdk/utils"
)

// ListFiles performs GET {base}/files?format=text. json output is passed
// through as well; yaml is requested as json and converted.
func (s *FilesService) ListFiles(ctx context.Context, req ListFiles, out io.Writer) (*Result, error) {
	format := utils.FormatText
	if req.Format != "" {
		format = utils.TranslateFormat(req.Format)
	}

	params := map[string]string{"parentId": req.ParentID}
	switch format {
	case utils.FormatJSON, utils.FormatYAML:
		params["format"] = "json"
	default:
		params["format"] = "text"
	}

	url := s.http.BuildURL("files", "", params)
	if format != utils.FormatYAML {
		return s.passThrough(ctx, "list files", http.MethodGet, url, "", nil, out)
	}

	var buf bytes.Buffer
	res, err := s.passThrough(ctx, "list files", http.MethodGet, url, "", nil, &buf)
	if err != nil {
		return nil, err
	}
	return s.writeFormatted(res, buf.Bytes(), format, out)
}

// writeFormatted converts a JSON body and writes it to out.
func (s *FilesService) writeFormatted(res *Result, body []byte, format string, out io.Writer) (*Result, error) {
	b, err := utils.FormatOutput(body, format)
	if err != nil {
		return nil, &TransportError{Kind: ErrCallFailed, Op: "format output", Err: err}
	}
	n, err := out.Write(b)
	if err != nil {
		return nil, &TransportError{Kind: ErrCallFailed, Op: "format output", Err: fmt.Errorf("failed to write output: %w", err)}
	}
	res.Bytes = int64(n)
	return res, nil
}
