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

	"github.com/scc-digitalhub/mycloud-cli-sdk/sdk/utils"
)

// StorageUsage performs GET {base}/storage-usage. The json format is the
// raw body; short prints a single summary line.
func (s *FilesService) StorageUsage(ctx context.Context, req StorageUsage, out io.Writer) (*Result, error) {
	url := s.http.BuildURL("storage-usage", "", nil)
	format := utils.TranslateFormat(req.Format)
	if format == utils.FormatJSON {
		return s.passThrough(ctx, "storage usage", http.MethodGet, url, "", nil, out)
	}

	var buf bytes.Buffer
	res, err := s.passThrough(ctx, "storage usage", http.MethodGet, url, "", nil, &buf)
	if err != nil {
		return nil, err
	}
	if format == utils.FormatYAML {
		return s.writeFormatted(res, buf.Bytes(), format, out)
	}

	var u Usage
	if err := json.Unmarshal(buf.Bytes(), &u); err != nil {
		return nil, &TransportError{Kind: ErrCallFailed, Op: "storage usage", Err: fmt.Errorf("json parsing failed: %w", err)}
	}
	line := fmt.Sprintf("%s / %s (%.2f%%)\n", utils.HumanBytes(u.Used), utils.HumanBytes(u.Limit), u.Percent)
	n, err := io.WriteString(out, line)
	if err != nil {
		return nil, &TransportError{Kind: ErrCallFailed, Op: "storage usage", Err: err}
	}
	res.Bytes = int64(n)
	return res, nil
}
