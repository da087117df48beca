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
	"mime"
	"net/http"
	neturl "net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/scc-digitalhub/mycloud-cli-sdk/sdk/utils"
	"go.uber.org/zap"
)

const (
	// fallbackFilename is used when neither the server nor the id yields a name.
	fallbackFilename = "download"
	// archiveFilename is the default name of a multi-file download.
	archiveFilename = "files.zip"
)

// Download performs GET {base}/download/{id} and stores the body under the
// filename suggested by the server.
func (s *FilesService) Download(ctx context.Context, req Download) (*Result, error) {
	dst, err := parseDestination("download", req.Destination)
	if err != nil {
		return nil, err
	}

	url := s.http.BuildURL("download", req.FileID, nil)
	resp, err := s.send(ctx, "download", http.MethodGet, url, "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// the last segment of the request path, as curl -O names it
	filename := suggestedFilename(resp.Header.Get("Content-Disposition"), neturl.PathEscape(req.FileID))
	return s.store(ctx, "download", resp, dst, filename)
}

// DownloadMultiple performs POST {base}/download-multiple with the ids as a
// JSON body and stores the zip archive the server streams back.
func (s *FilesService) DownloadMultiple(ctx context.Context, req DownloadMultiple) (*Result, error) {
	const op = "download multiple"
	dst, err := parseDestination(op, req.Destination)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(downloadMultipleBody{IDs: req.FileIDs})
	if err != nil {
		return nil, &TransportError{Kind: ErrClientUnavailable, Op: op, Err: err}
	}

	url := s.http.BuildURL("download-multiple", "", nil)
	resp, err := s.send(ctx, op, http.MethodPost, url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	filename := suggestedFilename(resp.Header.Get("Content-Disposition"), archiveFilename)
	return s.store(ctx, op, resp, dst, filename)
}

// parseDestination accepts an empty value (cwd), a local path or s3://.
func parseDestination(op, destination string) (*utils.ParsedPath, error) {
	if destination == "" {
		return nil, nil
	}
	pp, err := utils.ParsePath(destination)
	if err != nil {
		return nil, &TransportError{Kind: ErrCallFailed, Op: op, Err: err}
	}
	if !pp.IsLocal() && pp.Scheme != "s3" {
		return nil, &TransportError{Kind: ErrCallFailed, Op: op, Err: fmt.Errorf("unsupported destination scheme %q", pp.Scheme)}
	}
	return pp, nil
}

// store writes the response body to dst under filename.
func (s *FilesService) store(ctx context.Context, op string, resp *http.Response, dst *utils.ParsedPath, filename string) (*Result, error) {
	if dst != nil && dst.Scheme == "s3" {
		return s.downloadToS3(ctx, op, resp, dst, filename)
	}

	destination := ""
	if dst != nil {
		destination = dst.Path
	}
	target, createdDir, err := chooseLocalTarget(destination, filename)
	if err != nil {
		return nil, &TransportError{Kind: ErrCallFailed, Op: op, Err: fmt.Errorf("invalid destination: %w", err)}
	}
	if createdDir {
		s.log.Debug("created destination directory", zap.String("dir", filepath.Dir(target)))
	}

	n, err := saveBody(resp.Body, target)
	if err != nil {
		return nil, &TransportError{Kind: ErrCallFailed, Op: op, Err: err}
	}
	s.log.Debug("download stored", zap.String("path", target), zap.Int64("bytes", n))
	return &Result{StatusCode: resp.StatusCode, Path: target, Bytes: n}, nil
}

// downloadToS3 stages the body in a temporary file, then puts it under the
// destination prefix (or exact key when the location does not end with "/").
func (s *FilesService) downloadToS3(ctx context.Context, op string, resp *http.Response, dst *utils.ParsedPath, filename string) (*Result, error) {
	store, err := s.objectStore(ctx)
	if err != nil {
		return nil, err
	}

	staging := filepath.Join(os.TempDir(), utils.StagingName(filename))
	n, err := saveBody(resp.Body, staging)
	if err != nil {
		return nil, &TransportError{Kind: ErrCallFailed, Op: op, Err: err}
	}
	defer os.Remove(staging)

	key := strings.TrimPrefix(dst.Path, "/")
	if key == "" || strings.HasSuffix(key, "/") {
		key += filename
	}

	f, err := os.Open(staging)
	if err != nil {
		return nil, &TransportError{Kind: ErrCallFailed, Op: op, Err: fmt.Errorf("failed to reopen staged file: %w", err)}
	}
	defer f.Close()

	if _, err := store.UploadFile(ctx, dst.Host, key, f); err != nil {
		return nil, &TransportError{Kind: ErrCallFailed, Op: op, Err: fmt.Errorf("S3 upload failed: %w", err)}
	}

	location := fmt.Sprintf("s3://%s/%s", dst.Host, key)
	s.log.Debug("download stored", zap.String("path", location), zap.Int64("bytes", n))
	return &Result{StatusCode: resp.StatusCode, Path: location, Bytes: n}, nil
}

// suggestedFilename reads filename (or filename*) from a Content-Disposition
// header, else uses fallback. Directory components are always stripped.
func suggestedFilename(disposition, fallback string) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := safeBase(params["filename"]); name != "" {
				return name
			}
		}
	}
	if name := safeBase(fallback); name != "" {
		return name
	}
	return fallbackFilename
}

func safeBase(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(path.Clean("/" + name))
	if name == "/" || name == "." || name == ".." {
		return ""
	}
	return name
}

// chooseLocalTarget:
// - dst empty → filename in the cwd
// - dst is an existing directory → dst/filename
// - dst is an existing file → dst
// - dst does not exist → create directory dst and use dst/filename
func chooseLocalTarget(dst, filename string) (target string, createdDir bool, err error) {
	if dst == "" {
		return filename, false, nil
	}
	info, statErr := os.Stat(dst)
	if statErr == nil {
		if info.IsDir() {
			return filepath.Join(dst, filename), false, nil
		}
		return dst, false, nil
	}
	if os.IsNotExist(statErr) {
		if mkErr := os.MkdirAll(dst, 0o755); mkErr != nil {
			return "", false, mkErr
		}
		return filepath.Join(dst, filename), true, nil
	}
	return "", false, statErr
}

// saveBody writes r to target; a partial file is removed on failure.
func saveBody(r io.Reader, target string) (int64, error) {
	out, err := os.Create(target)
	if err != nil {
		return 0, fmt.Errorf("failed to create local file: %w", err)
	}

	n, err := io.Copy(out, r)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(target)
		return n, fmt.Errorf("failed to write to local file: %w", err)
	}
	return n, nil
}
