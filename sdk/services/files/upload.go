// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/scc-digitalhub/mycloud-cli-sdk/sdk/utils"
	"go.uber.org/zap"
)

// UploadField is the multipart field the server reads the file from.
const UploadField = "file"

// Upload performs POST {base}/upload with a multipart body. The source is
// opened before any network access, so a missing local file never reaches
// the server.
func (s *FilesService) Upload(ctx context.Context, req Upload, out io.Writer) (*Result, error) {
	src, name, err := s.openSource(ctx, req.LocalPath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile(UploadField, name)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(fmt.Errorf("failed to read %s: %w", req.LocalPath, err))
			return
		}
		pw.CloseWithError(mw.Close())
	}()
	// unblocks the writer when the call ends before the body is consumed
	defer pr.Close()

	s.log.Debug("uploading", zap.String("source", req.LocalPath), zap.String("filename", name))
	url := s.http.BuildURL("upload", "", nil)
	return s.passThrough(ctx, "upload", http.MethodPost, url, mw.FormDataContentType(), pr, out)
}

// openSource opens a local file or an s3:// object and returns it with the
// filename to announce.
func (s *FilesService) openSource(ctx context.Context, location string) (io.ReadCloser, string, error) {
	pp, err := utils.ParsePath(location)
	if err != nil {
		return nil, "", &TransportError{Kind: ErrCallFailed, Op: "upload", Err: err}
	}

	switch pp.Scheme {
	case "file":
		f, err := os.Open(location)
		if err != nil {
			return nil, "", &TransportError{Kind: ErrCallFailed, Op: "upload", Err: fmt.Errorf("failed to open local file: %w", err)}
		}
		st, err := f.Stat()
		if err != nil {
			_ = f.Close()
			return nil, "", &TransportError{Kind: ErrCallFailed, Op: "upload", Err: fmt.Errorf("stat error: %w", err)}
		}
		if st.IsDir() {
			_ = f.Close()
			return nil, "", &TransportError{Kind: ErrCallFailed, Op: "upload", Err: fmt.Errorf("%s is a directory", location)}
		}
		return f, pp.Filename, nil

	case "s3":
		key := strings.TrimPrefix(pp.Path, "/")
		if key == "" || pp.Filename == "" {
			return nil, "", &TransportError{Kind: ErrCallFailed, Op: "upload", Err: errors.New("s3 source must name an object, not a prefix")}
		}
		store, err := s.objectStore(ctx)
		if err != nil {
			return nil, "", err
		}
		body, _, err := store.OpenObject(ctx, pp.Host, key)
		if err != nil {
			return nil, "", &TransportError{Kind: ErrCallFailed, Op: "upload", Err: err}
		}
		return body, pp.Filename, nil
	}

	return nil, "", &TransportError{Kind: ErrCallFailed, Op: "upload", Err: fmt.Errorf("unsupported upload source scheme %q", pp.Scheme)}
}
