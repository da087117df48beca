// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/scc-digitalhub/mycloud-cli-sdk/sdk/config"
	"go.uber.org/zap"
)

type FilesService struct {
	http config.CoreHTTP
	conf config.Config
	log  *zap.Logger

	s3Once sync.Once
	s3     config.ObjectStore
	s3Err  error
}

type Option func(*FilesService)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *FilesService) {
		s.http = config.NewHTTPCore(c, s.conf.Core)
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *FilesService) {
		if l != nil {
			s.log = l
		}
	}
}

// WithObjectStore sets the store used for s3:// locations instead of
// building one from the S3 config on first use.
func WithObjectStore(store config.ObjectStore) Option {
	return func(s *FilesService) {
		if store != nil {
			s.s3Once.Do(func() { s.s3 = store })
		}
	}
}

func NewFilesService(_ context.Context, conf config.Config, opts ...Option) (*FilesService, error) {
	conf = conf.WithDefaults()
	s := &FilesService{
		http: config.NewHTTPCore(nil, conf.Core),
		conf: conf,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dispatch sends req to the file-server. Response bodies of everything but
// Download and DownloadMultiple are copied to out unmodified.
func (s *FilesService) Dispatch(ctx context.Context, req Request, out io.Writer) (*Result, error) {
	switch r := req.(type) {
	case Download:
		return s.Download(ctx, r)
	case ListFiles:
		return s.ListFiles(ctx, r, out)
	case MakeDir:
		return s.MakeDir(ctx, r, out)
	case Upload:
		return s.Upload(ctx, r, out)
	case Delete:
		return s.Delete(ctx, r, out)
	case StorageUsage:
		return s.StorageUsage(ctx, r, out)
	case DownloadMultiple:
		return s.DownloadMultiple(ctx, r)
	case View:
		return s.View(ctx, r, out)
	case nil:
		return nil, &TransportError{Kind: ErrClientUnavailable, Op: "dispatch", Err: errors.New("nil request")}
	}
	return nil, &TransportError{Kind: ErrClientUnavailable, Op: "dispatch", Err: fmt.Errorf("unsupported request %T", req)}
}

// send builds and performs one call. The caller closes the response body.
func (s *FilesService) send(ctx context.Context, op, method, url, contentType string, body io.Reader) (*http.Response, error) {
	req, err := s.http.NewRequest(ctx, method, url, contentType, body)
	if err != nil {
		return nil, s.fail(op, err)
	}
	s.log.Debug("sending request", zap.String("op", op), zap.String("method", method), zap.String("url", url))

	resp, err := s.http.Send(req)
	if err != nil {
		return nil, s.fail(op, err)
	}
	s.log.Debug("response received", zap.String("op", op), zap.Int("status", resp.StatusCode))
	return resp, nil
}

// passThrough copies the whole response body to out.
func (s *FilesService) passThrough(ctx context.Context, op, method, url, contentType string, body io.Reader, out io.Writer) (*Result, error) {
	resp, err := s.send(ctx, op, method, url, contentType, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	n, err := io.Copy(out, resp.Body)
	if err != nil {
		return nil, s.fail(op, fmt.Errorf("failed to copy response: %w", err))
	}
	return &Result{StatusCode: resp.StatusCode, Bytes: n}, nil
}

// fail wraps err into a TransportError of the right kind.
func (s *FilesService) fail(op string, err error) error {
	kind := ErrCallFailed
	if errors.Is(err, config.ErrInvalidRequest) {
		kind = ErrClientUnavailable
	}
	s.log.Debug("call failed", zap.String("op", op), zap.Error(err))
	return &TransportError{Kind: kind, Op: op, Err: err}
}

// objectStore returns the S3 client, creating it on first use.
func (s *FilesService) objectStore(ctx context.Context) (config.ObjectStore, error) {
	s.s3Once.Do(func() {
		c, err := config.NewS3Client(ctx, s.conf.S3)
		if err != nil {
			s.s3Err = fmt.Errorf("S3 init failed: %w", err)
			return
		}
		s.s3 = c
	})
	if s.s3Err != nil {
		return nil, &TransportError{Kind: ErrClientUnavailable, Op: "s3", Err: s.s3Err}
	}
	return s.s3, nil
}
