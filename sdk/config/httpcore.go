// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrInvalidRequest marks failures that happen before anything is sent.
var ErrInvalidRequest = errors.New("invalid request")

// StatusError is returned by Send when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Message    string
	Body       []byte
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server responded with: %s - %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server responded with: %s", e.Status)
}

type CoreHTTP interface {
	BuildURL(resource, id string, params map[string]string) string
	NewRequest(ctx context.Context, method, url, contentType string, body io.Reader) (*http.Request, error)
	Send(req *http.Request) (*http.Response, error)
	Do(ctx context.Context, method, url string, data []byte) ([]byte, int, error)
}

type httpCore struct {
	httpClient *http.Client
	coreConfig CoreConfig
}

func NewHTTPCore(httpClient *http.Client, coreConfig CoreConfig) CoreHTTP {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: coreConfig.Timeout}
	}
	return &httpCore{httpClient: httpClient, coreConfig: coreConfig}
}

// BuildURL joins base URL, resource and an optional path-escaped id.
// Query parameters are encoded in key order; empty values are dropped.
func (httpCore *httpCore) BuildURL(resource, id string, params map[string]string) string {
	base := strings.TrimRight(httpCore.coreConfig.BaseURL, "/")
	base += "/" + resource
	if id != "" {
		base += "/" + url.PathEscape(id)
	}
	q := url.Values{}
	for k, v := range params {
		if v == "" {
			continue
		}
		q.Set(k, v)
	}
	if len(q) > 0 {
		base += "?" + q.Encode()
	}
	return base
}

func (httpCore *httpCore) NewRequest(ctx context.Context, method, rawURL, contentType string, body io.Reader) (*http.Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q in %s", ErrInvalidRequest, u.Scheme, rawURL)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// Send performs the call. On a non-2xx status the body is consumed and
// closed and a *StatusError is returned.
func (httpCore *httpCore) Send(req *http.Request) (*http.Response, error) {
	resp, err := httpCore.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    errorMessage(b),
			Body:       b,
		}
	}
	return resp, nil
}

func (httpCore *httpCore) Do(ctx context.Context, method, url string, data []byte) ([]byte, int, error) {
	var body io.Reader
	contentType := ""
	if data != nil {
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	req, err := httpCore.NewRequest(ctx, method, url, contentType, body)
	if err != nil {
		return nil, 0, err
	}

	resp, err := httpCore.Send(req)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			return se.Body, se.StatusCode, err
		}
		return nil, 0, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	return b, resp.StatusCode, err
}

// errorMessage extracts a one-line reason from an error body: the "message"
// field of a JSON object, otherwise the first line of plain text.
func errorMessage(b []byte) string {
	var m map[string]any
	if json.Unmarshal(b, &m) == nil {
		if msg, ok := m["message"].(string); ok && msg != "" {
			return msg
		}
	}
	s := strings.TrimSpace(string(b))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
