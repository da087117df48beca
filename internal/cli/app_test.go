// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fatih/color"
	"github.com/scc-digitalhub/mycloud-cli-sdk/internal/cli"
)

func setup(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int32) {
	t.Helper()
	color.NoColor = true
	t.Setenv("MYCLOUD_INI", filepath.Join(t.TempDir(), "none.ini"))
	t.Setenv("MYCLOUD_ENDPOINT", "")

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func run(c cli.Command, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), c, append([]string{string(c.Kind)}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestWrongArgCountExitsOneWithoutNetwork(t *testing.T) {
	srv, hits := setup(t, func(w http.ResponseWriter, r *http.Request) {})

	cases := []struct {
		cmd  cli.Command
		args []string
	}{
		{cli.Download(), nil},
		{cli.Download(), []string{"1", "2"}},
		{cli.ListFiles(), []string{"extra"}},
		{cli.MakeDir(), nil},
		{cli.Upload(), []string{"a", "b"}},
		{cli.DeleteFile(), nil},
		{cli.StorageUsage(), []string{"x"}},
		{cli.DownloadMultiple(), nil},
		{cli.View(), nil},
	}
	for _, c := range cases {
		args := append([]string{"--base-url", srv.URL}, c.args...)
		code, stdout, stderr := run(c.cmd, args...)
		if code != 1 {
			t.Fatalf("%s %v: exit %d, want 1", c.cmd.Kind, c.args, code)
		}
		if stdout != "" {
			t.Fatalf("%s: unexpected stdout %q", c.cmd.Kind, stdout)
		}
		if !strings.Contains(stderr, "wrong number of arguments") {
			t.Fatalf("%s: unexpected diagnostic %q", c.cmd.Kind, stderr)
		}
	}
	if n := atomic.LoadInt32(hits); n != 0 {
		t.Fatalf("server contacted %d times", n)
	}
}

func TestListFilesPrintsServerOutput(t *testing.T) {
	srv, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files" || r.URL.Query().Get("format") != "text" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, "a.txt\nb.txt\n")
	})

	code, stdout, stderr := run(cli.ListFiles(), "--base-url", srv.URL)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if stdout != "a.txt\nb.txt\n" {
		t.Fatalf("unexpected stdout %q", stdout)
	}
}

func TestBaseURLFromEnvironment(t *testing.T) {
	srv, hits := setup(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "Directory created: docs")
	})
	t.Setenv("MYCLOUD_ENDPOINT", srv.URL)

	code, stdout, stderr := run(cli.MakeDir(), "docs")
	if code != 0 || stdout != "Directory created: docs" {
		t.Fatalf("exit %d stdout %q stderr %q", code, stdout, stderr)
	}
	if atomic.LoadInt32(hits) != 1 {
		t.Fatal("expected exactly one call")
	}
}

func TestUploadMissingFileExitsOne(t *testing.T) {
	srv, hits := setup(t, func(w http.ResponseWriter, r *http.Request) {})

	code, _, stderr := run(cli.Upload(), "--base-url", srv.URL, filepath.Join(t.TempDir(), "nope.bin"))
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(stderr, "upload:") || strings.Count(strings.TrimSpace(stderr), "\n") != 0 {
		t.Fatalf("expected a one-line diagnostic, got %q", stderr)
	}
	if atomic.LoadInt32(hits) != 0 {
		t.Fatal("server must not be contacted")
	}
}

func TestServerErrorExitsOne(t *testing.T) {
	srv, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Missing dirname", http.StatusBadRequest)
	})

	code, _, stderr := run(cli.MakeDir(), "--base-url", srv.URL, "x")
	if code != 1 || !strings.Contains(stderr, "Missing dirname") {
		t.Fatalf("exit %d stderr %q", code, stderr)
	}
}

func TestDownloadSavesToDestination(t *testing.T) {
	srv, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="photo.png"`)
		_, _ = io.WriteString(w, "png")
	})
	dir := t.TempDir()

	code, stdout, stderr := run(cli.Download(), "--base-url", srv.URL, "--dest", dir, "42")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if stdout != "" {
		t.Fatalf("download must not write to stdout, got %q", stdout)
	}
	b, err := os.ReadFile(filepath.Join(dir, "photo.png"))
	if err != nil || string(b) != "png" {
		t.Fatalf("file not saved: %q %v", b, err)
	}
}

func TestUsageHintWithoutArguments(t *testing.T) {
	setup(t, func(w http.ResponseWriter, r *http.Request) {})

	_, _, stderr := run(cli.ListFiles(), "extra")
	if !strings.Contains(stderr, "(usage: list-files)") {
		t.Fatalf("unexpected usage hint %q", stderr)
	}

	_, _, stderr = run(cli.Download())
	if !strings.Contains(stderr, "(usage: download <file_id>)") {
		t.Fatalf("unexpected usage hint %q", stderr)
	}
}

func TestFlagsAfterArguments(t *testing.T) {
	srv, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="photo.png"`)
		_, _ = io.WriteString(w, "png")
	})
	dir := t.TempDir()

	code, _, stderr := run(cli.Download(), "--base-url", srv.URL, "42", "--dest", dir)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "photo.png")); err != nil {
		t.Fatalf("file not saved in --dest: %v", err)
	}

	code, _, stderr = run(cli.Download(), "42", "-d="+dir, "-v", "-u", srv.URL)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
}

func TestDoubleDashEndsFlags(t *testing.T) {
	bodies := make(chan string, 1)
	srv, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodies <- string(b)
		_, _ = io.WriteString(w, "ok")
	})

	code, stdout, stderr := run(cli.MakeDir(), "--base-url", srv.URL, "--", "--verbose")
	if code != 0 || stdout != "ok" {
		t.Fatalf("exit %d stdout %q stderr %q", code, stdout, stderr)
	}
	if got := <-bodies; got != `{"dirname":"--verbose"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestDownloadMultipleAndView(t *testing.T) {
	srv, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/download-multiple":
			w.Header().Set("Content-Disposition", `attachment; filename="files.zip"`)
			_, _ = io.WriteString(w, "zip")
		case "/view/3":
			_, _ = io.WriteString(w, "inline content")
		default:
			http.NotFound(w, r)
		}
	})
	dir := t.TempDir()

	code, stdout, stderr := run(cli.DownloadMultiple(), "--base-url", srv.URL, "1", "2", "--dest", dir)
	if code != 0 || stdout != "" {
		t.Fatalf("exit %d stdout %q stderr %q", code, stdout, stderr)
	}
	if b, err := os.ReadFile(filepath.Join(dir, "files.zip")); err != nil || string(b) != "zip" {
		t.Fatalf("archive not saved: %q %v", b, err)
	}

	code, stdout, stderr = run(cli.View(), "--base-url", srv.URL, "3")
	if code != 0 || stdout != "inline content" {
		t.Fatalf("exit %d stdout %q stderr %q", code, stdout, stderr)
	}
}
