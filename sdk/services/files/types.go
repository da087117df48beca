// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package files

// Kind names one of the request shapes the file-server understands.
type Kind string

const (
	KindDownload     Kind = "download"
	KindListFiles    Kind = "list-files"
	KindMakeDir      Kind = "make-dir"
	KindUpload       Kind = "upload"
	KindDelete       Kind = "delete-file"
	KindStorageUsage Kind = "storage-usage"

	KindDownloadMultiple Kind = "download-multiple"
	KindView             Kind = "view"
)

// Request is implemented by exactly the variants below.
type Request interface {
	Kind() Kind
	isRequest()
}

// Download fetches a file and stores it under the name the server suggests.
type Download struct {
	FileID string
	// Destination is a local dir/file or an s3:// location; empty means cwd.
	Destination string
}

// ListFiles prints the server listing.
type ListFiles struct {
	ParentID string
	Format   string // text (default), json or yaml
}

type MakeDir struct {
	Dirname string
}

// Upload sends a local file (or an s3:// object) as multipart field "file".
// LocalPath is not checked until dispatch.
type Upload struct {
	LocalPath string
}

type Delete struct {
	FileID string
}

type StorageUsage struct {
	Format string // short (default), json or yaml
}

// DownloadMultiple fetches several files as one zip archive.
type DownloadMultiple struct {
	FileIDs     []string
	Destination string
}

// View streams a file inline to the output.
type View struct {
	FileID string
}

func (Download) Kind() Kind     { return KindDownload }
func (ListFiles) Kind() Kind    { return KindListFiles }
func (MakeDir) Kind() Kind      { return KindMakeDir }
func (Upload) Kind() Kind       { return KindUpload }
func (Delete) Kind() Kind       { return KindDelete }
func (StorageUsage) Kind() Kind { return KindStorageUsage }

func (DownloadMultiple) Kind() Kind { return KindDownloadMultiple }
func (View) Kind() Kind             { return KindView }

func (Download) isRequest()     {}
func (ListFiles) isRequest()    {}
func (MakeDir) isRequest()      {}
func (Upload) isRequest()       {}
func (Delete) isRequest()       {}
func (StorageUsage) isRequest() {}

func (DownloadMultiple) isRequest() {}
func (View) isRequest()             {}

// Result describes a completed call.
type Result struct {
	// Path is where a download was stored (local path or s3:// url).
	Path       string `json:"path,omitempty" yaml:"path,omitempty"`
	Bytes      int64  `json:"bytes"          yaml:"bytes"`
	StatusCode int    `json:"status_code"    yaml:"status_code"`
}

// Usage is the /storage-usage payload.
type Usage struct {
	Used    int64   `json:"used"`
	Limit   int64   `json:"limit"`
	Percent float64 `json:"percent"`
}

type mkdirBody struct {
	Dirname string `json:"dirname"`
}

type downloadMultipleBody struct {
	IDs []string `json:"ids"`
}
