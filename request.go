package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// FileTimeLayout formats ParseRequest.ModTime in persisted results.
const FileTimeLayout = "2006-01-02 15:04:05"

// ParseRequest identifies a source file. Build one per invocation with NewParseRequest.
type ParseRequest struct {
	Path        string
	Name        string
	ModTime     time.Time
	ContentType string
}

// NewParseRequest stats path and detects its content type.
func NewParseRequest(path string) (ParseRequest, error) {
	if path == "" {
		return ParseRequest{}, ErrEmptyPath
	}

	info, err := os.Stat(path)
	if err != nil {
		return ParseRequest{}, fmt.Errorf("retrieve file metadata: %w", err)
	}
	if !info.Mode().IsRegular() {
		return ParseRequest{}, fmt.Errorf("retrieve file metadata: %s is not a regular file", path)
	}

	return ParseRequest{
		Path:        path,
		Name:        filepath.Base(path),
		ModTime:     info.ModTime(),
		ContentType: DetectContentType(path),
	}, nil
}

// FileTime returns the modification time in FileTimeLayout.
func (r ParseRequest) FileTime() string {
	return r.ModTime.Local().Format(FileTimeLayout)
}

// IsPDF reports whether the source is a PDF rather than an image.
func (r ParseRequest) IsPDF() bool {
	return r.ContentType == "application/pdf"
}

func (r ParseRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		FileName string `json:"file_name"`
		FileTime string `json:"file_time"`
	}{
		FileName: r.Name,
		FileTime: r.FileTime(),
	})
}

// DetectContentType sniffs the file content, falling back to the extension.
func DetectContentType(path string) string {
	if mtype, err := mimetype.DetectFile(path); err == nil {
		// drop parameters such as "; charset=utf-8"
		return strings.TrimSpace(strings.SplitN(mtype.String(), ";", 2)[0])
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".heic":
		return "image/heic"
	default:
		return "application/octet-stream"
	}
}
