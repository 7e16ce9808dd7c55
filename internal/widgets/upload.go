package widgets

import (
	"encoding/base64"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// UploadPolicy validates one file slot: extension allow-list first, then
// size ceiling.
type UploadPolicy struct {
	Extensions []string // lowercase, dot-prefixed
	MaxSizeMB  int
}

// DefaultDocumentPolicy matches the document slot of the upload page.
func DefaultDocumentPolicy() UploadPolicy {
	return UploadPolicy{
		Extensions: []string{".pdf", ".txt", ".doc", ".docx", ".rtf"},
		MaxSizeMB:  10,
	}
}

// DefaultImagePolicy matches the image slot of the upload page.
func DefaultImagePolicy() UploadPolicy {
	return UploadPolicy{
		Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"},
		MaxSizeMB:  5,
	}
}

// Validate checks name and size against the policy. The returned error
// message is user-facing.
func (p UploadPolicy) Validate(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, e := range p.Extensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("Tipo de arquivo não suportado. Use: %s", strings.Join(p.Extensions, ", "))
	}
	if size > int64(p.MaxSizeMB)*1024*1024 {
		return fmt.Errorf("Arquivo muito grande. Máximo: %dMB", p.MaxSizeMB)
	}
	return nil
}

// UploadedFile is an accepted file in a slot.
type UploadedFile struct {
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	Preview string `json:"preview,omitempty"` // data URI, image slot only
}

// PreviewDataURI encodes image bytes as a data URI for inline preview.
func PreviewDataURI(filename string, data []byte) string {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// FormatFileSize renders a byte count the way the upload page shows it.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	size := float64(bytes)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	if size == float64(int64(size)) {
		return fmt.Sprintf("%d %s", int64(size), units[i])
	}
	return fmt.Sprintf("%.2f %s", size, units[i])
}
