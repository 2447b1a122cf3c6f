package dropkit

import (
	"fmt"
	"math"
	"mime"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Size constants for easier file size configuration
const (
	KB = int64(1024)
	MB = KB * 1024
	GB = MB * 1024
)

// CandidateFile is an item from a selection/drop batch, not yet
// classified. It carries only the metadata the intake core consumes;
// the file's content is never read. Candidate files are supplied by
// the host's file-list adapter per event and are never mutated or
// retained beyond the current classification pass.
type CandidateFile struct {
	// Path identifies the file for display (relative path for
	// directory drops, plain name otherwise).
	Path string

	// Name is the file's base name.
	Name string

	// Type is the reported MIME type. Browsers may report it empty or
	// wrong, especially during drag; see TypeByName.
	Type string

	// Size is the byte count. Zero means unknown (directory entries,
	// data-transfer items not yet resolved) and is never held against
	// the file.
	Size int64
}

// File creates a CandidateFile from a name, MIME type and size.
// The path defaults to the name.
func File(name, mimeType string, size int64) CandidateFile {
	return CandidateFile{Path: name, Name: name, Type: mimeType, Size: size}
}

// Ext returns the file's lower-cased extension including the dot,
// or "" if there is none.
func (f CandidateFile) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// Fingerprint returns a stable 64-bit identity hash over the file's
// path and size, suitable for cheap duplicate detection within a
// session. It is a metadata hash, not a content checksum.
func (f CandidateFile) Fingerprint() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(f.Path)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(fmt.Sprintf("%d", f.Size))
	return d.Sum64()
}

// Common MIME types the extension table below maps to
const (
	MIMETypeTextPlain       = "text/plain"
	MIMETypeTextHTML        = "text/html"
	MIMETypeTextCSS         = "text/css"
	MIMETypeApplicationJSON = "application/json"
	MIMETypeImageJPEG       = "image/jpeg"
	MIMETypeImagePNG        = "image/png"
	MIMETypeImageGIF        = "image/gif"
	MIMETypeImageSVG        = "image/svg+xml"
	MIMETypeImageWebP       = "image/webp"
	MIMETypeAudioMP3        = "audio/mpeg"
	MIMETypeAudioOGG        = "audio/ogg"
	MIMETypeVideoMP4        = "video/mp4"
	MIMETypeVideoWebM       = "video/webm"
	MIMETypeApplicationPDF  = "application/pdf"
	MIMETypeApplicationZip  = "application/zip"
)

// Common file extensions to MIME types mapping
var extensionToMIME = map[string]string{
	".txt":  MIMETypeTextPlain,
	".html": MIMETypeTextHTML,
	".htm":  MIMETypeTextHTML,
	".css":  MIMETypeTextCSS,
	".json": MIMETypeApplicationJSON,
	".jpg":  MIMETypeImageJPEG,
	".jpeg": MIMETypeImageJPEG,
	".png":  MIMETypeImagePNG,
	".gif":  MIMETypeImageGIF,
	".svg":  MIMETypeImageSVG,
	".webp": MIMETypeImageWebP,
	".mp3":  MIMETypeAudioMP3,
	".ogg":  MIMETypeAudioOGG,
	".mp4":  MIMETypeVideoMP4,
	".webm": MIMETypeVideoWebM,
	".pdf":  MIMETypeApplicationPDF,
	".zip":  MIMETypeApplicationZip,
	".gz":   "application/gzip",
	".tar":  "application/x-tar",
	".csv":  "text/csv",
	".md":   "text/markdown",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

// TypeByName guesses a MIME type from a filename's extension, for
// adapters whose events carry files with an empty or unreliable type.
// Returns "" when the extension is unknown.
func TypeByName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return ""
	}
	if mimeType, ok := extensionToMIME[ext]; ok {
		return mimeType
	}
	if mimeType := mime.TypeByExtension(ext); mimeType != "" {
		// Strip parameters like "; charset=utf-8".
		if idx := strings.Index(mimeType, ";"); idx > 0 {
			mimeType = mimeType[:idx]
		}
		return strings.TrimSpace(mimeType)
	}
	return ""
}

// NormalizeTypes returns a copy of the batch in which every file with
// an empty Type has been given a best-effort guess from its extension.
// Files whose type cannot be guessed are returned unchanged.
func NormalizeTypes(files []CandidateFile) []CandidateFile {
	out := make([]CandidateFile, len(files))
	for i, f := range files {
		if f.Type == "" {
			f.Type = TypeByName(f.Name)
		}
		out[i] = f
	}
	return out
}

// FormatSizeReadable converts a size in bytes to a human-readable string
func FormatSizeReadable(size int64) string {
	if size < KB {
		return fmt.Sprintf("%d B", size)
	}
	unit, suffix := KB, "KB"
	switch {
	case size >= GB:
		unit, suffix = GB, "GB"
	case size >= MB:
		unit, suffix = MB, "MB"
	}
	value := float64(size) / float64(unit)
	rounded := math.Round(value*10) / 10
	if rounded == float64(int64(rounded)) {
		return fmt.Sprintf("%.0f %s", rounded, suffix)
	}
	return fmt.Sprintf("%.1f %s", rounded, suffix)
}
