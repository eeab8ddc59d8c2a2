package subtitle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// interface for writing documents to files
type Writer interface {
	Write(doc *Document, path string) error
	WriteTo(doc *Document, w io.Writer) error
}

// SubRip format
type SRTWriter struct{}

// WebVTT format
type VTTWriter struct{}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatSRT:
		return &SRTWriter{}, nil
	case FormatVTT:
		return &VTTWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// writes the document to an SRT file
func (w *SRTWriter) Write(doc *Document, path string) error {
	return writeFile(doc, FormatSRT, path)
}

func (w *SRTWriter) WriteTo(doc *Document, out io.Writer) error {
	_, err := io.WriteString(out, doc.Render(FormatSRT))
	return err
}

// writes the document to a VTT file
func (w *VTTWriter) Write(doc *Document, path string) error {
	return writeFile(doc, FormatVTT, path)
}

func (w *VTTWriter) WriteTo(doc *Document, out io.Writer) error {
	_, err := io.WriteString(out, doc.Render(FormatVTT))
	return err
}

// WriteFile renders doc in format and writes it to path, creating parent
// directories as needed.
func WriteFile(doc *Document, path string, format Format) error {
	writer, err := NewWriter(format)
	if err != nil {
		return err
	}
	return writer.Write(doc, path)
}

func writeFile(doc *Document, format Format, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc.Render(format)), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// subtitle format based on file extension
func GetFormatFromExtension(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return FormatSRT
	default:
		return FormatVTT
	}
}

// file extension for a format
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatSRT:
		return ".srt"
	default:
		return ".vtt"
	}
}
