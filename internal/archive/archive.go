// Package archive persists container records to disk, optionally
// compressed. Coordinate text is highly repetitive, so XZ shrinks large
// containers substantially; the record semantics are identical either way.
package archive

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/BabelVault/core/vault"
)

// Compression identifies the container file compression.
type Compression string

const (
	// CompressionNone writes the container as plain text.
	CompressionNone Compression = "none"
	// CompressionXZ wraps the container text in an XZ stream.
	CompressionXZ Compression = "xz"
)

// xzMagic is the XZ stream header used for detection on read.
var xzMagic = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}

// WriteOptions configures container writing.
type WriteOptions struct {
	// Compression selects the on-disk form. Defaults to none.
	Compression Compression
}

// Write serializes a record and writes it to path.
func Write(path string, rec *vault.Record, opts *WriteOptions) error {
	if opts == nil {
		opts = &WriteOptions{Compression: CompressionNone}
	}

	data, err := rec.MarshalText()
	if err != nil {
		return fmt.Errorf("failed to serialize container: %w", err)
	}

	if opts.Compression == CompressionXZ {
		var buf bytes.Buffer
		w, err := xz.NewWriter(&buf)
		if err != nil {
			return fmt.Errorf("failed to create xz writer: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to compress container: %w", err)
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("failed to finish xz stream: %w", err)
		}
		data = buf.Bytes()
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write container: %w", err)
	}
	return nil
}

// DetectCompression inspects a container file's magic bytes. Anything that
// is not an XZ stream is treated as plain text.
func DetectCompression(path string) (Compression, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open container: %w", err)
	}
	defer file.Close()

	magic := make([]byte, len(xzMagic))
	n, err := io.ReadFull(file, magic)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("failed to read magic bytes: %w", err)
	}

	if n == len(xzMagic) && bytes.Equal(magic, xzMagic) {
		return CompressionXZ, nil
	}
	return CompressionNone, nil
}

// Read loads and parses a container file, auto-detecting compression.
func Read(path string) (*vault.Record, error) {
	compression, err := DetectCompression(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open container: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if compression == CompressionXZ {
		xzReader, err := xz.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		reader = xzReader
	}

	return vault.ParseRecord(reader)
}
