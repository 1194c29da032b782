// Package vault orchestrates the codec pipeline: bytes to symbol text to
// padded pages to library addresses on encode, and the exact reverse on
// decode. It also defines the container record and its line-oriented text
// form.
package vault

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/BabelVault/core/coord"
	"github.com/FocuswithJustin/BabelVault/core/errors"
)

// maxLineBytes bounds a single container line. Address lines grow with the
// page length; the standard page needs about 3KB, so this leaves ample
// headroom without admitting unbounded input.
const maxLineBytes = 1 << 20

// Record is the container record for one encoded file: the original
// extension, the exact original byte size, and the page addresses in
// block order. A record is constructed fresh by each encode and only read
// by decode; address order is significant and never changed.
type Record struct {
	Extension string
	Size      int64
	Addresses []coord.Address
}

// MarshalText serializes the record in the container text form: line 1 is
// the extension (no leading dot, empty if none), line 2 the decimal byte
// size, and each remaining line one address in block order.
func (r *Record) MarshalText() ([]byte, error) {
	if r.Size < 0 {
		return nil, errors.NewContainerParse("size", 0, fmt.Sprintf("negative size %d", r.Size))
	}
	if strings.ContainsAny(r.Extension, "\r\n") {
		return nil, errors.NewContainerParse("extension", 0, "extension must be a single line")
	}

	var buf bytes.Buffer
	buf.WriteString(r.Extension)
	buf.WriteByte('\n')
	buf.WriteString(strconv.FormatInt(r.Size, 10))
	buf.WriteByte('\n')
	for _, addr := range r.Addresses {
		buf.WriteString(addr.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// ParseRecord reads a record from its container text form. Any structural
// problem is a container parse error; nothing is guessed or repaired.
func ParseRecord(r io.Reader) (*Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, &errors.ContainerParseError{Field: "extension", Line: 1, Message: "read failed", Err: err}
		}
		return nil, errors.NewContainerParse("extension", 1, "missing extension line")
	}
	extension := scanner.Text()

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, &errors.ContainerParseError{Field: "size", Line: 2, Message: "read failed", Err: err}
		}
		return nil, errors.NewContainerParse("size", 2, "missing size line")
	}
	size, err := strconv.ParseInt(scanner.Text(), 10, 64)
	if err != nil || size < 0 {
		return nil, errors.NewContainerParse("size", 2, fmt.Sprintf("not a non-negative integer: %q", scanner.Text()))
	}

	rec := &Record{Extension: extension, Size: size}
	line := 2
	for scanner.Scan() {
		line++
		addr, err := coord.ParseAddress(scanner.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		rec.Addresses = append(rec.Addresses, addr)
	}
	if err := scanner.Err(); err != nil {
		return nil, &errors.ContainerParseError{Field: "address", Line: line + 1, Message: "read failed", Err: err}
	}
	return rec, nil
}

// Pages returns the number of addresses in the record.
func (r *Record) Pages() int {
	return len(r.Addresses)
}
