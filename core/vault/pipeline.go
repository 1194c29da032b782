package vault

import (
	"strings"

	"github.com/FocuswithJustin/BabelVault/core/alphabet"
	"github.com/FocuswithJustin/BabelVault/core/chunk"
	"github.com/FocuswithJustin/BabelVault/core/coord"
	"github.com/FocuswithJustin/BabelVault/core/errors"
	"github.com/FocuswithJustin/BabelVault/core/symbol"
	"github.com/FocuswithJustin/BabelVault/internal/workpool"
)

// Pipeline runs the full encode and decode paths over one alphabet,
// geometry and page length. It is stateless across calls and safe for
// concurrent use.
type Pipeline struct {
	ab      *alphabet.Alphabet
	codec   *symbol.Codec
	xform   *coord.Transform
	workers int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithWorkers sets the worker count for per-page transforms. Zero or
// negative selects the runtime default.
func WithWorkers(n int) Option {
	return func(p *Pipeline) { p.workers = n }
}

// WithTransform substitutes the coordinate transform, for alternate page
// lengths or geometries in tests. The transform's alphabet must match the
// pipeline's.
func WithTransform(xf *coord.Transform) Option {
	return func(p *Pipeline) { p.xform = xf }
}

// New creates a pipeline over the library alphabet, the default geometry
// and the standard page length.
func New(opts ...Option) *Pipeline {
	ab := alphabet.Default()
	p := &Pipeline{
		ab:    ab,
		codec: symbol.NewCodec(ab),
		xform: coord.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Encode converts raw bytes into a container record. The extension is
// stored without a leading dot; an empty extension is allowed. Block i of
// the record always covers file positions [i*L/2, (i+1)*L/2).
func (p *Pipeline) Encode(data []byte, extension string) (*Record, error) {
	extension = strings.TrimPrefix(extension, ".")
	if strings.ContainsAny(extension, "\r\n") {
		return nil, errors.NewContainerParse("extension", 0, "extension must be a single line")
	}

	symbols := p.codec.BytesToSymbols(data)
	pages := chunk.Split(symbols, p.xform.PageLen(), p.ab.Pad())

	addrs, err := workpool.Map(p.workers, pages, p.xform.AddressOf)
	if err != nil {
		return nil, errors.Wrap(err, "encode")
	}

	return &Record{
		Extension: extension,
		Size:      int64(len(data)),
		Addresses: addrs,
	}, nil
}

// Decode reconstructs the original bytes and extension from a record. The
// padding cut point is computed from the stored byte size, never found by
// content inspection. Decode fails fast with no partial output.
func (p *Pipeline) Decode(rec *Record) ([]byte, string, error) {
	if rec.Size < 0 {
		return nil, "", errors.NewContainerParse("size", 0, "negative size")
	}

	pageLen := p.xform.PageLen()
	symbolCount := symbol.SymbolCount(rec.Size)
	wantPages := (symbolCount + int64(pageLen) - 1) / int64(pageLen)
	if int64(len(rec.Addresses)) != wantPages {
		return nil, "", errors.NewByteLengthMismatch("pages", wantPages, int64(len(rec.Addresses)))
	}

	pages, err := workpool.Map(p.workers, rec.Addresses, p.xform.BlockOf)
	if err != nil {
		return nil, "", errors.Wrap(err, "decode")
	}

	symbols, err := chunk.Join(pages, symbolCount, pageLen)
	if err != nil {
		return nil, "", errors.Wrap(err, "decode")
	}

	data, err := p.codec.SymbolsToBytes(symbols, rec.Size)
	if err != nil {
		return nil, "", errors.Wrap(err, "decode")
	}
	return data, rec.Extension, nil
}
