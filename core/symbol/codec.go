// Package symbol converts raw bytes to and from library symbol text.
//
// The alphabet radix (29) does not align to a power of two, so a byte
// cannot map to a single symbol. Each byte expands to a fixed pair of
// letter symbols instead: the high digit b/26 and the low digit b%26,
// most significant first. The expansion only ever uses the first 26
// alphabet digits, so the ',', ' ' and '.' symbols never occur in data
// encoding and the '.' padding sentinel stays unambiguous.
package symbol

import (
	"github.com/FocuswithJustin/BabelVault/core/alphabet"
	"github.com/FocuswithJustin/BabelVault/core/errors"
)

// SymbolsPerByte is the fixed byte-to-symbol expansion ratio. Both
// directions of the codec and the decoder's padding cut point rely on it.
const SymbolsPerByte = 2

// letterRange is the digit span used for data symbols. 26*26 = 676 covers
// all 256 byte values with two symbols.
const letterRange = 26

// Codec converts between bytes and symbol text over a fixed alphabet.
type Codec struct {
	ab *alphabet.Alphabet
}

// NewCodec creates a codec over the given alphabet. The alphabet's first
// 26 digits carry data; the remaining symbols are reserved.
func NewCodec(ab *alphabet.Alphabet) *Codec {
	return &Codec{ab: ab}
}

// SymbolCount returns the exact number of symbols that encode byteCount
// bytes. The decoder derives its truncation point from this, never from
// inspecting content for the padding sentinel.
func SymbolCount(byteCount int64) int64 {
	return byteCount * SymbolsPerByte
}

// BytesToSymbols expands data into symbol text, two symbols per byte,
// most significant digit first. The mapping is total and injective.
func (c *Codec) BytesToSymbols(data []byte) []byte {
	out := make([]byte, 0, len(data)*SymbolsPerByte)
	for _, b := range data {
		out = append(out, c.ab.Symbol(int(b)/letterRange), c.ab.Symbol(int(b)%letterRange))
	}
	return out
}

// SymbolsToBytes is the exact left inverse of BytesToSymbols restricted to
// the known original byte count. Trailing symbols beyond the count, such
// as chunk padding, are ignored.
func (c *Codec) SymbolsToBytes(symbols []byte, byteCount int64) ([]byte, error) {
	need := SymbolCount(byteCount)
	if int64(len(symbols)) < need {
		return nil, errors.NewByteLengthMismatch("symbols", need, int64(len(symbols)))
	}

	out := make([]byte, 0, byteCount)
	for i := int64(0); i < need; i += SymbolsPerByte {
		hi, ok := c.ab.Index(symbols[i])
		if !ok {
			return nil, errors.NewMalformedSymbol(int(i), symbols[i], "symbol not in alphabet")
		}
		lo, ok := c.ab.Index(symbols[i+1])
		if !ok {
			return nil, errors.NewMalformedSymbol(int(i+1), symbols[i+1], "symbol not in alphabet")
		}
		if hi >= letterRange || lo >= letterRange {
			return nil, errors.NewMalformedSymbol(int(i), symbols[i], "reserved symbol in data position")
		}
		v := hi*letterRange + lo
		if v > 0xFF {
			return nil, errors.NewMalformedSymbol(int(i), symbols[i], "symbol pair exceeds byte range")
		}
		out = append(out, byte(v))
	}
	return out, nil
}
