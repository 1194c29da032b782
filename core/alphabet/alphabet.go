// Package alphabet defines the ordered symbol set the library corpus is
// written in. An Alphabet is an immutable configuration value: components
// receive it explicitly instead of reading process-wide state, so the codec
// can be exercised against alternate alphabets in tests.
package alphabet

import "fmt"

// DefaultSymbols is the 29-symbol library alphabet. Symbol order is digit
// order: 'a' is digit 0 and '.' is digit 28.
const DefaultSymbols = "abcdefghijklmnopqrstuvwxyz, ."

// DefaultPad is the reserved padding sentinel. Data encoding never emits
// it, so it only ever appears in the tail of a padded final page.
const DefaultPad = '.'

// Alphabet is an ordered, fixed symbol set. Its size is the working radix
// for every arithmetic step in the codec.
type Alphabet struct {
	symbols []byte
	index   [256]int16
	pad     byte
}

var defaultAlphabet *Alphabet

func init() {
	a, err := New(DefaultSymbols, DefaultPad)
	if err != nil {
		panic(fmt.Sprintf("alphabet: invalid default alphabet: %v", err))
	}
	defaultAlphabet = a
}

// Default returns the shared library alphabet.
func Default() *Alphabet {
	return defaultAlphabet
}

// New builds an alphabet from an ordered symbol string and a pad sentinel.
// Symbols must be distinct single bytes and the pad must be one of them.
func New(symbols string, pad byte) (*Alphabet, error) {
	if len(symbols) < 2 {
		return nil, fmt.Errorf("alphabet: need at least 2 symbols, got %d", len(symbols))
	}

	a := &Alphabet{
		symbols: []byte(symbols),
		pad:     pad,
	}
	for i := range a.index {
		a.index[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if a.index[c] != -1 {
			return nil, fmt.Errorf("alphabet: duplicate symbol %q", c)
		}
		a.index[c] = int16(i)
	}
	if a.index[pad] == -1 {
		return nil, fmt.Errorf("alphabet: pad symbol %q not in alphabet", pad)
	}
	return a, nil
}

// Radix returns the number of symbols in the alphabet.
func (a *Alphabet) Radix() int {
	return len(a.symbols)
}

// Index returns the digit value of a symbol and whether it belongs to the
// alphabet.
func (a *Alphabet) Index(sym byte) (int, bool) {
	i := a.index[sym]
	if i < 0 {
		return 0, false
	}
	return int(i), true
}

// Contains reports whether sym belongs to the alphabet.
func (a *Alphabet) Contains(sym byte) bool {
	return a.index[sym] >= 0
}

// Symbol returns the symbol for a digit value. It panics on a digit outside
// [0, Radix()); digits reaching this method always come from exact modular
// arithmetic over the radix.
func (a *Alphabet) Symbol(digit int) byte {
	return a.symbols[digit]
}

// Zero returns the symbol for digit 0, used to left-pad short digit
// expansions: leading zero digits are significant page content.
func (a *Alphabet) Zero() byte {
	return a.symbols[0]
}

// Pad returns the reserved padding sentinel.
func (a *Alphabet) Pad() byte {
	return a.pad
}

// String returns the ordered symbol string.
func (a *Alphabet) String() string {
	return string(a.symbols)
}
