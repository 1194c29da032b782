// Package coord implements the bijection between fixed-length symbol pages
// and structured library addresses.
//
// A page of L symbols is the base-R representation of one non-negative
// integer, where R is the alphabet radix. The integer is decomposed into a
// hexagon identifier plus wall, shelf, volume and page indices by exact
// mixed-radix division; the identifier level is unbounded, so every
// possible page has exactly one address and every well-formed address
// regenerates exactly one page. All arithmetic is exact big-integer
// multiply, add, and divide-with-remainder. No floating point anywhere.
package coord

import (
	"math/big"

	"github.com/FocuswithJustin/BabelVault/core/alphabet"
	"github.com/FocuswithJustin/BabelVault/core/errors"
)

// PageLength is the number of symbols on one library page.
const PageLength = 3239

// Geometry fixes the bounded coordinate levels of the library. The bounds
// are part of the container format contract: changing any of them breaks
// decode of previously written containers.
type Geometry struct {
	Walls   int64
	Shelves int64
	Volumes int64
	Pages   int64
}

// DefaultGeometry is the library layout every container is written
// against: 4 walls per hexagon, 5 shelves per wall, 32 volumes per shelf,
// 410 pages per volume.
var DefaultGeometry = Geometry{Walls: 4, Shelves: 5, Volumes: 32, Pages: 410}

// Address locates one page in the library. Hex is the unbounded hexagon
// identifier carrying the high-order digits of the page integer; the
// bounded levels carry the low-order digits.
type Address struct {
	Hex    *big.Int
	Wall   int64
	Shelf  int64
	Volume int64
	Page   int64
}

// Transform converts between symbol pages and addresses for one alphabet,
// geometry and page length. It holds no mutable state and is safe for
// concurrent use.
type Transform struct {
	ab      *alphabet.Alphabet
	geo     Geometry
	pageLen int
	radix   *big.Int
}

// NewTransform creates a transform over the given alphabet, geometry and
// page length.
func NewTransform(ab *alphabet.Alphabet, geo Geometry, pageLen int) *Transform {
	return &Transform{
		ab:      ab,
		geo:     geo,
		pageLen: pageLen,
		radix:   big.NewInt(int64(ab.Radix())),
	}
}

// Default returns a transform over the library alphabet, the default
// geometry and the standard page length.
func Default() *Transform {
	return NewTransform(alphabet.Default(), DefaultGeometry, PageLength)
}

// PageLen returns the page length the transform operates on.
func (t *Transform) PageLen() int {
	return t.pageLen
}

// Geometry returns the bounded coordinate levels.
func (t *Transform) Geometry() Geometry {
	return t.geo
}

// AddressOf computes the unique address of a symbol page. It is total over
// valid pages: every length-L string over the alphabet has a reachable
// address. It fails only on a page of the wrong length or containing a
// symbol outside the alphabet.
func (t *Transform) AddressOf(page []byte) (Address, error) {
	if len(page) != t.pageLen {
		return Address{}, errors.Wrapf(
			errors.NewMalformedBlock("wrong page length"),
			"page has %d symbols, want %d", len(page), t.pageLen)
	}

	// Horner accumulation: most significant symbol first.
	n := new(big.Int)
	d := new(big.Int)
	for i, sym := range page {
		digit, ok := t.ab.Index(sym)
		if !ok {
			return Address{}, errors.NewMalformedSymbol(i, sym, "symbol not in alphabet")
		}
		n.Mul(n, t.radix)
		n.Add(n, d.SetInt64(int64(digit)))
	}

	// Peel bounded levels least significant first. The remaining quotient
	// is the hexagon identifier.
	rem := new(big.Int)
	peel := func(bound int64) int64 {
		n.QuoRem(n, d.SetInt64(bound), rem)
		return rem.Int64()
	}

	addr := Address{}
	addr.Page = peel(t.geo.Pages)
	addr.Volume = peel(t.geo.Volumes)
	addr.Shelf = peel(t.geo.Shelves)
	addr.Wall = peel(t.geo.Walls)
	addr.Hex = n
	return addr, nil
}

// BlockOf regenerates the symbol page at an address. It is the exact
// inverse of AddressOf and fails only on a bounded sub-index outside its
// declared range, a negative or missing identifier, or an identifier too
// large to correspond to any page.
func (t *Transform) BlockOf(addr Address) ([]byte, error) {
	if err := t.validate(addr); err != nil {
		return nil, err
	}

	// Horner accumulation in the reverse peel order.
	n := new(big.Int).Set(addr.Hex)
	d := new(big.Int)
	accumulate := func(bound, index int64) {
		n.Mul(n, d.SetInt64(bound))
		n.Add(n, d.SetInt64(index))
	}
	accumulate(t.geo.Walls, addr.Wall)
	accumulate(t.geo.Shelves, addr.Shelf)
	accumulate(t.geo.Volumes, addr.Volume)
	accumulate(t.geo.Pages, addr.Page)

	// Expand into exactly pageLen base-R digits, least significant last.
	// Unused leading positions keep the zero symbol: leading zero digits
	// are significant page content, and integer 0 is the all-zero page.
	page := make([]byte, t.pageLen)
	for i := range page {
		page[i] = t.ab.Zero()
	}
	rem := new(big.Int)
	for i := t.pageLen - 1; n.Sign() > 0; i-- {
		if i < 0 {
			return nil, errors.NewAddressOutOfRange("identifier", 0, 0)
		}
		n.QuoRem(n, t.radix, rem)
		page[i] = t.ab.Symbol(int(rem.Int64()))
	}
	return page, nil
}

func (t *Transform) validate(addr Address) error {
	if addr.Hex == nil || addr.Hex.Sign() < 0 {
		return errors.NewAddressOutOfRange("identifier", 0, 0)
	}
	checks := []struct {
		level string
		value int64
		max   int64
	}{
		{"wall", addr.Wall, t.geo.Walls},
		{"shelf", addr.Shelf, t.geo.Shelves},
		{"volume", addr.Volume, t.geo.Volumes},
		{"page", addr.Page, t.geo.Pages},
	}
	for _, c := range checks {
		if c.value < 0 || c.value >= c.max {
			return errors.NewAddressOutOfRange(c.level, c.value, c.max)
		}
	}
	return nil
}
