package coord

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/BabelVault/core/errors"
)

// hexBase is the serialization base of the hexagon identifier. Base 36
// text is lossless at any magnitude; the identifier must never pass
// through a fixed-width numeric type.
const hexBase = 36

// addressFields is the number of colon-separated fields in the text form.
const addressFields = 5

// String serializes the address as hex:wall:shelf:volume:page. The
// identifier is base-36 lowercase, the bounded levels decimal.
func (a Address) String() string {
	hex := "0"
	if a.Hex != nil {
		hex = a.Hex.Text(hexBase)
	}
	return fmt.Sprintf("%s:%d:%d:%d:%d", hex, a.Wall, a.Shelf, a.Volume, a.Page)
}

// Equal reports whether two addresses locate the same page.
func (a Address) Equal(b Address) bool {
	if a.Wall != b.Wall || a.Shelf != b.Shelf || a.Volume != b.Volume || a.Page != b.Page {
		return false
	}
	ah, bh := a.Hex, b.Hex
	if ah == nil {
		ah = new(big.Int)
	}
	if bh == nil {
		bh = new(big.Int)
	}
	return ah.Cmp(bh) == 0
}

// ParseAddress parses the hex:wall:shelf:volume:page text form. It checks
// syntax and non-negativity only; range checks against the geometry happen
// in BlockOf.
func ParseAddress(s string) (Address, error) {
	fields := strings.Split(s, ":")
	if len(fields) != addressFields {
		return Address{}, errors.NewContainerParse("address", 0,
			fmt.Sprintf("want %d fields, got %d", addressFields, len(fields)))
	}

	hex, ok := new(big.Int).SetString(fields[0], hexBase)
	if !ok || hex.Sign() < 0 {
		return Address{}, errors.NewContainerParse("address", 0,
			fmt.Sprintf("bad hexagon identifier %q", fields[0]))
	}

	addr := Address{Hex: hex}
	levels := []struct {
		name string
		dst  *int64
	}{
		{"wall", &addr.Wall},
		{"shelf", &addr.Shelf},
		{"volume", &addr.Volume},
		{"page", &addr.Page},
	}
	for i, level := range levels {
		v, err := strconv.ParseInt(fields[i+1], 10, 64)
		if err != nil || v < 0 {
			return Address{}, errors.NewContainerParse("address", 0,
				fmt.Sprintf("bad %s index %q", level.name, fields[i+1]))
		}
		*level.dst = v
	}
	return addr, nil
}
