package vault

import (
	"math/big"
	"strings"
	"testing"

	"github.com/FocuswithJustin/BabelVault/core/coord"
	"github.com/FocuswithJustin/BabelVault/core/errors"
)

func TestRecordMarshalParseRoundTrip(t *testing.T) {
	rec := &Record{
		Extension: "pdf",
		Size:      123456,
		Addresses: []coord.Address{
			{Hex: big.NewInt(0)},
			{Hex: big.NewInt(98765432109876), Wall: 3, Shelf: 4, Volume: 31, Page: 409},
		},
	}

	text, err := rec.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}

	got, err := ParseRecord(strings.NewReader(string(text)))
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}
	if got.Extension != rec.Extension {
		t.Errorf("Extension = %q, want %q", got.Extension, rec.Extension)
	}
	if got.Size != rec.Size {
		t.Errorf("Size = %d, want %d", got.Size, rec.Size)
	}
	if len(got.Addresses) != len(rec.Addresses) {
		t.Fatalf("address count = %d, want %d", len(got.Addresses), len(rec.Addresses))
	}
	for i := range rec.Addresses {
		if !got.Addresses[i].Equal(rec.Addresses[i]) {
			t.Errorf("address %d = %s, want %s", i, got.Addresses[i], rec.Addresses[i])
		}
	}
}

func TestRecordEmptyExtensionAndNoAddresses(t *testing.T) {
	rec := &Record{Extension: "", Size: 0}

	text, err := rec.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(text) != "\n0\n" {
		t.Errorf("MarshalText = %q, want %q", text, "\n0\n")
	}

	got, err := ParseRecord(strings.NewReader(string(text)))
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}
	if got.Extension != "" || got.Size != 0 || len(got.Addresses) != 0 {
		t.Errorf("ParseRecord = %+v, want empty record", got)
	}
}

func TestParseRecordErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty input", in: ""},
		{name: "missing size line", in: "txt\n"},
		{name: "non-numeric size", in: "txt\nabc\n"},
		{name: "negative size", in: "txt\n-5\n"},
		{name: "malformed address line", in: "txt\n10\nnot-an-address\n"},
		{name: "address with bad field count", in: "txt\n10\nabc:1:2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecord(strings.NewReader(tt.in))
			if !errors.Is(err, errors.ErrContainerParse) {
				t.Errorf("ParseRecord(%q) error = %v, want ErrContainerParse", tt.in, err)
			}
		})
	}
}

func TestMarshalTextRejectsBadFields(t *testing.T) {
	if _, err := (&Record{Size: -1}).MarshalText(); !errors.Is(err, errors.ErrContainerParse) {
		t.Errorf("negative size error = %v, want ErrContainerParse", err)
	}
	if _, err := (&Record{Extension: "a\nb"}).MarshalText(); !errors.Is(err, errors.ErrContainerParse) {
		t.Errorf("multiline extension error = %v, want ErrContainerParse", err)
	}
}

func TestParseRecordPreservesHugeIdentifier(t *testing.T) {
	// Identifiers far beyond machine-word width must round-trip exactly.
	huge := new(big.Int).Exp(big.NewInt(29), big.NewInt(3000), nil)
	rec := &Record{
		Extension: "bin",
		Size:      1,
		Addresses: []coord.Address{{Hex: huge, Wall: 1, Shelf: 2, Volume: 3, Page: 4}},
	}

	text, err := rec.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	got, err := ParseRecord(strings.NewReader(string(text)))
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}
	if got.Addresses[0].Hex.Cmp(huge) != 0 {
		t.Error("huge identifier lost precision through the text form")
	}
}
