package chunk

import (
	"bytes"
	"strings"
	"testing"

	"github.com/FocuswithJustin/BabelVault/core/errors"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
		pageLen int
		want    []string
	}{
		{name: "empty", symbols: "", pageLen: 4, want: nil},
		{name: "exact multiple", symbols: "abcdefgh", pageLen: 4, want: []string{"abcd", "efgh"}},
		{name: "padded tail", symbols: "abcde", pageLen: 4, want: []string{"abcd", "e..."}},
		{name: "single short page", symbols: "ab", pageLen: 4, want: []string{"ab.."}},
		{name: "page length one", symbols: "abc", pageLen: 1, want: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := Split([]byte(tt.symbols), tt.pageLen, '.')
			if len(pages) != len(tt.want) {
				t.Fatalf("Split produced %d pages, want %d", len(pages), len(tt.want))
			}
			for i, page := range pages {
				if string(page) != tt.want[i] {
					t.Errorf("page %d = %q, want %q", i, page, tt.want[i])
				}
			}
		})
	}
}

func TestSplitPadsOnlyTailPositions(t *testing.T) {
	symbols := []byte(strings.Repeat("x", 10))
	pages := Split(symbols, 8, '.')

	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if string(pages[1]) != "xx......" {
		t.Errorf("final page = %q, want sentinel only beyond real data", pages[1])
	}
}

func TestJoinRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 16} {
		symbols := []byte(strings.Repeat("ab", n)[:n])
		pages := Split(symbols, 8, '.')
		got, err := Join(pages, int64(n), 8)
		if err != nil {
			t.Fatalf("Join failed for length %d: %v", n, err)
		}
		if !bytes.Equal(got, symbols) {
			t.Errorf("round trip for length %d = %q, want %q", n, got, symbols)
		}
	}
}

func TestJoinTruncatesByCountNotSentinel(t *testing.T) {
	// The final real symbol is the sentinel character itself. Truncation
	// must still be driven by the count alone.
	pages := [][]byte{[]byte("ab..")}
	got, err := Join(pages, 3, 4)
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if string(got) != "ab." {
		t.Errorf("Join = %q, want %q", got, "ab.")
	}
}

func TestJoinErrors(t *testing.T) {
	tests := []struct {
		name        string
		pages       [][]byte
		symbolCount int64
		wantErr     error
	}{
		{
			name:        "count exceeds pages",
			pages:       [][]byte{[]byte("abcd")},
			symbolCount: 5,
			wantErr:     errors.ErrByteLengthMismatch,
		},
		{
			name:        "short page",
			pages:       [][]byte{[]byte("abcd"), []byte("ab")},
			symbolCount: 6,
			wantErr:     errors.ErrMalformedBlock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Join(tt.pages, tt.symbolCount, 4)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Join error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
