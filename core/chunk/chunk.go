// Package chunk splits symbol text into fixed-length pages and joins pages
// back into symbol text.
//
// Only the final page may be shorter than the page length; it is padded
// with the alphabet's sentinel symbol up to full length. Joining never
// searches for the sentinel: the caller supplies the exact symbol count
// derived from the stored byte size, and everything beyond it is
// discarded. Decode correctness therefore does not depend on the sentinel
// being unreachable inside real data.
package chunk

import "github.com/FocuswithJustin/BabelVault/core/errors"

// Split cuts symbols into pages of exactly pageLen, padding the final page
// with pad. Empty input yields no pages; an input whose length is an exact
// multiple of pageLen yields no all-sentinel trailing page.
func Split(symbols []byte, pageLen int, pad byte) [][]byte {
	if pageLen <= 0 {
		return nil
	}

	pages := make([][]byte, 0, (len(symbols)+pageLen-1)/pageLen)
	for off := 0; off < len(symbols); off += pageLen {
		page := make([]byte, pageLen)
		n := copy(page, symbols[off:])
		for i := n; i < pageLen; i++ {
			page[i] = pad
		}
		pages = append(pages, page)
	}
	return pages
}

// Join concatenates pages in order and truncates the result to exactly
// symbolCount symbols, discarding trailing padding. Each page must be
// exactly pageLen long, and the pages together must cover symbolCount.
func Join(pages [][]byte, symbolCount int64, pageLen int) ([]byte, error) {
	for i, page := range pages {
		if len(page) != pageLen {
			return nil, errors.Wrapf(
				errors.NewMalformedBlock("wrong page length"),
				"page %d has %d symbols, want %d", i, len(page), pageLen)
		}
	}

	total := int64(len(pages)) * int64(pageLen)
	if symbolCount > total {
		return nil, errors.NewByteLengthMismatch("symbols", symbolCount, total)
	}

	out := make([]byte, 0, symbolCount)
	for _, page := range pages {
		if int64(len(out))+int64(pageLen) <= symbolCount {
			out = append(out, page...)
			continue
		}
		out = append(out, page[:symbolCount-int64(len(out))]...)
		break
	}
	return out, nil
}
