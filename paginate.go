package prettytable

import (
	"fmt"
	"strings"
)

// Paginate renders the table in pages of at most pageLength rows, each
// with its own header and borders, joined by form feeds. Column widths
// are computed per page. A table without rows renders as one page.
func (t *Table) Paginate(pageLength int) (string, error) {
	if pageLength <= 0 {
		return "", fmt.Errorf("%w: page length %d", ErrInvalidOption, pageLength)
	}
	var pages []string
	for start := 0; ; start += pageLength {
		end := min(start+pageLength, len(t.rows))
		page, err := t.Slice(start, end)
		if err != nil {
			return "", err
		}
		s, err := page.Render()
		if err != nil {
			return "", err
		}
		pages = append(pages, s)
		if end == len(t.rows) {
			break
		}
	}
	return strings.Join(pages, "\f"), nil
}
