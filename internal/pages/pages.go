// Package pages provides page sets for the pager: in-memory slices,
// delimited documents and directories discovered on disk.
package pages

import (
	"errors"
	"strings"

	"github.com/samber/lo"

	"swiper/internal/domain"
)

// ErrEmptySource is returned when a source yields no pages
var ErrEmptySource = errors.New("source contains no pages")

// Slice is a fixed, in-memory page set
type Slice []domain.Page

var _ domain.Provider = Slice(nil)

// PageAt returns the page at index if it is in range
func (s Slice) PageAt(index int) (domain.Page, bool) {
	if index < 0 || index >= len(s) {
		return nil, false
	}
	return s[index], true
}

// FromStrings builds a Slice of text pages
func FromStrings(bodies ...string) Slice {
	return lo.Map(bodies, func(body string, _ int) domain.Page {
		return domain.TextPage{Title: titleOf(body), Body: body}
	})
}

// Split cuts text into pages on lines equal to delimiter. Leading and
// trailing blank lines of each page are dropped, as are pages left empty.
func Split(text, delimiter string) (Slice, error) {
	if delimiter == "" {
		delimiter = "---"
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var chunks []string
	var current []string
	flush := func() {
		chunks = append(chunks, strings.Join(trimBlank(current), "\n"))
		current = nil
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == delimiter {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	chunks = lo.Compact(chunks)
	if len(chunks) == 0 {
		return nil, ErrEmptySource
	}
	return FromStrings(chunks...), nil
}

func trimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// titleOf is the first non-blank line, without markdown heading marks
func titleOf(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "# "))
		if line != "" {
			return line
		}
	}
	return ""
}
