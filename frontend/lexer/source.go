package lexer

import (
	"go/token"
	"strings"
)

// Source is an input buffer with a precomputed line index, so token positions
// can be mapped back to line:column pairs when reporting errors.
type Source struct {
	content    string
	lineStarts []int
}

func NewSource(content string) *Source {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Source{content: content, lineStarts: starts}
}

func (s *Source) Content() string { return s.content }

// LineCol maps a position (1-based byte offset) to 1-based line and column.
func (s *Source) LineCol(pos token.Pos) (line, col int) {
	offset := int(pos) - 1
	if offset < 0 {
		offset = 0
	}
	line = 1
	for i, start := range s.lineStarts {
		if start > offset {
			break
		}
		line = i + 1
	}
	return line, offset - s.lineStarts[line-1] + 1
}

// Line returns the content of the given 1-based line, without its newline.
func (s *Source) Line(n int) string {
	if n < 1 || n > len(s.lineStarts) {
		return ""
	}
	start := s.lineStarts[n-1]
	end := len(s.content)
	if n < len(s.lineStarts) {
		end = s.lineStarts[n] - 1
	}
	return strings.TrimSuffix(s.content[start:end], "\r")
}
