package lexer

import (
	"go/token"
	"unicode"
	"unicode/utf8"

	"github.com/lam-lang/lam/frontend/ast"
	"github.com/lam-lang/lam/frontend/lamerr"
	"github.com/lam-lang/lam/internal/log"
)

// Kind enumerates the token categories of the language.
type Kind int

const (
	EOF Kind = iota
	Lambda
	Dot
	LParen
	RParen
	Colon
	Equals
	Arrow
	Let
	In
	Ident
	TypeName
	Number
	Bool
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Lambda:
		return "Lambda"
	case Dot:
		return "Dot"
	case LParen:
		return "L-Paren"
	case RParen:
		return "R-Paren"
	case Colon:
		return "Colon"
	case Equals:
		return "Equals"
	case Arrow:
		return "Arrow"
	case Let:
		return "Let"
	case In:
		return "In"
	case Ident:
		return "Identifier"
	case TypeName:
		return "Type"
	case Number:
		return "Number"
	case Bool:
		return "Bool"
	}
	return "Unknown"
}

// Token is a single lexeme together with its source range.
type Token struct {
	Kind Kind
	Text string
	ast.Range
}

var logger = log.DefaultLogger.With("section", "lexer")

var oneCharacterTokens = map[rune]Kind{
	'\\': Lambda,
	'.':  Dot,
	'(':  LParen,
	')':  RParen,
	':':  Colon,
	'=':  Equals,
}

var keywords = map[string]Kind{
	"let":   Let,
	"in":    In,
	"true":  Bool,
	"false": Bool,
}

type scanner struct {
	src    *Source
	offset int
}

func (s *scanner) eof() bool {
	return s.offset >= len(s.src.content)
}

func (s *scanner) peek() rune {
	r, _ := utf8.DecodeRuneInString(s.src.content[s.offset:])
	return r
}

func (s *scanner) forward() {
	_, width := utf8.DecodeRuneInString(s.src.content[s.offset:])
	s.offset += width
}

func (s *scanner) rangeFrom(start int) ast.Range {
	return ast.Range{PosStart: token.Pos(start + 1), PosEnd: token.Pos(s.offset + 1)}
}

// tokenizeWhile consumes runes while predicate holds, starting at the current
// rune, and produces one token of the given kind.
func (s *scanner) tokenizeWhile(kind Kind, predicate func(rune) bool) Token {
	start := s.offset
	s.forward()
	for !s.eof() && predicate(s.peek()) {
		s.forward()
	}
	return Token{Kind: kind, Text: s.src.content[start:s.offset], Range: s.rangeFrom(start)}
}

// Lex tokenizes the whole source. On an unknown character it returns the
// tokens read so far along with the error.
func Lex(src *Source) ([]Token, error) {
	s := &scanner{src: src}
	var tokens []Token

	for !s.eof() {
		char := s.peek()
		start := s.offset

		switch {
		case unicode.IsSpace(char):
			s.forward()

		case oneCharacterTokens[char] != 0:
			s.forward()
			tokens = append(tokens, Token{
				Kind:  oneCharacterTokens[char],
				Text:  string(char),
				Range: s.rangeFrom(start),
			})

		case char >= '0' && char <= '9':
			tokens = append(tokens, s.tokenizeWhile(Number, func(r rune) bool {
				return r >= '0' && r <= '9'
			}))

		case unicode.IsLetter(char):
			tok := s.tokenizeWhile(Ident, unicode.IsLetter)
			if kind, isKeyword := keywords[tok.Text]; isKeyword {
				tok.Kind = kind
			} else if unicode.IsUpper([]rune(tok.Text)[0]) {
				tok.Kind = TypeName
			}
			tokens = append(tokens, tok)

		case char == '-':
			s.forward()
			if !s.eof() && s.peek() == '>' {
				s.forward()
				tokens = append(tokens, Token{Kind: Arrow, Text: "->", Range: s.rangeFrom(start)})
				continue
			}
			return tokens, lamerr.New(lamerr.NewUnknownCharacter{
				Positioner: s.rangeFrom(start),
				Character:  char,
			})

		default:
			s.forward()
			return tokens, lamerr.New(lamerr.NewUnknownCharacter{
				Positioner: s.rangeFrom(start),
				Character:  char,
			})
		}
	}

	logger.Debug("lexed source", "tokens", len(tokens))
	return tokens, nil
}
