package parser

import (
	"strings"
	"unicode"

	"github.com/KirkDiggler/dicenotation/internal/errors"
)

// TokenKind classifies one lexical unit. Multi-character modifier
// keywords (`kh`, `ro`, `!!o`, `C>`, `#cs`, ...) are recognized at the
// lexer level by maximal munch against a fixed keyword set — there are
// no identifiers in this grammar, so every letter run is either a
// known keyword or a lex error.
type TokenKind int

const (
	TokEOF TokenKind = iota
	TokInt
	TokPlus
	TokMinus
	TokStar
	TokComma
	TokLParen
	TokRParen
	TokLBracket
	TokRBracket
	TokLBrace
	TokRBrace
	TokEq
	TokGt
	TokLt
	TokGte
	TokLte
	TokHash      // #, #s, #f, #cs, #cf (comparator/int follow as separate tokens)
	TokExplode   // !, !o, !!, !!o
	TokD         // d (or D, except D66)
	TokD66       // D66, case-sensitive
	TokFudgeDie  // dF / DF
	TokPercent   // d% / D%
	TokReroll    // r, ro
	TokDropCmp   // -<, -<=, ->, ->=, -=
	TokDropHiLo  // -h, -l, kh, kl, k
	TokClamp     // C>, C<, c>, c<
	TokSort      // s, sd
	TokPenetrate // p
)

// Token is one lexed unit: its kind, source text (for diagnostics and
// re-printing), and byte offset.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// Lexer scans a dice expression into a Token stream, tolerating
// whitespace freely between tokens (never inside one).
type Lexer struct {
	src []rune
	pos int
}

// NewLexer returns a Lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

func (l *Lexer) peek(offset int) rune {
	i := l.pos + offset
	if i < 0 || i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.src) && unicode.IsSpace(l.src[l.pos]) {
		l.pos++
	}
}

// matchCI reports whether lit occurs at the current position
// case-insensitively, without consuming it.
func (l *Lexer) matchCI(lit string) bool {
	lr := []rune(lit)
	if l.pos+len(lr) > len(l.src) {
		return false
	}
	for i, r := range lr {
		if unicode.ToLower(l.src[l.pos+i]) != unicode.ToLower(r) {
			return false
		}
	}
	return true
}

// matchCS is matchCI's case-sensitive counterpart.
func (l *Lexer) matchCS(lit string) bool {
	lr := []rune(lit)
	if l.pos+len(lr) > len(l.src) {
		return false
	}
	for i, r := range lr {
		if l.src[l.pos+i] != r {
			return false
		}
	}
	return true
}

func (l *Lexer) take(n int) string {
	text := string(l.src[l.pos : l.pos+n])
	l.pos += n
	return text
}

// Next returns the next token, or a TokEOF token at end of input.
func (l *Lexer) Next() (Token, error) {
	l.skipSpace()
	start := l.pos
	if l.pos >= len(l.src) {
		return Token{Kind: TokEOF, Pos: start}, nil
	}

	c := l.src[l.pos]

	switch {
	case unicode.IsDigit(c):
		j := l.pos
		for j < len(l.src) && unicode.IsDigit(l.src[j]) {
			j++
		}
		return Token{Kind: TokInt, Text: l.take(j - l.pos), Pos: start}, nil

	case c == '+':
		return Token{Kind: TokPlus, Text: l.take(1), Pos: start}, nil
	case c == '*':
		return Token{Kind: TokStar, Text: l.take(1), Pos: start}, nil
	case c == ',':
		return Token{Kind: TokComma, Text: l.take(1), Pos: start}, nil
	case c == '(':
		return Token{Kind: TokLParen, Text: l.take(1), Pos: start}, nil
	case c == ')':
		return Token{Kind: TokRParen, Text: l.take(1), Pos: start}, nil
	case c == '[':
		return Token{Kind: TokLBracket, Text: l.take(1), Pos: start}, nil
	case c == ']':
		return Token{Kind: TokRBracket, Text: l.take(1), Pos: start}, nil
	case c == '{':
		return Token{Kind: TokLBrace, Text: l.take(1), Pos: start}, nil
	case c == '}':
		return Token{Kind: TokRBrace, Text: l.take(1), Pos: start}, nil

	case c == '-':
		return l.lexMinusOrDrop(start)

	case c == '!':
		if l.matchCI("!!o") {
			return Token{Kind: TokExplode, Text: l.take(3), Pos: start}, nil
		}
		if l.matchCI("!o") {
			return Token{Kind: TokExplode, Text: l.take(2), Pos: start}, nil
		}
		if l.matchCS("!!") {
			return Token{Kind: TokExplode, Text: l.take(2), Pos: start}, nil
		}
		return Token{Kind: TokExplode, Text: l.take(1), Pos: start}, nil

	case c == '#':
		for _, suffix := range []string{"cs", "cf", "s", "f"} {
			if l.matchCI("#" + suffix) {
				return Token{Kind: TokHash, Text: l.take(1 + len(suffix)), Pos: start}, nil
			}
		}
		return Token{Kind: TokHash, Text: l.take(1), Pos: start}, nil

	case c == '>':
		if l.matchCS(">=") {
			return Token{Kind: TokGte, Text: l.take(2), Pos: start}, nil
		}
		return Token{Kind: TokGt, Text: l.take(1), Pos: start}, nil
	case c == '<':
		if l.matchCS("<=") {
			return Token{Kind: TokLte, Text: l.take(2), Pos: start}, nil
		}
		return Token{Kind: TokLt, Text: l.take(1), Pos: start}, nil
	case c == '=':
		return Token{Kind: TokEq, Text: l.take(1), Pos: start}, nil

	case c == 'D':
		if l.matchCS("D66") {
			return Token{Kind: TokD66, Text: l.take(3), Pos: start}, nil
		}
		return l.lexDOrKeyword(start)

	case unicode.IsLetter(c):
		return l.lexDOrKeyword(start)
	}

	return Token{}, errors.FormatErrorf(string(l.src), start, "unexpected character %q", c)
}

// lexMinusOrDrop disambiguates binary/unary `-` from the `-<`, `-<=`,
// `->`, `->=`, `-=`, `-h`, `-l` drop-modifier keywords, by maximal munch
// against the fixed keyword set (longest literal first).
func (l *Lexer) lexMinusOrDrop(start int) (Token, error) {
	for _, lit := range []string{"-<=", "->=", "-<", "->", "-="} {
		if l.matchCS(lit) {
			return Token{Kind: TokDropCmp, Text: l.take(len(lit)), Pos: start}, nil
		}
	}
	for _, lit := range []string{"-h", "-l"} {
		if l.matchCI(lit) {
			return Token{Kind: TokDropHiLo, Text: l.take(2), Pos: start}, nil
		}
	}
	return Token{Kind: TokMinus, Text: l.take(1), Pos: start}, nil
}

// lexDOrKeyword handles every remaining alphabetic keyword: the dice
// operator `d`/`D` (and its `dF`/`d%` suffixed forms), reroll `r`/`ro`,
// drop/keep `kh`/`kl`/`k`, clamp `C>`/`c<`, sort `s`/`sd`, and
// penetrate `p`.
func (l *Lexer) lexDOrKeyword(start int) (Token, error) {
	switch unicode.ToLower(l.src[l.pos]) {
	case 'd':
		if l.matchCI("df") {
			return Token{Kind: TokFudgeDie, Text: l.take(2), Pos: start}, nil
		}
		if l.matchCI("d%") {
			return Token{Kind: TokPercent, Text: l.take(2), Pos: start}, nil
		}
		return Token{Kind: TokD, Text: l.take(1), Pos: start}, nil
	case 'r':
		if l.matchCI("ro") {
			return Token{Kind: TokReroll, Text: l.take(2), Pos: start}, nil
		}
		return Token{Kind: TokReroll, Text: l.take(1), Pos: start}, nil
	case 'k':
		if l.matchCI("kh") {
			return Token{Kind: TokDropHiLo, Text: l.take(2), Pos: start}, nil
		}
		if l.matchCI("kl") {
			return Token{Kind: TokDropHiLo, Text: l.take(2), Pos: start}, nil
		}
		return Token{Kind: TokDropHiLo, Text: l.take(1), Pos: start}, nil
	case 'c':
		if l.peek(1) == '>' || l.peek(1) == '<' {
			return Token{Kind: TokClamp, Text: l.take(2), Pos: start}, nil
		}
	case 's':
		if l.matchCI("sd") {
			return Token{Kind: TokSort, Text: l.take(2), Pos: start}, nil
		}
		return Token{Kind: TokSort, Text: l.take(1), Pos: start}, nil
	case 'p':
		return Token{Kind: TokPenetrate, Text: l.take(1), Pos: start}, nil
	}
	return Token{}, errors.FormatErrorf(string(l.src), start, "unexpected character %q", l.src[l.pos])
}

// NormalizedKind returns text lower-cased, for case-insensitive keyword
// comparison (everything except the D66 literal, which the lexer
// already disambiguates by case before this is ever consulted).
func NormalizedKind(text string) string {
	return strings.ToLower(text)
}
