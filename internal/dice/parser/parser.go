// Package parser turns dice-notation text into an ast.Node tree, via a
// hand-written operator-precedence climber over parser.Lexer's token
// stream. Precedence levels mirror spec's grammar exactly: arithmetic,
// then counting, then drop/keep/clamp/sort, then reroll, then
// explode/compound/penetrate, then the dice operator itself.
package parser

import (
	"strconv"

	"github.com/KirkDiggler/dicenotation/internal/dice/ast"
	"github.com/KirkDiggler/dicenotation/internal/errors"
)

// Parser climbs precedence levels over a pre-lexed token stream.
type Parser struct {
	src    string
	tokens []Token
	pos    int
}

// Parse lexes and parses src into an expression tree.
func Parse(src string) (ast.Node, error) {
	lex := NewLexer(src)
	var tokens []Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			break
		}
	}
	p := &Parser{src: src, tokens: tokens}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != TokEOF {
		return nil, errors.FormatErrorf(src, p.cur().Pos, "unexpected token %q", p.cur().Text)
	}
	if node == nil {
		// Empty input (or an atom never followed by a dice operator)
		// parses to the integer zero.
		node = &ast.ValueNode{Text: "0"}
	}
	return node, nil
}

func (p *Parser) cur() Token {
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// parseExpr is level 1: `+`, `-`, `,`.
func (p *Parser) parseExpr() (ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().Kind {
		case TokPlus:
			p.advance()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = &ast.AddNode{Left: left, Right: right}
		case TokMinus:
			p.advance()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = &ast.SubNode{Left: left, Right: right}
		case TokComma:
			p.advance()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = &ast.CommaNode{Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

// parseTerm is level 2: `*`.
func (p *Parser) parseTerm() (ast.Node, error) {
	left, err := p.parseCount()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == TokStar {
		p.advance()
		right, err := p.parseCount()
		if err != nil {
			return nil, err
		}
		left = &ast.MulNode{Left: left, Right: right}
	}
	return left, nil
}

// countKindFor maps the hash token's (already-suffixed) text to a CountKind.
func countKindFor(text string) ast.CountKind {
	switch NormalizedKind(text) {
	case "#s":
		return ast.CountSuccess
	case "#f":
		return ast.CountFailure
	case "#cs":
		return ast.CountCritSuccess
	case "#cf":
		return ast.CountCritFailure
	default:
		return ast.CountAll
	}
}

// parseCount is level 3: `#`, `#s`, `#f`, `#cs`, `#cf`, each with an
// optional trailing comparator and integer.
func (p *Parser) parseCount() (ast.Node, error) {
	left, err := p.parseDrop()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == TokHash {
		tok := p.advance()
		cmp := p.parseCmpOp()
		right := p.parseOptionalInt()
		left = &ast.CountNode{
			Left:       left,
			Kind:       countKindFor(tok.Text),
			Comparator: cmp,
			Right:      right,
			Pos:        tok.Pos,
		}
	}
	return left, nil
}

// parseDrop is level 4: drop-compare, drop/keep-high-low, clamp, sort.
func (p *Parser) parseDrop() (ast.Node, error) {
	left, err := p.parseReroll()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().Kind {
		case TokDropCmp:
			tok := p.advance()
			right := p.parseOptionalInt()
			left = &ast.DropCompareNode{Left: left, Kind: dropCompareKindFor(tok.Text), Right: right, Pos: tok.Pos}
		case TokDropHiLo:
			tok := p.advance()
			right := p.parseOptionalInt()
			left = &ast.DropHighLowNode{Left: left, Kind: dropHiLoKindFor(tok.Text), Right: right}
		case TokClamp:
			tok := p.advance()
			right := p.parseOptionalInt()
			left = &ast.ClampNode{Left: left, Kind: clampKindFor(tok.Text), Right: right, Pos: tok.Pos}
		case TokSort:
			tok := p.advance()
			_ = p.parseOptionalInt() // sort has no operand; any trailing int is ignored
			left = &ast.SortNode{Left: left, Kind: sortKindFor(tok.Text)}
		default:
			return left, nil
		}
	}
}

func dropCompareKindFor(text string) ast.DropCompareKind {
	switch text {
	case "-<=":
		return ast.DropLte
	case "->=":
		return ast.DropGte
	case "-<":
		return ast.DropLt
	case "->":
		return ast.DropGt
	default: // "-="
		return ast.DropEq
	}
}

func dropHiLoKindFor(text string) ast.DropHighLowKind {
	switch NormalizedKind(text) {
	case "-h":
		return ast.DropHigh
	case "-l":
		return ast.DropLow
	case "kh":
		return ast.KeepHigh
	case "kl":
		return ast.KeepLow
	default: // "k"
		return ast.KeepK
	}
}

func clampKindFor(text string) ast.ClampKind {
	if text[1] == '>' {
		return ast.ClampCeiling
	}
	return ast.ClampFloor
}

func sortKindFor(text string) ast.SortKind {
	if NormalizedKind(text) == "sd" {
		return ast.SortDesc
	}
	return ast.SortAsc
}

// parseReroll is level 5: `r`, `ro`.
func (p *Parser) parseReroll() (ast.Node, error) {
	left, err := p.parseExplode()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == TokReroll {
		tok := p.advance()
		cmp := p.parseCmpOp()
		right := p.parseOptionalInt()
		kind := ast.RerollAlways
		if NormalizedKind(tok.Text) == "ro" {
			kind = ast.RerollOnce
		}
		left = &ast.RerollNode{Left: left, Kind: kind, Comparator: cmp, Right: right, Pos: tok.Pos}
	}
	return left, nil
}

func explodeKindFor(text string) ast.ExplodeKind {
	switch NormalizedKind(text) {
	case "!!o":
		return ast.CompoundOnce
	case "!!":
		return ast.Compound
	case "!o":
		return ast.ExplodeOnce
	default: // "!"
		return ast.Explode
	}
}

// parseExplode is level 6: explode/compound/penetrate.
func (p *Parser) parseExplode() (ast.Node, error) {
	left, err := p.parseDice()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().Kind {
		case TokExplode:
			tok := p.advance()
			cmp := p.parseCmpOp()
			right := p.parseOptionalInt()
			left = &ast.ExplodeNode{Left: left, Kind: explodeKindFor(tok.Text), Comparator: cmp, Right: right, Pos: tok.Pos}
		case TokPenetrate:
			tok := p.advance()
			size := p.parseOptionalInt()
			left = &ast.PenetrateNode{Left: left, Size: size, Pos: tok.Pos}
		default:
			return left, nil
		}
	}
}

// parseDice is level 7: the dice operator itself.
func (p *Parser) parseDice() (ast.Node, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	switch p.cur().Kind {
	case TokD66:
		tok := p.advance()
		return &ast.D66DiceNode{Left: left, Pos: tok.Pos}, nil
	case TokFudgeDie:
		tok := p.advance()
		return &ast.FudgeDiceNode{Left: left, Pos: tok.Pos}, nil
	case TokPercent:
		tok := p.advance()
		return &ast.PercentDiceNode{Left: left, Pos: tok.Pos}, nil
	case TokD:
		tok := p.advance()
		return p.parseDiceRHS(left, tok.Pos)
	default:
		return left, nil
	}
}

// parseDiceRHS parses diceRhs := int | '[' int (',' int)* ']' | '(' expr ')'.
func (p *Parser) parseDiceRHS(left ast.Node, pos int) (ast.Node, error) {
	switch p.cur().Kind {
	case TokLBracket:
		vals, err := p.parseValueList()
		if err != nil {
			return nil, err
		}
		return &ast.CsvDiceNode{Left: left, Vals: vals, Pos: pos}, nil
	default:
		right, err := p.parseAtomOrParen()
		if err != nil {
			return nil, err
		}
		return &ast.StdDiceNode{Left: left, Right: right, Pos: pos}, nil
	}
}

// parseAtomOrParen parses the right-hand side of `d`: an integer
// literal, a parenthesized sub-expression, or nothing (an empty rhs,
// caught as a FormatError by StdDiceNode.Eval).
func (p *Parser) parseAtomOrParen() (ast.Node, error) {
	switch p.cur().Kind {
	case TokInt:
		tok := p.advance()
		return &ast.ValueNode{Text: tok.Text}, nil
	case TokLParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur().Kind != TokRParen {
			return nil, errors.FormatErrorf(p.src, p.cur().Pos, "expected ')'")
		}
		p.advance()
		return inner, nil
	default:
		return nil, nil
	}
}

// parseValueList parses `'[' int (',' int)* ']'`.
func (p *Parser) parseValueList() ([]int, error) {
	p.advance() // consume '['
	var vals []int
	for {
		neg := false
		if p.cur().Kind == TokMinus {
			neg = true
			p.advance()
		}
		if p.cur().Kind != TokInt {
			return nil, errors.FormatErrorf(p.src, p.cur().Pos, "expected integer in value list")
		}
		tok := p.advance()
		n, err := strconv.Atoi(tok.Text)
		if err != nil {
			return nil, errors.FormatErrorf(p.src, tok.Pos, "invalid integer %q", tok.Text)
		}
		if neg {
			n = -n
		}
		vals = append(vals, n)
		if p.cur().Kind == TokComma {
			p.advance()
			continue
		}
		break
	}
	if p.cur().Kind != TokRBracket {
		return nil, errors.FormatErrorf(p.src, p.cur().Pos, "expected ']'")
	}
	p.advance()
	return vals, nil
}

// parseAtom is atom := int | '(' expr ')' | '{' expr '}' | ε.
func (p *Parser) parseAtom() (ast.Node, error) {
	switch p.cur().Kind {
	case TokInt:
		tok := p.advance()
		return &ast.ValueNode{Text: tok.Text}, nil
	case TokLParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur().Kind != TokRParen {
			return nil, errors.FormatErrorf(p.src, p.cur().Pos, "expected ')'")
		}
		p.advance()
		return inner, nil
	case TokLBrace:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur().Kind != TokRBrace {
			return nil, errors.FormatErrorf(p.src, p.cur().Pos, "expected '}'")
		}
		p.advance()
		return &ast.AggregateNode{Inner: inner}, nil
	case TokMinus:
		// unary minus: `-6` parses as `0-6`, per the documented empty-left fallback.
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &ast.SubNode{Left: &ast.ValueNode{Text: ""}, Right: right}, nil
	default:
		return nil, nil
	}
}

// parseCmpOp consumes an optional comparator token.
func (p *Parser) parseCmpOp() ast.Comparator {
	switch p.cur().Kind {
	case TokEq:
		p.advance()
		return ast.CmpEq
	case TokGte:
		p.advance()
		return ast.CmpGte
	case TokLte:
		p.advance()
		return ast.CmpLte
	case TokGt:
		p.advance()
		return ast.CmpGt
	case TokLt:
		p.advance()
		return ast.CmpLt
	default:
		return ast.CmpNone
	}
}

// parseOptionalInt consumes an optional trailing integer literal.
func (p *Parser) parseOptionalInt() ast.Node {
	if p.cur().Kind != TokInt {
		return nil
	}
	tok := p.advance()
	return &ast.ValueNode{Text: tok.Text}
}
