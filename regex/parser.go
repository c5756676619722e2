package regex

import (
	"strings"

	"github.com/rexlex/rexlex/automata"
)

// Regex is a parsed pattern: its source text and the AST root Parse
// built from it.
type Regex struct {
	Source string
	Root   Node
}

// Thompson runs the AST root's Thompson construction.
func (re *Regex) Thompson() *automata.NFA {
	return re.Root.Thompson()
}

// Parse turns a pattern string into a Regex via a shunting-yard parse:
// tokenize, insert implicit concatenation, then reduce an operand stack
// against an operator stack by precedence. Postfix operators (*, +, ?)
// bind tightest, implicit concatenation next, union loosest; `(` acts as
// a barrier on the operator stack until its matching `)`.
func Parse(pattern string) (*Regex, error) {
	tokens, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}
	tokens = insertConcat(tokens)
	root, err := reduce(pattern, tokens)
	if err != nil {
		return nil, err
	}
	return &Regex{Source: pattern, Root: root}, nil
}

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokClass
	tokUnion
	tokStar
	tokPlus
	tokQuestion
	tokConcat
	tokLParen
	tokRParen
)

type token struct {
	kind   tokenKind
	r      rune
	lo, hi rune
}

const escapable = " *+)(|?/"

func isLiteralRune(c rune) bool {
	if c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
		return true
	}
	return strings.ContainsRune("_.-@:", c)
}

func tokenize(pattern string) ([]token, error) {
	var tokens []token
	runes := []rune(pattern)
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case c == ' ' || c == '\t':
			i++

		case c == '\\':
			if i+1 >= len(runes) {
				return nil, newMalformedPattern(pattern, "dangling escape at end of pattern")
			}
			next := runes[i+1]
			if next != '\n' && !strings.ContainsRune(escapable, next) {
				return nil, newMalformedPattern(pattern, "invalid escape %q", string(next))
			}
			tokens = append(tokens, token{kind: tokLiteral, r: next})
			i += 2

		case c == '[':
			lo, hi, next, err := readCharClass(pattern, runes, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tokClass, lo: lo, hi: hi})
			i = next

		case c == '(':
			tokens = append(tokens, token{kind: tokLParen})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokRParen})
			i++
		case c == '*':
			tokens = append(tokens, token{kind: tokStar})
			i++
		case c == '+':
			tokens = append(tokens, token{kind: tokPlus})
			i++
		case c == '?':
			tokens = append(tokens, token{kind: tokQuestion})
			i++
		case c == '|':
			tokens = append(tokens, token{kind: tokUnion})
			i++

		case isLiteralRune(c):
			tokens = append(tokens, token{kind: tokLiteral, r: c})
			i++

		default:
			return nil, newMalformedPattern(pattern, "unexpected character %q", string(c))
		}
	}
	return tokens, nil
}

// readCharClass reads the `[x-y]` shorthand starting at runes[start] ==
// '['. It scans up to the matching ']' rather than assuming a fixed
// offset, but still requires exactly three characters inside the
// brackets — lo, '-', hi — rejecting anything else as malformed.
func readCharClass(pattern string, runes []rune, start int) (lo, hi rune, next int, err error) {
	end := -1
	for j := start + 1; j < len(runes); j++ {
		if runes[j] == ']' {
			end = j
			break
		}
	}
	if end == -1 {
		return 0, 0, 0, newMalformedPattern(pattern, "unterminated character class")
	}
	inner := runes[start+1 : end]
	if len(inner) != 3 || inner[1] != '-' {
		return 0, 0, 0, newMalformedPattern(pattern, "character class %q is not the lo-hyphen-hi shape", string(inner))
	}
	lo, hi = inner[0], inner[2]
	if lo > hi {
		return 0, 0, 0, newMalformedPattern(pattern, "character class [%c-%c] has lo > hi", lo, hi)
	}
	return lo, hi, end + 1, nil
}

func isAtomStart(t token) bool {
	return t.kind == tokLiteral || t.kind == tokClass || t.kind == tokLParen
}

func isAtomEnd(t token) bool {
	switch t.kind {
	case tokLiteral, tokClass, tokRParen, tokStar, tokPlus, tokQuestion:
		return true
	}
	return false
}

// insertConcat inserts an explicit concatenation token wherever an
// atom-start token directly follows an atom-end token, the implicit
// concatenation rule the surface syntax relies on to avoid a visible
// concatenation operator.
func insertConcat(tokens []token) []token {
	if len(tokens) == 0 {
		return tokens
	}
	out := make([]token, 0, len(tokens)*2)
	out = append(out, tokens[0])
	for i := 1; i < len(tokens); i++ {
		if isAtomEnd(tokens[i-1]) && isAtomStart(tokens[i]) {
			out = append(out, token{kind: tokConcat})
		}
		out = append(out, tokens[i])
	}
	return out
}

func precedence(k tokenKind) int {
	switch k {
	case tokStar, tokPlus, tokQuestion:
		return 3
	case tokConcat:
		return 2
	case tokUnion:
		return 1
	}
	return 0
}

// reduce runs the shunting-yard proper: an operand stack of built Node
// values and an operator stack of pending tokens. Postfix operators are
// applied the instant they're read, since they only ever decorate the
// node just pushed; concat and union go through the precedence-ordered
// operator stack like any binary operator.
func reduce(pattern string, tokens []token) (Node, error) {
	var operands []Node
	var operators []token

	popOperand := func() (Node, error) {
		if len(operands) == 0 {
			return nil, newMalformedPattern(pattern, "operator with no operand")
		}
		n := operands[len(operands)-1]
		operands = operands[:len(operands)-1]
		return n, nil
	}
	applyBinary := func(k tokenKind) error {
		r, err := popOperand()
		if err != nil {
			return err
		}
		l, err := popOperand()
		if err != nil {
			return err
		}
		switch k {
		case tokConcat:
			operands = append(operands, Concat{L: l, R: r})
		case tokUnion:
			operands = append(operands, Union{L: l, R: r})
		}
		return nil
	}

	for _, t := range tokens {
		switch t.kind {
		case tokLiteral:
			operands = append(operands, Char{C: t.r})
		case tokClass:
			operands = append(operands, CharClass{Lo: t.lo, Hi: t.hi})
		case tokStar, tokPlus, tokQuestion:
			e, err := popOperand()
			if err != nil {
				return nil, err
			}
			switch t.kind {
			case tokStar:
				operands = append(operands, Star{E: e})
			case tokPlus:
				operands = append(operands, Plus{E: e})
			case tokQuestion:
				operands = append(operands, Question{E: e})
			}
		case tokLParen:
			operators = append(operators, t)
		case tokRParen:
			found := false
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				operators = operators[:len(operators)-1]
				if top.kind == tokLParen {
					found = true
					break
				}
				if err := applyBinary(top.kind); err != nil {
					return nil, err
				}
			}
			if !found {
				return nil, newMalformedPattern(pattern, "unbalanced parentheses")
			}
		case tokConcat, tokUnion:
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top.kind == tokLParen || precedence(top.kind) < precedence(t.kind) {
					break
				}
				operators = operators[:len(operators)-1]
				if err := applyBinary(top.kind); err != nil {
					return nil, err
				}
			}
			operators = append(operators, t)
		}
	}

	for len(operators) > 0 {
		top := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		if top.kind == tokLParen {
			return nil, newMalformedPattern(pattern, "unbalanced parentheses")
		}
		if err := applyBinary(top.kind); err != nil {
			return nil, err
		}
	}

	if len(operands) != 1 {
		return nil, newMalformedPattern(pattern, "pattern reduces to %d operands, expected 1", len(operands))
	}
	return operands[0], nil
}
