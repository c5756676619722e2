package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexSimpleWord(t *testing.T) {
	l, err := New([]Rule{{Name: "xxyz", Pattern: "xxyz"}})
	require.NoError(t, err)

	lexemes, err := l.Lex("xxyz")
	require.NoError(t, err)
	require.Equal(t, []Lexeme{{Name: "xxyz", Text: "xxyz"}}, lexemes)
}

func TestLexRejectsShorterPrefix(t *testing.T) {
	l, err := New([]Rule{{Name: "xxyz", Pattern: "xxyz"}})
	require.NoError(t, err)

	_, err = l.Lex("xyz")
	require.Error(t, err)
}

func TestLexPlusAndGroupedPlus(t *testing.T) {
	l, err := New([]Rule{{Name: "tok", Pattern: "abc+de+(fgh)+"}})
	require.NoError(t, err)

	lexemes, err := l.Lex("abccccdefghfghfgh")
	require.NoError(t, err)
	require.Equal(t, []Lexeme{{Name: "tok", Text: "abccccdefghfghfgh"}}, lexemes)

	_, err = l.Lex("abcde")
	require.Error(t, err)
}

func TestLexCharClassCombo(t *testing.T) {
	l, err := New([]Rule{{Name: "tok", Pattern: "[a-g]*_?[0-9]+"}})
	require.NoError(t, err)

	lexemes, err := l.Lex("aba_110")
	require.NoError(t, err)
	require.Equal(t, []Lexeme{{Name: "tok", Text: "aba_110"}}, lexemes)

	_, err = l.Lex("axe_12")
	require.Error(t, err)
}

func TestLexExpressionRules(t *testing.T) {
	rules := []Rule{
		{Name: "number", Pattern: `[0-9]+(\ )?`},
		{Name: "open", Pattern: `\((\ )?`},
		{Name: "close", Pattern: `\)(\ )?`},
		{Name: "sum", Pattern: `\+(\ )+`},
		{Name: "concat", Pattern: `\+\+(\ )+`},
		{Name: "lambda", Pattern: `\/(\ )?`},
		{Name: "id", Pattern: `[a-z]+(\ )?`},
		{Name: "var", Pattern: `[a-z](\ )?`},
	}
	l, err := New(rules)
	require.NoError(t, err)

	lexemes, err := l.Lex("(++ (+ 1 2) 5)")
	require.NoError(t, err)

	var names []string
	for _, lx := range lexemes {
		names = append(names, lx.Name)
	}
	require.Equal(t, []string{"open", "concat", "open", "sum", "number", "number", "close", "number", "close"}, names)
}

func TestLexLongestMatchDisambiguatesRulePriority(t *testing.T) {
	rules := []Rule{
		{Name: "space", Pattern: `\ `},
		{Name: "newline", Pattern: "\\\n"},
		{Name: "token1", Pattern: "(a|b)*q+cb[0-9]*"},
		{Name: "token2", Pattern: "xyz"},
		{Name: "token3", Pattern: "[a-b]*[x-z]*abc[0-9]*"},
		{Name: "token4", Pattern: "d+"},
		{Name: "token5", Pattern: "e+"},
	}
	l, err := New(rules)
	require.NoError(t, err)

	lexemes, err := l.Lex("bbaqcbbyabc67895")
	require.NoError(t, err)
	require.Equal(t, []Lexeme{
		{Name: "token1", Text: "bbaqcb"},
		{Name: "token3", Text: "byabc67895"},
	}, lexemes)
}

func TestLexUnknownSymbolProducesDiagnostic(t *testing.T) {
	l, err := New([]Rule{{Name: "digit", Pattern: "[0-9]"}})
	require.NoError(t, err)

	lexemes, err := l.Lex("5%")
	require.Error(t, err)
	require.Len(t, lexemes, 1)
	require.Equal(t, "", lexemes[0].Name)
	require.Contains(t, lexemes[0].Text, "No viable alternative at character")
}

func TestNewRejectsEmptyRuleList(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestNewRejectsMalformedPattern(t *testing.T) {
	_, err := New([]Rule{{Name: "bad", Pattern: "(a"}})
	require.Error(t, err)
}
