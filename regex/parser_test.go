package regex

import "testing"

func mustParse(t *testing.T, pattern string) *Regex {
	t.Helper()
	re, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", pattern, err)
	}
	return re
}

func accepts(t *testing.T, pattern, word string) bool {
	t.Helper()
	re := mustParse(t, pattern)
	nfa := re.Thompson()
	dfa, _ := nfaToDFA(nfa)
	return dfa.Accept(word)
}

func TestParseAndMatch(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		accept  []string
		reject  []string
	}{
		{"literal", "abc", []string{"abc"}, []string{"ab", "abcd", ""}},
		{"union", "a|b", []string{"a", "b"}, []string{"ab", "c"}},
		{"star", "a*", []string{"", "a", "aaaa"}, []string{"b", "ab"}},
		{"plus", "a+", []string{"a", "aaa"}, []string{""}},
		{"question", "a?b", []string{"b", "ab"}, []string{"aab", "a"}},
		{"charclass", "[a-g]", []string{"a", "g", "d"}, []string{"h", "A"}},
		{"grouping", "(ab)+", []string{"ab", "abab"}, []string{"a", "aba"}},
		{"combo", "[a-g]*_?[0-9]+", []string{"abc_1", "9", "_42"}, []string{"_", "abc_"}},
		{"grouped_union", "x(x|y)z", []string{"xxz", "xyz"}, []string{"xz", "xxy"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, w := range tc.accept {
				if !accepts(t, tc.pattern, w) {
					t.Errorf("pattern %q should accept %q", tc.pattern, w)
				}
			}
			for _, w := range tc.reject {
				if accepts(t, tc.pattern, w) {
					t.Errorf("pattern %q should reject %q", tc.pattern, w)
				}
			}
		})
	}
}

func TestParseEscapes(t *testing.T) {
	re := mustParse(t, `a\*b`)
	nfa := re.Thompson()
	dfa, _ := nfaToDFA(nfa)
	if !dfa.Accept("a*b") {
		t.Errorf(`a\*b should accept literal "a*b"`)
	}
	if dfa.Accept("ab") {
		t.Errorf(`a\*b should not accept "ab"`)
	}
}

func TestMalformedPatterns(t *testing.T) {
	cases := []string{
		"(a",
		"a)",
		"*a",
		"[ab]",
		"[a-bc]",
		`a\`,
		"a&b",
	}
	for _, pattern := range cases {
		if _, err := Parse(pattern); err == nil {
			t.Errorf("Parse(%q) should have failed", pattern)
		}
	}
}

func TestImplicitConcatPrecedence(t *testing.T) {
	// a|bc must parse as a|(bc), not (a|b)c.
	if !accepts(t, "a|bc", "a") {
		t.Error(`"a|bc" should accept "a"`)
	}
	if accepts(t, "a|bc", "ac") {
		t.Error(`"a|bc" should not accept "ac"`)
	}
	if !accepts(t, "a|bc", "bc") {
		t.Error(`"a|bc" should accept "bc"`)
	}
}
