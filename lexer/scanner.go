package lexer

// Lex scans text against the compiled DFA using longest-match,
// earliest-rule-wins simulation with backtracking: it tracks the
// current DFA state, the byte range of the lexeme in progress, and the
// position and rule of the last accept seen, committing on reaching the
// sink state without consuming the character that triggered it.
//
// On success the full lexeme slice is returned with a nil error. On
// failure the returned slice has exactly one element: an empty-name
// Lexeme whose Text is the diagnostic message also carried by the
// returned error.
func (l *Lexer) Lex(text string) ([]Lexeme, error) {
	runes := []rune(text)
	line, col := positionTable(runes)

	var lexemes []Lexeme
	start := 0
	index := 0
	state := l.dfa.Start
	acceptIndex := -1
	acceptRule := -1

	fail := func(err error, msg string) ([]Lexeme, error) {
		return []Lexeme{{Name: "", Text: msg}}, err
	}

	for index < len(runes) {
		c := runes[index]
		if _, ok := l.dfa.Alphabet[c]; !ok {
			err := newUnknownSymbolError(c, line[index], col[index])
			return fail(err, err.Diagnostic())
		}

		next := l.dfa.Delta[state][c]
		if l.dfa.IsSink(next) {
			if acceptIndex == -1 {
				err := newNoViableAlternativeError(line[index], col[index])
				return fail(err, err.Diagnostic())
			}
			lexemes = append(lexemes, Lexeme{
				Name: l.ruleNames[acceptRule],
				Text: string(runes[start : acceptIndex+1]),
			})
			start = acceptIndex + 1
			index = start
			state = l.dfa.Start
			acceptIndex, acceptRule = -1, -1
			continue
		}

		state = next
		if ruleIdx, ok := l.acceptRule[state]; ok {
			acceptIndex = index
			acceptRule = ruleIdx
		}
		index++
	}

	if acceptIndex == -1 {
		err := newNoViableAlternativeError(line[len(runes)], col[len(runes)])
		return fail(err, err.Diagnostic())
	}
	lexemes = append(lexemes, Lexeme{
		Name: l.ruleNames[acceptRule],
		Text: string(runes[start : acceptIndex+1]),
	})
	return lexemes, nil
}

// positionTable precomputes the 0-based line and column of every rune
// index in runes, plus one trailing entry for the end-of-input position,
// so a diagnostic raised mid-backtrack always reports against the
// input's real layout rather than one recomputed from a rewound scan.
func positionTable(runes []rune) (line, col []int) {
	n := len(runes)
	line = make([]int, n+1)
	col = make([]int, n+1)
	curLine, lastNewline := 0, -1
	for i, r := range runes {
		line[i] = curLine
		col[i] = i - lastNewline - 1
		if r == '\n' {
			curLine++
			lastNewline = i
		}
	}
	line[n] = curLine
	col[n] = n - lastNewline - 1
	return line, col
}
