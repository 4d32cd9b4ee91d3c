// SPDX-License-Identifier: Apache-2.0
// Package shellparse splits and joins command lines using POSIX shell word
// rules. wer uses it for build.args and for printing commands in dry runs.
package shellparse

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrUnclosedQuote is returned when a quoted string is not properly closed
	ErrUnclosedQuote = errors.New("unclosed quote in command string")

	// ErrTrailingEscape is returned when a backslash appears at the end of input
	ErrTrailingEscape = errors.New("trailing escape character at end of command")
)

type state int

const (
	stateBlank state = iota // between words
	stateWord               // inside an unquoted word
	stateSingle             // inside '...'
	stateDouble             // inside "..."
)

// lexer accumulates words while walking the input one rune at a time.
type lexer struct {
	words  []string
	cur    strings.Builder
	inWord bool // a word has started, even if it is still empty ("")
}

func (l *lexer) emit() {
	if l.inWord {
		l.words = append(l.words, l.cur.String())
		l.cur.Reset()
		l.inWord = false
	}
}

func (l *lexer) add(r rune) {
	l.cur.WriteRune(r)
	l.inWord = true
}

// Split parses a command string into arguments.
//
//   - whitespace separates words
//   - '...' keeps everything literally
//   - "..." keeps everything literally except \" \\ \$ and \`
//   - a backslash outside quotes escapes the next rune
//   - "" and '' produce an empty argument
//
// Examples:
//
//	Split(`-DA=1 -DB=2`)          => ["-DA=1", "-DB=2"]
//	Split(`-DNAME="two words"`)   => ["-DNAME=two words"]
//	Split(`--flag path\ with\ sp`) => ["--flag", "path with sp"]
func Split(input string) ([]string, error) {
	l := &lexer{}
	st := stateBlank
	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch st {
		case stateSingle:
			if r == '\'' {
				st = stateWord
			} else {
				l.add(r)
			}
			continue

		case stateDouble:
			switch {
			case r == '"':
				st = stateWord
			case r == '\\' && i+1 < len(runes) && strings.ContainsRune("\"\\$`", runes[i+1]):
				i++
				l.add(runes[i])
			default:
				l.add(r)
			}
			continue
		}

		// stateBlank or stateWord
		switch {
		case unicode.IsSpace(r):
			l.emit()
			st = stateBlank
		case r == '\\':
			if i+1 >= len(runes) {
				return nil, ErrTrailingEscape
			}
			i++
			l.add(runes[i])
			st = stateWord
		case r == '\'':
			l.inWord = true
			st = stateSingle
		case r == '"':
			l.inWord = true
			st = stateDouble
		default:
			l.add(r)
			st = stateWord
		}
	}

	switch st {
	case stateSingle:
		return nil, fmt.Errorf("%w: unclosed single quote", ErrUnclosedQuote)
	case stateDouble:
		return nil, fmt.Errorf("%w: unclosed double quote", ErrUnclosedQuote)
	}

	l.emit()
	if l.words == nil {
		return []string{}, nil
	}
	return l.words, nil
}

// Join renders args as a single command line that Split turns back into args.
func Join(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = Quote(arg)
	}
	return strings.Join(quoted, " ")
}

// Quote quotes arg only when the shell would otherwise split or expand it.
func Quote(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsFunc(arg, needsQuoting) {
		return arg
	}
	if !strings.ContainsRune(arg, '\'') {
		return "'" + arg + "'"
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, r := range arg {
		if strings.ContainsRune("\"\\$`", r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

func needsQuoting(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune("'\"\\$`", r)
}
