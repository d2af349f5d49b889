// Copyright 2020 Aleksandr Demakin. All rights reserved.

package calc

import (
	"strings"
	"unicode"
)

const (
	operators = "()+-*/^!,"
)

// Tokenize splits an expression into tokens.
// Every operator character is a token by itself, other tokens are separated by
// operators or white space.
//
//	"sin(pi/2)+1" -> ["sin" "(" "pi" "/" "2" ")" "+" "1"]
func Tokenize(expr string) []string {
	var (
		tokens  []string
		current strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for _, r := range expr {
		switch {
		case unicode.IsSpace(r):
			flush()
		case strings.ContainsRune(operators, r):
			flush()
			tokens = append(tokens, string(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}

func isOperator(token string) bool {
	return len(token) == 1 && strings.Contains(operators, token)
}

func isIdentifier(token string) bool {
	r := []rune(token)
	return len(r) > 0 && unicode.IsLetter(r[0])
}
