package tart

import (
	"strings"
	"testing"
)

// BenchmarkLexer measures lexer tokenization performance
func BenchmarkLexer(b *testing.B) {
	testCases := []struct {
		name  string
		input string
	}{
		{"plain_text", "the quick brown fox jumps over the lazy dog"},
		{"calls", "[let em [lambda [w] [string <em> [get w] </em>]]] [em hi]"},
		{"quoted_strings", `"alpha" "beta gamma" "with\ttabs\nand\\escapes"`},
		{"comments", "a # one\nb # two\nc # three\n"},
		{"deep_nesting", strings.Repeat("[", 50) + "x" + strings.Repeat("]", 50)},
	}

	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := lex("benchmark", tc.input)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
