// This file is part of Remu.
//
// Remu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Remu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Remu.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"strings"
	"unicode"
)

// tokens is the account of a single input line. tokens are the
// whitespace-separated fields of the line but the original text is kept
// around so that remainder() can return a verbatim slice of it.
type tokens struct {
	input  string
	tokens []string

	// byte offset into input of the corresponding entry in tokens
	starts []int

	// the next token to be returned by get()
	curr int
}

// tokeniseInput splits an input line into fields. consecutive whitespace is
// treated as a single separator and contributes no tokens.
func tokeniseInput(input string) *tokens {
	tk := &tokens{input: input}

	inToken := false
	for i, r := range input {
		if unicode.IsSpace(r) {
			inToken = false
			continue
		}
		if !inToken {
			tk.starts = append(tk.starts, i)
			tk.tokens = append(tk.tokens, "")
			inToken = true
		}
		tk.tokens[len(tk.tokens)-1] += string(r)
	}

	return tk
}

func (tk *tokens) String() string {
	return strings.Join(tk.tokens, " ")
}

// reset the token iterator to the beginning of the line.
func (tk *tokens) reset() {
	tk.curr = 0
}

// get returns the next token. the second return value is false if the line
// has been exhausted.
func (tk *tokens) get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// unget makes the most recently consumed token available to get() again.
func (tk *tokens) unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// peek returns the next token without consuming it.
func (tk *tokens) peek() (string, bool) {
	t, ok := tk.get()
	if ok {
		tk.unget()
	}
	return t, ok
}

// remaining returns the number of tokens yet to be consumed.
func (tk *tokens) remaining() int {
	return len(tk.tokens) - tk.curr
}

// isEnd returns true if all tokens have been consumed.
func (tk *tokens) isEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// remainder returns the unconsumed tail of the line, starting at the next
// unconsumed token and running to the end of the line. whitespace before the
// next token and at the end of the line is dropped but interior spacing is
// preserved exactly as typed, which matters when the tail is handed to the
// expression evaluator for error reporting. the second return value is false
// if the line has been exhausted; an exhausted line is distinct from a
// remainder that evaluates to the empty string.
func (tk *tokens) remainder() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	r := tk.input[tk.starts[tk.curr]:]
	tk.curr = len(tk.tokens)
	return strings.TrimRightFunc(r, unicode.IsSpace), true
}
