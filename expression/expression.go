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

// Package expression evaluates textual expressions over current machine
// state. Expressions are how the monitor user names a value: a literal, a
// register, a memory cell, or arithmetic over any of those.
//
// The grammar, loosest binding first:
//
//	logical    := equality { "&&" equality }
//	equality   := additive { ("==" | "!=") additive }
//	additive   := multiplicative { ("+" | "-") multiplicative }
//	multiplicative := unary { ("*" | "/") unary }
//	unary      := "-" unary | "*" unary | "(" logical ")" | literal | register
//
// Literals are decimal or "0x" hexadecimal. Registers are named with a
// leading dollar sign, "$pc" for example. The unary asterisk dereferences its
// operand as a word address. Comparison and logical operators evaluate to 1
// or 0.
//
// All arithmetic is unsigned 32-bit with wraparound. Whether a value is
// displayed as signed or unsigned is the caller's decision.
package expression

import (
	"strconv"
	"strings"

	"github.com/softcpu/remu/curated"
)

// Sentinel error for all failures in this package. The enclosed detail
// varies.
const EvalError = "expression error: %v"

// State is the view of the machine that expressions are evaluated over.
type State interface {
	// Register returns the value of the named register. The name is given
	// without the leading dollar sign.
	Register(name string) (uint32, error)

	// ReadWord returns the word at the specified address.
	ReadWord(address uint32) (uint32, error)
}

type lexemeKind int

const (
	lexNumber lexemeKind = iota
	lexRegister
	lexOperator
)

type lexeme struct {
	kind  lexemeKind
	text  string
	value uint32
}

// evaluator holds the lexeme stream and current position during parsing.
type evaluator struct {
	state    State
	lexemes  []lexeme
	position int
}

// Evaluate the expression over the supplied state. Every error returned
// matches the EvalError pattern.
func Evaluate(state State, input string) (uint32, error) {
	ev := evaluator{state: state}

	if err := ev.lex(input); err != nil {
		return 0, err
	}
	if len(ev.lexemes) == 0 {
		return 0, curated.Errorf(EvalError, "empty expression")
	}

	v, err := ev.logical()
	if err != nil {
		return 0, err
	}

	if ev.position < len(ev.lexemes) {
		return 0, curated.Errorf(EvalError,
			curated.Errorf("unexpected '%s'", ev.lexemes[ev.position].text))
	}

	return v, nil
}

// operators made of two characters. must be checked before the single
// character operators.
var digraphs = []string{"==", "!=", "&&"}

const singles = "+-*/()"

func (ev *evaluator) lex(input string) error {
	i := 0
	for i < len(input) {
		c := input[i]

		switch {
		case c == ' ' || c == '\t':
			i++

		case c >= '0' && c <= '9':
			j := i + 1
			for j < len(input) && isNumberChar(input[j]) {
				j++
			}
			v, err := strconv.ParseUint(input[i:j], 0, 32)
			if err != nil {
				return curated.Errorf(EvalError,
					curated.Errorf("bad number '%s'", input[i:j]))
			}
			ev.lexemes = append(ev.lexemes, lexeme{kind: lexNumber, text: input[i:j], value: uint32(v)})
			i = j

		case c == '$':
			j := i + 1
			for j < len(input) && isRegisterChar(input[j]) {
				j++
			}
			if j == i+1 {
				return curated.Errorf(EvalError, "register name required after '$'")
			}
			ev.lexemes = append(ev.lexemes, lexeme{kind: lexRegister, text: input[i+1 : j]})
			i = j

		default:
			if i+1 < len(input) {
				d := input[i : i+2]
				if contains(digraphs, d) {
					ev.lexemes = append(ev.lexemes, lexeme{kind: lexOperator, text: d})
					i += 2
					continue
				}
			}
			if strings.IndexByte(singles, c) >= 0 {
				ev.lexemes = append(ev.lexemes, lexeme{kind: lexOperator, text: string(c)})
				i++
				continue
			}
			return curated.Errorf(EvalError,
				curated.Errorf("unexpected character '%c'", c))
		}
	}

	return nil
}

func isNumberChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') ||
		(c >= 'A' && c <= 'F') || c == 'x' || c == 'X'
}

func isRegisterChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

func contains(l []string, s string) bool {
	for _, e := range l {
		if e == s {
			return true
		}
	}
	return false
}

// peekOperator returns true if the next lexeme is one of the listed
// operators.
func (ev *evaluator) peekOperator(ops ...string) (string, bool) {
	if ev.position >= len(ev.lexemes) {
		return "", false
	}
	l := ev.lexemes[ev.position]
	if l.kind != lexOperator {
		return "", false
	}
	for _, op := range ops {
		if l.text == op {
			return op, true
		}
	}
	return "", false
}

func (ev *evaluator) logical() (uint32, error) {
	v, err := ev.equality()
	if err != nil {
		return 0, err
	}

	for {
		if _, ok := ev.peekOperator("&&"); !ok {
			return v, nil
		}
		ev.position++

		// both operands are always evaluated. there is no short-circuiting
		w, err := ev.equality()
		if err != nil {
			return 0, err
		}

		if v != 0 && w != 0 {
			v = 1
		} else {
			v = 0
		}
	}
}

func (ev *evaluator) equality() (uint32, error) {
	v, err := ev.additive()
	if err != nil {
		return 0, err
	}

	for {
		op, ok := ev.peekOperator("==", "!=")
		if !ok {
			return v, nil
		}
		ev.position++

		w, err := ev.additive()
		if err != nil {
			return 0, err
		}

		if (v == w) == (op == "==") {
			v = 1
		} else {
			v = 0
		}
	}
}

func (ev *evaluator) additive() (uint32, error) {
	v, err := ev.multiplicative()
	if err != nil {
		return 0, err
	}

	for {
		op, ok := ev.peekOperator("+", "-")
		if !ok {
			return v, nil
		}
		ev.position++

		w, err := ev.multiplicative()
		if err != nil {
			return 0, err
		}

		if op == "+" {
			v += w
		} else {
			v -= w
		}
	}
}

func (ev *evaluator) multiplicative() (uint32, error) {
	v, err := ev.unary()
	if err != nil {
		return 0, err
	}

	for {
		op, ok := ev.peekOperator("*", "/")
		if !ok {
			return v, nil
		}
		ev.position++

		w, err := ev.unary()
		if err != nil {
			return 0, err
		}

		if op == "*" {
			v *= w
		} else {
			if w == 0 {
				return 0, curated.Errorf(EvalError, "division by zero")
			}
			v /= w
		}
	}
}

func (ev *evaluator) unary() (uint32, error) {
	if ev.position >= len(ev.lexemes) {
		return 0, curated.Errorf(EvalError, "unexpected end of expression")
	}

	l := ev.lexemes[ev.position]
	ev.position++

	switch l.kind {
	case lexNumber:
		return l.value, nil

	case lexRegister:
		v, err := ev.state.Register(l.text)
		if err != nil {
			return 0, curated.Errorf(EvalError, err)
		}
		return v, nil

	case lexOperator:
		switch l.text {
		case "-":
			v, err := ev.unary()
			if err != nil {
				return 0, err
			}
			return -v, nil

		case "*":
			a, err := ev.unary()
			if err != nil {
				return 0, err
			}
			v, err := ev.state.ReadWord(a)
			if err != nil {
				return 0, curated.Errorf(EvalError, err)
			}
			return v, nil

		case "(":
			v, err := ev.logical()
			if err != nil {
				return 0, err
			}
			if _, ok := ev.peekOperator(")"); !ok {
				return 0, curated.Errorf(EvalError, "missing ')'")
			}
			ev.position++
			return v, nil
		}
	}

	return 0, curated.Errorf(EvalError,
		curated.Errorf("unexpected '%s'", l.text))
}
