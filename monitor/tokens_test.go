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
	"testing"

	"github.com/softcpu/remu/test"
)

func TestTokens(t *testing.T) {
	tk := tokeniseInput("  p  1 +  2 ")
	test.ExpectEquality(t, tk.remaining(), 4)

	s, ok := tk.get()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, s, "p")

	s, ok = tk.peek()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, s, "1")
	test.ExpectEquality(t, tk.remaining(), 3)

	// remainder is the tail of the line as typed, interior spacing intact
	s, ok = tk.remainder()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, s, "1 +  2")
	test.ExpectEquality(t, tk.isEnd(), true)

	tk.reset()
	s, _ = tk.get()
	test.ExpectEquality(t, s, "p")
}

func TestTokensUnget(t *testing.T) {
	tk := tokeniseInput("si 10")

	s, _ := tk.get()
	test.ExpectEquality(t, s, "si")
	tk.unget()
	s, _ = tk.get()
	test.ExpectEquality(t, s, "si")

	s, _ = tk.get()
	test.ExpectEquality(t, s, "10")
	test.ExpectEquality(t, tk.isEnd(), true)

	// unget at the start of the line is harmless
	tk.reset()
	tk.unget()
	s, _ = tk.get()
	test.ExpectEquality(t, s, "si")
}

func TestTokensAbsentVersusEmpty(t *testing.T) {
	// an exhausted line reports absence, not an empty string result
	tk := tokeniseInput("p")
	s, ok := tk.get()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, s, "p")

	_, ok = tk.remainder()
	test.ExpectEquality(t, ok, false)

	_, ok = tk.get()
	test.ExpectEquality(t, ok, false)

	// an entirely blank line has no tokens at all
	tk = tokeniseInput("   ")
	test.ExpectEquality(t, tk.remaining(), 0)
	_, ok = tk.get()
	test.ExpectEquality(t, ok, false)
}

func TestTokensString(t *testing.T) {
	tk := tokeniseInput(" x  4   $pc ")
	test.ExpectEquality(t, tk.String(), "x 4 $pc")
}
