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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package except that the formatting pattern
// doubles as the identity of the error. The Is() function checks whether an
// error was created with a specific pattern:
//
//	e := curated.Errorf("watchpoint %d is not defined", 3)
//
//	if curated.Is(e, "watchpoint %d is not defined") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain, rather than only at the head. IsAny() answers
// whether the error is curated at all - in other words whether the error was
// expected by some part of the program.
//
// The Error() implementation normalises the error chain as it renders it,
// removing duplicate adjacent parts. This means functions can wrap errors
// freely without the final message degenerating into:
//
//	expression error: expression error: unexpected symbol
//
// For the purposes of this package an error chain is composed of parts
// separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Sentinel errors are achieved by storing the pattern as a const string,
// suitably named and commented, and testing for it with Is() or Has().
package curated
