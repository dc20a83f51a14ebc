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

// Package test contains helper functions to remove common boilerplate from
// package tests.
//
// The Expect group of functions record a test error and allow the test to
// continue. The Demand group of functions are identical except that failure
// ends the test immediately - useful when subsequent test steps make no
// sense after a failure.
//
// ExpectSuccess() and ExpectFailure() accept bool and error values and test
// for the obvious condition: a nil error is a success, a false bool is a
// failure, and so on.
//
// The Writer type implements io.Writer and is useful for capturing terminal
// or log output for comparison against expected strings.
package test
