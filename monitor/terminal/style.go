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

package terminal

// Style is used to identify the category of text being sent to the
// TermPrintLine() function. A terminal implementation is free to interpret
// the style however it likes, including ignoring it.
type Style int

// List of styles.
const (
	// input that has been echoed back to the user. terminals that are
	// already showing the input as it is typed should suppress this style
	StyleEcho Style = iota

	// help text
	StyleHelp

	// acknowledgements and general responses to commands
	StyleFeedback

	// formatted machine state, the register file for example
	StyleInstrument

	// a user-facing diagnostic. errors are never suppressed by a silenced
	// terminal
	StyleError
)
