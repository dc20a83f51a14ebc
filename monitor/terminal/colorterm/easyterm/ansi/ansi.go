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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi colour.
var colours = map[byte]int{
	'R': 1, // red
	'G': 2, // green
	'Y': 3, // yellow
	'B': 4, // blue
	'M': 5, // magenta
	'C': 6, // cyan
	'W': 7, // white
	'N': 9, // normal/default
}

// ansi attribute.
var attributes = map[byte]int{
	'B': 1, // bold
	'U': 4, // underline
	'I': 7, // inverse
	'S': 8, // strikethrough
}

// Pens is the table of bright colours to be used for text.
var Pens map[string]string

// DimPens is the table of regular colours to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen, _ = ColorBuild("", "", "", false)

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, "", "", true)
		DimPens[c], _ = ColorBuild(c, "", "", false)
	}

	PenStyles["bold"], _ = ColorBuild("", "", "bold", false)
	PenStyles["underline"], _ = ColorBuild("", "", "underline", false)
}

// ColorBuild creates the CSI sequence for the pen/paper/attribute
// combination. Pen and paper are named colours ("red", "magenta", etc.) and
// attribute is one of "bold", "underline", "inverse" or "strikethrough".
// Empty strings are allowed for any argument.
func ColorBuild(pen, paper, attribute string, brightPen bool) (string, error) {
	s := strings.Builder{}
	s.WriteString("\033[")

	if pen != "" {
		col, ok := colours[strings.ToUpper(pen)[0]]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		target := 3
		if brightPen {
			target = 9
		}
		s.WriteString(fmt.Sprintf("%d%d", target, col))
	}

	if paper != "" {
		col, ok := colours[strings.ToUpper(paper)[0]]
		if !ok {
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		s.WriteString(fmt.Sprintf("4%d", col))
	}

	if attribute != "" {
		attr, ok := attributes[strings.ToUpper(attribute)[0]]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		s.WriteString(fmt.Sprintf("%d", attr))
	}

	// terminate CSI sequence
	s.WriteString("m")

	return s.String(), nil
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorStore is the CSI sequence to store the current cursor position.
const CursorStore = "\033[s"

// CursorRestore is the CSI sequence to restore the cursor position to a
// previous store.
const CursorRestore = "\033[u"

// CursorForwardOne is the CSI sequence to move the cursor forward one
// character.
const CursorForwardOne = "\033[1C"

// CursorBackwardOne is the CSI sequence to move the cursor backward one
// character.
const CursorBackwardOne = "\033[1D"

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
