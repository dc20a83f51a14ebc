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

package colorterm

import (
	"unicode"
	"unicode/utf8"

	"github.com/softcpu/remu/curated"
	"github.com/softcpu/remu/monitor/terminal"
	"github.com/softcpu/remu/monitor/terminal/colorterm/easyterm"
	"github.com/softcpu/remu/monitor/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(buffer []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// liveBuffer keeps the live input while the user is scrolling through
	// the history, so nothing typed is lost when they scroll back
	liveBuffer := make([]byte, cap(buffer))
	liveLen := 0

	// the method for cursor placement is as follows:
	//	1. store current cursor position
	//	2. clear the current line and output the prompt
	//	3. output the input buffer
	//	4. restore the cursor position
	//
	// for this to work we need to place the cursor in its initial position
	// before the loop starts
	ct.TermPrint("\r%s", ansi.CursorMove(len(prompt.String())))

	for {
		ct.TermPrint(ansi.CursorStore)
		ct.TermPrint("%s%s%s%s", ansi.ClearLine, ansi.PenStyles["bold"], prompt.String(), ansi.NormalPen)
		ct.TermPrint(string(buffer[:n]))
		ct.TermPrint(ansi.CursorRestore)

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return n, err
		}

		// an interrupt signal may have arrived while we were waiting
		if events != nil {
			select {
			case sig := <-events.Signal:
				ct.TermPrint("\n")
				return 0, events.SignalHandler(sig)
			default:
			}
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriageReturn:
			// check to see if input is the same as the last history entry
			// before adding a new entry
			newEntry := n > 0
			if newEntry && len(ct.commandHistory) > 0 {
				last := ct.commandHistory[len(ct.commandHistory)-1]
				if len(last) == n && string(last) == string(buffer[:n]) {
					newEntry = false
				}
			}

			if newEntry {
				nh := make([]byte, n)
				copy(nh, buffer[:n])
				ct.commandHistory = append(ct.commandHistory, nh)
			}

			ct.TermPrint("\n")
			return n, nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return n, err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return n, err
			}

			switch r {
			case easyterm.CursorUp:
				// move up through command history
				if len(ct.commandHistory) > 0 {
					// entering history from the live input. store the live
					// input for later
					if history == len(ct.commandHistory) {
						copy(liveBuffer, buffer[:n])
						liveLen = n
					}

					if history > 0 {
						history--
						copy(buffer, ct.commandHistory[history])
						n = len(ct.commandHistory[history])
						ct.TermPrint(ansi.CursorMove(n - cursor))
						cursor = n
					}
				}

			case easyterm.CursorDown:
				// move down through command history
				if len(ct.commandHistory) > 0 {
					if history < len(ct.commandHistory)-1 {
						history++
						copy(buffer, ct.commandHistory[history])
						n = len(ct.commandHistory[history])
						ct.TermPrint(ansi.CursorMove(n - cursor))
						cursor = n
					} else if history == len(ct.commandHistory)-1 {
						history++
						copy(buffer, liveBuffer[:liveLen])
						n = liveLen
						ct.TermPrint(ansi.CursorMove(n - cursor))
						cursor = n
					}
				}

			case easyterm.CursorForward:
				if cursor < n {
					ct.TermPrint(ansi.CursorForwardOne)
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					ct.TermPrint(ansi.CursorBackwardOne)
					cursor--
				}

			case easyterm.EscDelete:
				if cursor < n {
					copy(buffer[cursor:], buffer[cursor+1:])
					n--
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace:
			if cursor > 0 {
				copy(buffer[cursor-1:], buffer[cursor:])
				ct.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) && n < len(buffer)-utf8.UTFMax {
				ct.TermPrint("%c", r)
				m := utf8.EncodeRune(er, r)
				copy(buffer[cursor+m:], buffer[cursor:])
				copy(buffer[cursor:], er[:m])
				cursor++
				n += m
				history = len(ct.commandHistory)
			}
		}
	}
}
