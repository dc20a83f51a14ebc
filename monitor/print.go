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
	"fmt"
	"strings"

	"github.com/softcpu/remu/monitor/terminal"
)

// all monitor output passes through printLine. the terminal decides how a
// style is actually rendered.
func (mon *Monitor) printLine(sty terminal.Style, s string, a ...interface{}) {
	s = fmt.Sprintf(s, a...)

	// remove one trailing newline if necessary. internal newlines are
	// allowed, the terminal prints the string as it is given.
	s = strings.TrimSuffix(s, "\n")

	if len(s) == 0 {
		return
	}

	mon.term.TermPrintLine(sty, s)
}

// styleWriter implements io.Writer and is suitable for functions that write
// multi-line output, the logger in particular.
type styleWriter struct {
	mon *Monitor
	sty terminal.Style
}

func (mon *Monitor) writerInStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{mon: mon, sty: sty}
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	for _, s := range strings.Split(string(p), "\n") {
		if len(s) > 0 {
			wrt.mon.term.TermPrintLine(wrt.sty, s)
		}
	}
	return len(p), nil
}
