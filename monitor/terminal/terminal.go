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

import (
	"os"
)

// Sentinel error returned by TermRead() if an interrupt is caught whilst
// waiting for input.
const UserInterrupt = "user interrupt"

// ReadEvents should be monitored during a TermRead().
type ReadEvents struct {
	// interrupt signals from the operating system
	Signal chan os.Signal

	// handler for interrupt signals. the error returned by the handler is
	// returned by TermRead()
	SignalHandler func(os.Signal) error
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the number of characters inserted into the buffer, or
	// an error, when completed.
	//
	// If possible the TermRead() implementation should check the ReadEvents
	// channels for activity while waiting for input. Not all implementations
	// will be able to do so because of the context in which they operate.
	TermRead(buffer []byte, prompt Prompt, events *ReadEvents) (int, error)

	// IsInteractive should return true for implementations that expect user
	// interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the monitor's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for example,
	// making sure the terminal is returned to canonical mode.
	CleanUp()

	// Silence all input and output except error messages. TermPrintLine()
	// should display error messages even when silenced.
	Silence(silenced bool)
}
