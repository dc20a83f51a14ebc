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

// Package govern defines the types that describe the current condition of
// the monitor: its Mode, decided once before the main loop starts, and its
// State, which changes as commands are dispatched.
package govern

// State indicates what the monitor is currently doing.
type State int

// List of possible monitor states.
//
// MonitorStart is the default state and is never re-entered once the main
// loop has begun. Ending means the main loop should stop reading input and
// return as soon as possible.
const (
	MonitorStart State = iota
	Waiting
	Stepping
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case MonitorStart:
		return "MonitorStart"
	case Waiting:
		return "Waiting"
	case Stepping:
		return "Stepping"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}

	return ""
}

// Mode indicates how the monitor session is being driven. The mode is set
// before the main loop starts and never changes.
type Mode int

// List of defined modes. In ModeBatch the main loop performs a single
// unbounded run and returns without ever reading input.
const (
	ModeInteractive Mode = iota
	ModeBatch
)

func (m Mode) String() string {
	switch m {
	case ModeInteractive:
		return "Interactive"
	case ModeBatch:
		return "Batch"
	}

	return ""
}
