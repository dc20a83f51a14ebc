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
	"io"
	"os"
	"os/signal"

	"github.com/softcpu/remu/curated"
	"github.com/softcpu/remu/hardware"
	"github.com/softcpu/remu/logger"
	"github.com/softcpu/remu/monitor/govern"
	"github.com/softcpu/remu/monitor/terminal"
)

// error patterns for the monitor package. handlers wrap the detail of a
// malformed command in ParseError so that callers (and tests) can identify
// the class of failure without string comparison of the full message.
const (
	ParseError          = "parse error: %v"
	UnknownCommand      = "Unknown command '%s'"
	AllocationExhausted = "watchpoint pool exhausted (capacity %d)"
	LookupError         = "watchpoint %d is not defined"
)

const prompt = "(remu) "

// the maximum length of a single input line
const maxInputLen = 255

// Monitor is the interactive front-end to a hardware.Machine.
type Monitor struct {
	mach *hardware.Machine
	term terminal.Terminal
	wpts *watchpoints

	state govern.State
	mode  govern.Mode

	// the command table is copied per monitor so that tests can inspect it
	// without racing on a package variable
	commands []commandEntry

	events *terminal.ReadEvents
	input  [maxInputLen]byte
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// the terminal is not initialised until Run().
func NewMonitor(mach *hardware.Machine, term terminal.Terminal) (*Monitor, error) {
	mon := &Monitor{
		mach:  mach,
		term:  term,
		state: govern.MonitorStart,
		mode:  govern.ModeInteractive,
	}
	mon.wpts = newWatchpoints(mon)
	mon.commands = append(mon.commands, commandTable...)

	mon.events = &terminal.ReadEvents{
		Signal: make(chan os.Signal, 1),
		SignalHandler: func(sig os.Signal) error {
			if sig == os.Interrupt {
				return curated.Errorf(terminal.UserInterrupt)
			}
			return nil
		},
	}

	logger.Logf("monitor", "new monitor in %s mode", mon.mode)

	return mon, nil
}

// SetBatchMode puts the monitor into batch mode. it must be called before
// Run() and has no effect afterwards.
func (mon *Monitor) SetBatchMode() {
	mon.mode = govern.ModeBatch
}

// State returns the current governance state of the monitor.
func (mon *Monitor) State() govern.State {
	return mon.state
}

// Run is the monitor's main loop. it initialises the terminal, reads and
// dispatches commands until the quit command or end of input, and cleans up
// on the way out. in batch mode no input is read at all: the machine is run
// to a halt and Run() returns.
func (mon *Monitor) Run() error {
	if err := mon.term.Initialise(); err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer mon.term.CleanUp()

	signal.Notify(mon.events.Signal, os.Interrupt)
	defer signal.Stop(mon.events.Signal)

	if mon.mode == govern.ModeBatch {
		err := mon.runMachine(hardware.RunForever)
		mon.state = govern.Ending
		return err
	}

	for mon.state != govern.Ending {
		mon.state = govern.Waiting

		n, err := mon.term.TermRead(mon.input[:], terminal.Prompt{Content: prompt}, mon.events)
		if err != nil {
			if err == io.EOF || curated.Is(err, terminal.UserInterrupt) {
				break // for loop
			}
			mon.state = govern.Ending
			return err
		}

		if mon.dispatch(string(mon.input[:n])) {
			break // for loop
		}
	}

	mon.state = govern.Ending

	return nil
}

// dispatch tokenises one input line and runs the named command. the return
// value is true if the monitor should terminate. all errors from handlers
// are reported to the terminal here, none of them end the monitor.
func (mon *Monitor) dispatch(line string) bool {
	tk := tokeniseInput(line)

	name, ok := tk.get()
	if !ok {
		// a blank line is not an error
		return false
	}

	for _, c := range mon.commands {
		if c.name == name {
			terminate, err := c.handler(mon, tk)
			if err != nil {
				mon.printLine(terminal.StyleError, "%v", err)
			}
			return terminate
		}
	}

	mon.printLine(terminal.StyleError, UnknownCommand, name)

	return false
}

// runMachine asks the machine to execute. count is a positive instruction
// count or hardware.RunForever. control does not return to the caller until
// the count is exhausted, the machine halts or a watchpoint fires.
func (mon *Monitor) runMachine(count int) error {
	if count == hardware.RunForever {
		mon.state = govern.Running
	} else {
		mon.state = govern.Stepping
	}
	defer func() {
		mon.state = govern.Waiting
	}()

	err := mon.mach.Run(count, mon.checkWatchpoints)
	if err != nil {
		if curated.Has(err, hardware.Halted) {
			mon.printLine(terminal.StyleFeedback, "%v", err)
			return nil
		}
		return err
	}

	return nil
}

// checkWatchpoints is given to hardware.Machine.Run and is consulted after
// every retired instruction. a true return stops execution.
func (mon *Monitor) checkWatchpoints() bool {
	hits := mon.wpts.recheck()
	for _, h := range hits {
		mon.printLine(terminal.StyleInstrument, "watchpoint %d: %s: %d -> %d",
			h.id, h.expr, h.old, h.new)
	}
	return len(hits) > 0
}
