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
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/softcpu/remu/curated"
	"github.com/softcpu/remu/expression"
	"github.com/softcpu/remu/hardware"
	"github.com/softcpu/remu/logger"
	"github.com/softcpu/remu/monitor/terminal"
)

// command names as typed at the prompt. matching is exact, there are no
// abbreviations beyond what the names already are.
const (
	cmdHelp     = "help"
	cmdContinue = "c"
	cmdQuit     = "q"
	cmdStep     = "si"
	cmdInfo     = "info"
	cmdExamine  = "x"
	cmdPrint    = "p"
	cmdWatch    = "w"
	cmdDelete   = "d"
	cmdLog      = "log"
	cmdViz      = "viz"
)

// a command handler consumes the tokens that follow the command name. the
// bool return is true if the monitor should terminate.
type commandEntry struct {
	name        string
	description string
	handler     func(*Monitor, *tokens) (bool, error)
}

// the order of this table is the order the help command lists commands in.
var commandTable = []commandEntry{
	{cmdHelp, "Display information about all supported commands", (*Monitor).cmdHelp},
	{cmdContinue, "Continue execution until the machine halts", (*Monitor).cmdContinue},
	{cmdQuit, "Exit the monitor", (*Monitor).cmdQuit},
	{cmdStep, "Step [N] instructions (default 1)", (*Monitor).cmdStep},
	{cmdInfo, "Show register state (info r) or watchpoints (info w)", (*Monitor).cmdInfo},
	{cmdExamine, "Examine N words of memory at EXPR (x N EXPR)", (*Monitor).cmdExamine},
	{cmdPrint, "Evaluate EXPR and print the result", (*Monitor).cmdPrint},
	{cmdWatch, "Set a watchpoint over EXPR", (*Monitor).cmdWatch},
	{cmdDelete, "Delete watchpoint N", (*Monitor).cmdDelete},
	{cmdLog, "Display the machine log (log [all|clear])", (*Monitor).cmdLog},
	{cmdViz, "Write a graph of the watchpoint pool to FILE", (*Monitor).cmdViz},
}

func (mon *Monitor) cmdHelp(tk *tokens) (bool, error) {
	arg, ok := tk.get()
	if !ok {
		for _, c := range mon.commands {
			mon.printLine(terminal.StyleHelp, "%s - %s", c.name, c.description)
		}
		return false, nil
	}

	for _, c := range mon.commands {
		if c.name == arg {
			mon.printLine(terminal.StyleHelp, "%s - %s", c.name, c.description)
			return false, nil
		}
	}

	return false, curated.Errorf(UnknownCommand, arg)
}

func (mon *Monitor) cmdContinue(_ *tokens) (bool, error) {
	return false, mon.runMachine(hardware.RunForever)
}

func (mon *Monitor) cmdQuit(_ *tokens) (bool, error) {
	return true, nil
}

func (mon *Monitor) cmdStep(tk *tokens) (bool, error) {
	count := 1

	if arg, ok := tk.get(); ok {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return false, curated.Errorf(ParseError,
				curated.Errorf("step count must be a positive integer (%s)", arg))
		}
		count = n
	}

	return false, mon.runMachine(count)
}

func (mon *Monitor) cmdInfo(tk *tokens) (bool, error) {
	arg, ok := tk.get()
	if !ok {
		return false, curated.Errorf(ParseError,
			curated.Errorf("info requires a subject (r or w)"))
	}

	switch arg {
	case "r":
		mon.printLine(terminal.StyleInstrument, mon.mach.Regs.String())
	case "w":
		mon.wpts.list()
	default:
		return false, curated.Errorf(ParseError,
			curated.Errorf("unrecognised info subject (%s)", arg))
	}

	return false, nil
}

func (mon *Monitor) cmdExamine(tk *tokens) (bool, error) {
	arg, ok := tk.get()
	if !ok {
		return false, curated.Errorf(ParseError,
			curated.Errorf("x requires a word count and an address expression"))
	}

	count, err := strconv.Atoi(arg)
	if err != nil || count < 1 {
		return false, curated.Errorf(ParseError,
			curated.Errorf("word count must be a positive integer (%s)", arg))
	}

	expr, ok := tk.remainder()
	if !ok {
		return false, curated.Errorf(ParseError,
			curated.Errorf("x requires an address expression"))
	}

	addr, err := expression.Evaluate(mon.mach, expr)
	if err != nil {
		return false, err
	}

	// a single line: the start address followed by 4*count bytes in
	// ascending address order
	s := strings.Builder{}
	for i := uint32(0); i < uint32(count*4); i++ {
		v, err := mon.mach.Mem.ReadByte(addr + i)
		if err != nil {
			return false, err
		}
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", v))
	}
	mon.printLine(terminal.StyleFeedback, "%#08x: %s", addr, s.String())

	return false, nil
}

func (mon *Monitor) cmdPrint(tk *tokens) (bool, error) {
	expr, ok := tk.remainder()
	if !ok {
		return false, curated.Errorf(ParseError,
			curated.Errorf("p requires an expression"))
	}

	val, err := expression.Evaluate(mon.mach, expr)
	if err != nil {
		return false, err
	}

	// evaluation is unsigned throughout but the result is displayed as a
	// signed quantity
	mon.printLine(terminal.StyleFeedback, "val = %d", int32(val))

	return false, nil
}

func (mon *Monitor) cmdWatch(tk *tokens) (bool, error) {
	expr, ok := tk.remainder()
	if !ok {
		return false, curated.Errorf(ParseError,
			curated.Errorf("w requires an expression"))
	}

	id, err := mon.wpts.create(expr)
	if err != nil {
		return false, err
	}

	mon.printLine(terminal.StyleFeedback, "watchpoint %d set: %s = %d",
		id, expr, mon.wpts.slots[id].value)

	return false, nil
}

func (mon *Monitor) cmdDelete(tk *tokens) (bool, error) {
	arg, ok := tk.get()
	if !ok {
		return false, curated.Errorf(ParseError,
			curated.Errorf("d requires a watchpoint number"))
	}

	id, err := strconv.Atoi(arg)
	if err != nil {
		return false, curated.Errorf(ParseError,
			curated.Errorf("watchpoint number must be an integer (%s)", arg))
	}

	if err := mon.wpts.delete(id); err != nil {
		return false, err
	}

	mon.printLine(terminal.StyleFeedback, "watchpoint %d deleted", id)

	return false, nil
}

func (mon *Monitor) cmdLog(tk *tokens) (bool, error) {
	arg, ok := tk.get()
	if !ok {
		logger.Tail(mon.writerInStyle(terminal.StyleFeedback), 20)
		return false, nil
	}

	switch arg {
	case "all":
		logger.Write(mon.writerInStyle(terminal.StyleFeedback))
	case "clear":
		logger.Clear()
	default:
		return false, curated.Errorf(ParseError,
			curated.Errorf("unrecognised log request (%s)", arg))
	}

	return false, nil
}

func (mon *Monitor) cmdViz(tk *tokens) (bool, error) {
	arg, ok := tk.get()
	if !ok {
		return false, curated.Errorf(ParseError,
			curated.Errorf("viz requires an output filename"))
	}

	f, err := os.Create(arg)
	if err != nil {
		return false, curated.Errorf("viz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, mon.wpts)
	mon.printLine(terminal.StyleFeedback, "watchpoint pool written to %s", arg)

	return false, nil
}
