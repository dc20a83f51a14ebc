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

package hardware

import (
	"github.com/softcpu/remu/logger"
)

// Core implementations provide the instruction semantics of the machine. The
// Step() function retires exactly one instruction, updating machine state as
// required. A core signals that the machine has stopped for good by
// returning an error matching the Halted pattern.
type Core interface {
	Step(mach *Machine) error
}

// Machine is the simulated CPU: register file, RAM and the attached core.
type Machine struct {
	Regs Registers
	Mem  *Memory

	core Core

	// machine cannot step again once the core has reported a halt
	halted bool

	// number of instructions retired since the machine was created
	retired uint64
}

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine(core Core) *Machine {
	mach := &Machine{
		Mem:  newMemory(),
		core: core,
	}
	mach.Regs.reset()
	logger.Logf("hardware", "machine created (%dk RAM at %#08x)", MemorySize/1024, MemoryOrigin)
	return mach
}

// Halted returns true once the core has reported that the machine stopped.
func (mach *Machine) Halted() bool {
	return mach.halted
}

// Retired returns the number of instructions retired so far.
func (mach *Machine) Retired() uint64 {
	return mach.retired
}

// Register returns the named register. Implements the expression.State
// interface.
func (mach *Machine) Register(name string) (uint32, error) {
	return mach.Regs.Value(name)
}

// ReadWord returns the word at the specified address. Implements the
// expression.State interface.
func (mach *Machine) ReadWord(address uint32) (uint32, error) {
	return mach.Mem.ReadWord(address)
}
