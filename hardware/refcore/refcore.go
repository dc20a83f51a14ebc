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

// Package refcore is a minimal core for the remu machine. It exists so the
// monitor has something real to drive; it is in no way a complete or even
// useful instruction set.
//
// Instructions are one word. The top byte is the opcode, the remaining three
// bytes are the operand fields a, b and c from most to least significant. The
// b and c fields together form a 16-bit immediate where noted.
package refcore

import (
	"github.com/softcpu/remu/curated"
	"github.com/softcpu/remu/hardware"
)

// List of opcodes.
const (
	opHalt  = 0x00 // stop the machine
	opSet   = 0x01 // ra <- imm16
	opAdd   = 0x02 // ra <- rb + rc
	opSub   = 0x03 // ra <- rb - rc
	opLoad  = 0x04 // ra <- word at [rb + c]
	opStore = 0x05 // word at [rb + c] <- ra
	opBrnz  = 0x06 // if ra != 0, pc <- origin + imm16*4
)

// Sentinel error returned when an opcode is not recognised.
const UnknownOpcode = "unknown opcode (%#02x) at pc=%#08x"

// Core implements the hardware.Core interface.
type Core struct{}

// Step retires one instruction.
func (cor Core) Step(mach *hardware.Machine) error {
	pc := mach.Regs.PC

	inst, err := mach.Mem.ReadWord(pc)
	if err != nil {
		return err
	}

	op := uint8(inst >> 24)
	a := (inst >> 16) & 0x0f
	b := (inst >> 8) & 0x0f
	c := inst & 0x0f
	disp := inst & 0xff
	imm := inst & 0xffff

	switch op {
	case opHalt:
		return curated.Errorf(hardware.Halted, pc)

	case opSet:
		mach.Regs.R[a] = imm

	case opAdd:
		mach.Regs.R[a] = mach.Regs.R[b] + mach.Regs.R[c]

	case opSub:
		mach.Regs.R[a] = mach.Regs.R[b] - mach.Regs.R[c]

	case opLoad:
		v, err := mach.Mem.ReadWord(mach.Regs.R[b] + disp)
		if err != nil {
			return err
		}
		mach.Regs.R[a] = v

	case opStore:
		if err := mach.Mem.WriteWord(mach.Regs.R[b]+disp, mach.Regs.R[a]); err != nil {
			return err
		}

	case opBrnz:
		if mach.Regs.R[a] != 0 {
			mach.Regs.PC = hardware.MemoryOrigin + imm*4
			return nil
		}

	default:
		return curated.Errorf(UnknownOpcode, op, pc)
	}

	mach.Regs.PC = pc + 4

	return nil
}
