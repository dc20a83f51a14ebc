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

package hardware_test

import (
	"strings"
	"testing"

	"github.com/softcpu/remu/curated"
	"github.com/softcpu/remu/hardware"
	"github.com/softcpu/remu/hardware/refcore"
	"github.com/softcpu/remu/test"
)

func newTestMachine(t *testing.T, program []uint32) *hardware.Machine {
	t.Helper()
	mach := hardware.NewMachine(refcore.Core{})
	test.DemandSuccess(t, mach.Mem.LoadImage(refcore.Image(program)))
	return mach
}

func TestMachineReset(t *testing.T) {
	mach := newTestMachine(t, []uint32{refcore.Halt()})
	test.ExpectEquality(t, mach.Regs.PC, hardware.MemoryOrigin)
	test.ExpectEquality(t, mach.Halted(), false)
	test.ExpectEquality(t, mach.Retired(), 0)
}

func TestMachineRunCount(t *testing.T) {
	mach := newTestMachine(t, []uint32{
		refcore.Set(1, 5),
		refcore.Set(2, 7),
		refcore.Add(3, 1, 2),
		refcore.Halt(),
	})

	test.ExpectSuccess(t, mach.Run(2, nil))
	test.ExpectEquality(t, mach.Retired(), 2)
	test.ExpectEquality(t, mach.Regs.R[1], 5)
	test.ExpectEquality(t, mach.Regs.R[2], 7)
	test.ExpectEquality(t, mach.Regs.R[3], 0)

	test.ExpectSuccess(t, mach.Run(1, nil))
	test.ExpectEquality(t, mach.Regs.R[3], 12)
	test.ExpectEquality(t, mach.Regs.PC, hardware.MemoryOrigin+12)
}

func TestMachineHalt(t *testing.T) {
	mach := newTestMachine(t, []uint32{
		refcore.Set(1, 1),
		refcore.Halt(),
	})

	err := mach.Run(hardware.RunForever, nil)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, hardware.Halted), true)
	test.ExpectEquality(t, mach.Halted(), true)
	test.ExpectEquality(t, mach.Retired(), 1)

	// pc does not advance past the halt instruction and any further run
	// request fails immediately
	test.ExpectEquality(t, mach.Regs.PC, hardware.MemoryOrigin+4)
	err = mach.Run(1, nil)
	test.ExpectEquality(t, curated.Is(err, hardware.Halted), true)
	test.ExpectEquality(t, mach.Retired(), 1)
}

func TestMachineCheckCadence(t *testing.T) {
	mach := newTestMachine(t, []uint32{
		refcore.Set(1, 1),
		refcore.Set(2, 2),
		refcore.Set(3, 3),
		refcore.Halt(),
	})

	// the check function is consulted exactly once per retired instruction
	checks := 0
	test.ExpectSuccess(t, mach.Run(3, func() bool {
		checks++
		return false
	}))
	test.ExpectEquality(t, checks, 3)

	// a firing check stops an unbounded run
	mach = newTestMachine(t, []uint32{
		refcore.Set(1, 1),
		refcore.Set(2, 2),
		refcore.Halt(),
	})
	test.ExpectSuccess(t, mach.Run(hardware.RunForever, func() bool {
		return mach.Retired() == 2
	}))
	test.ExpectEquality(t, mach.Retired(), 2)
	test.ExpectEquality(t, mach.Halted(), false)
}

func TestMachineLoadStore(t *testing.T) {
	// store r1 at [r2+4] and load it back into r3. base addresses come from
	// registers so r2 is set by hand before running.
	mach := newTestMachine(t, []uint32{
		refcore.Set(1, 99),
		refcore.Store(1, 2, 4),
		refcore.Load(3, 2, 4),
		refcore.Halt(),
	})
	mach.Regs.R[2] = hardware.MemoryOrigin + 0x2000

	test.ExpectSuccess(t, mach.Run(3, nil))
	test.ExpectEquality(t, mach.Regs.R[3], 99)

	v, err := mach.Mem.ReadWord(hardware.MemoryOrigin + 0x2004)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, 99)
}

func TestMachineBranch(t *testing.T) {
	// r1 counts down from 2. brnz to instruction 1 (the sub) while r1 != 0.
	mach := newTestMachine(t, []uint32{
		refcore.Set(1, 2),
		refcore.Set(2, 1),
		refcore.Sub(1, 1, 2),
		refcore.Brnz(1, 2),
		refcore.Halt(),
	})

	err := mach.Run(hardware.RunForever, nil)
	test.ExpectEquality(t, curated.Is(err, hardware.Halted), true)
	test.ExpectEquality(t, mach.Regs.R[1], 0)

	// set, set, sub, brnz (taken), sub, brnz (not taken), halt
	test.ExpectEquality(t, mach.Retired(), 6)
}

func TestMachineUnknownOpcode(t *testing.T) {
	mach := newTestMachine(t, []uint32{0xff000000})
	err := mach.Run(1, nil)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, refcore.UnknownOpcode), true)
	test.ExpectEquality(t, mach.Halted(), false)
	test.ExpectEquality(t, mach.Retired(), 0)
}

func TestMemoryBounds(t *testing.T) {
	mach := hardware.NewMachine(refcore.Core{})

	// below and above the mapped range
	for _, addr := range []uint32{0, hardware.MemoryOrigin - 1, hardware.MemoryOrigin + hardware.MemorySize} {
		_, err := mach.Mem.ReadByte(addr)
		test.ExpectEquality(t, curated.Is(err, hardware.AddressError), true)
	}

	// the last byte is readable but the last word is not
	last := hardware.MemoryOrigin + hardware.MemorySize - 1
	_, err := mach.Mem.ReadByte(last)
	test.ExpectSuccess(t, err)
	_, err = mach.Mem.ReadWord(last)
	test.ExpectEquality(t, curated.Is(err, hardware.AddressError), true)

	// word access at the very end of RAM
	_, err = mach.Mem.ReadWord(hardware.MemoryOrigin + hardware.MemorySize - 4)
	test.ExpectSuccess(t, err)
}

func TestMemoryImage(t *testing.T) {
	mach := hardware.NewMachine(refcore.Core{})

	err := mach.Mem.LoadImage(make([]byte, hardware.MemorySize+1))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, hardware.ImageError), true)

	test.ExpectSuccess(t, mach.Mem.LoadImage([]byte{0xde, 0xad, 0xbe, 0xef}))
	v, err := mach.Mem.ReadWord(hardware.MemoryOrigin)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, 0xefbeadde)
}

func TestRegisterNames(t *testing.T) {
	mach := hardware.NewMachine(refcore.Core{})
	mach.Regs.R[5] = 123

	v, err := mach.Regs.Value("r5")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, 123)

	v, err = mach.Regs.Value("pc")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, hardware.MemoryOrigin)

	for _, name := range []string{"r16", "r-1", "r05", "R5", "PC", "sp", ""} {
		_, err := mach.Regs.Value(name)
		test.ExpectFailure(t, err)
		test.ExpectEquality(t, curated.Is(err, hardware.RegisterError), true)
	}
}

func TestRegisterString(t *testing.T) {
	mach := hardware.NewMachine(refcore.Core{})
	mach.Regs.R[0] = 0xabcd

	s := mach.Regs.String()
	test.ExpectEquality(t, strings.Contains(s, "pc  80000000"), true)
	test.ExpectEquality(t, strings.Contains(s, "r0  0000abcd"), true)
	test.ExpectEquality(t, strings.Contains(s, "r15 00000000"), true)
}
