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
	"fmt"
	"strings"

	"github.com/softcpu/remu/curated"
)

// NumRegisters is the number of general purpose registers in the machine.
const NumRegisters = 16

// Sentinel error returned when a register name is not recognised.
const RegisterError = "no such register (%s)"

// Registers is the register file of the machine: sixteen general purpose
// registers, named r0 to r15, and the program counter.
type Registers struct {
	R  [NumRegisters]uint32
	PC uint32
}

func (reg *Registers) reset() {
	for i := range reg.R {
		reg.R[i] = 0
	}
	reg.PC = MemoryOrigin
}

// Value returns the register with the specified name. Names are
// case-sensitive and lower-case: "pc" and "r0" to "r15".
func (reg *Registers) Value(name string) (uint32, error) {
	if name == "pc" {
		return reg.PC, nil
	}

	var n int
	if _, err := fmt.Sscanf(name, "r%d", &n); err != nil || n < 0 || n >= NumRegisters {
		return 0, curated.Errorf(RegisterError, name)
	}
	if fmt.Sprintf("r%d", n) != name {
		return 0, curated.Errorf(RegisterError, name)
	}

	return reg.R[n], nil
}

// String returns the register file formatted in rows of four.
func (reg *Registers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("pc  %08x\n", reg.PC))
	for i := range reg.R {
		s.WriteString(fmt.Sprintf("r%-2d %08x", i, reg.R[i]))
		if i%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString("   ")
		}
	}
	return strings.TrimRight(s.String(), "\n")
}
