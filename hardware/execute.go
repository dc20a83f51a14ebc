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
	"github.com/softcpu/remu/curated"
	"github.com/softcpu/remu/logger"
)

// RunForever is the count value that requests unbounded stepping from the
// Run() function.
const RunForever = -1

// Sentinel error returned by cores when the machine stops for good, and by
// Run() when stepping is requested of a machine that has already stopped.
const Halted = "machine halted: pc=%#08x"

// Run retires up to count instructions, or runs unbounded when count is
// RunForever.
//
// After every retired instruction the check function is consulted exactly
// once; if it returns true stepping stops immediately, even when the
// requested count is not exhausted. A nil check function is never consulted.
//
// Run returns when the count is exhausted, the check function fires, or the
// core reports an error. A core halt is reported with an error matching the
// Halted pattern; any further Run request returns the same pattern
// immediately.
func (mach *Machine) Run(count int, check func() bool) error {
	if mach.halted {
		return curated.Errorf(Halted, mach.Regs.PC)
	}

	for count != 0 {
		if err := mach.core.Step(mach); err != nil {
			if curated.Has(err, Halted) {
				mach.halted = true
				logger.Logf("hardware", "halted after %d instructions", mach.retired)
			}
			return err
		}

		mach.retired++

		if check != nil && check() {
			return nil
		}

		if count > 0 {
			count--
		}
	}

	return nil
}
