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

// Package hardware is the machine state of the simulated CPU: the register
// file, the RAM image and the execution loop that retires instructions.
//
// The semantics of individual instructions are not defined here. They are the
// responsibility of a Core implementation attached to the Machine on
// creation. The refcore sub-package contains a minimal implementation that is
// sufficient for the monitor to drive.
package hardware
