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

// Package monitor is the interactive control plane for the remu machine. It
// reads commands from a terminal.Terminal, dispatches them to handlers and
// owns the watchpoint pool that the execution loop consults after every
// retired instruction.
//
// The monitor is strictly single-threaded. A stepping request ("c" or "si")
// blocks until the machine returns control: because the requested count
// completed, the machine halted, or a watchpoint fired. There is no way to
// interrupt a run from the monitor side once it has been issued.
//
// A monitor in batch mode never reads input. Its Run() function performs the
// equivalent of a single "c" command and returns.
package monitor
