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

// Package modalflag layers sub-modes on top of the flag package from the
// standard library. A command line is parsed in stages: flags for the
// current mode, then an optional sub-mode name which selects the flags for
// the next stage.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG")
//
//	r, err := md.Parse()
//	...
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		// add RUN specific flags and Parse() again
//	...
//	}
//
// The first sub-mode in the list given to AddSubModes() is the default and
// is selected when the command line names no sub-mode. Sub-mode matching is
// case insensitive.
//
// Help is handled by Parse(). A -help flag prints the flags for the current
// mode along with the available sub-modes, and Parse() returns ParseHelp to
// say that it has done so.
package modalflag
