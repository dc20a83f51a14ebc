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

// Package terminal defines the operations required for user interaction with
// the monitor. The two sub-packages, plainterm and colorterm, are reference
// implementations of the Terminal interface. Other implementations can and
// do exist - the monitor tests drive a scripted terminal, for instance.
//
// All monitor output happens through the Output interface, tagged with a
// Style. Styles allow the monitor to say what a piece of text is without
// saying how it should look; what colour, if any, to use is wholly the
// terminal's decision.
package terminal
