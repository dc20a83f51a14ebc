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

package refcore

import "encoding/binary"

// Instruction encoding helpers. Used by tests and by anything that wants to
// build a memory image without an assembler.

// Halt encodes the halt instruction.
func Halt() uint32 {
	return uint32(opHalt) << 24
}

// Set encodes: ra <- imm.
func Set(a int, imm uint16) uint32 {
	return uint32(opSet)<<24 | uint32(a&0x0f)<<16 | uint32(imm)
}

// Add encodes: ra <- rb + rc.
func Add(a, b, c int) uint32 {
	return uint32(opAdd)<<24 | uint32(a&0x0f)<<16 | uint32(b&0x0f)<<8 | uint32(c&0x0f)
}

// Sub encodes: ra <- rb - rc.
func Sub(a, b, c int) uint32 {
	return uint32(opSub)<<24 | uint32(a&0x0f)<<16 | uint32(b&0x0f)<<8 | uint32(c&0x0f)
}

// Load encodes: ra <- word at [rb + disp].
func Load(a, b int, disp uint8) uint32 {
	return uint32(opLoad)<<24 | uint32(a&0x0f)<<16 | uint32(b&0x0f)<<8 | uint32(disp)
}

// Store encodes: word at [rb + disp] <- ra.
func Store(a, b int, disp uint8) uint32 {
	return uint32(opStore)<<24 | uint32(a&0x0f)<<16 | uint32(b&0x0f)<<8 | uint32(disp)
}

// Brnz encodes: if ra != 0, jump to the numbered instruction.
func Brnz(a int, inst uint16) uint32 {
	return uint32(opBrnz)<<24 | uint32(a&0x0f)<<16 | uint32(inst)
}

// Image converts a program to a flat binary image suitable for
// Memory.LoadImage().
func Image(program []uint32) []byte {
	image := make([]byte, len(program)*4)
	for i, inst := range program {
		binary.LittleEndian.PutUint32(image[i*4:], inst)
	}
	return image
}
