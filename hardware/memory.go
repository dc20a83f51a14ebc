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
	"encoding/binary"

	"github.com/softcpu/remu/curated"
)

// MemoryOrigin is the address of the first byte of RAM.
const MemoryOrigin = uint32(0x80000000)

// MemorySize is the number of bytes of RAM.
const MemorySize = uint32(0x00010000)

// Sentinel error returned when an address does not point into RAM.
const AddressError = "address %#08x is not mapped"

// Sentinel error returned when an image is too large for RAM.
const ImageError = "image of %d bytes does not fit in memory"

// Memory is the flat RAM image of the machine. Words are little-endian.
type Memory struct {
	data []byte
}

func newMemory() *Memory {
	return &Memory{
		data: make([]byte, MemorySize),
	}
}

// offset converts an address to an index into the data slice, checking
// bounds. the want argument is the number of bytes the caller will access.
func (mem *Memory) offset(address uint32, want uint32) (uint32, error) {
	if address < MemoryOrigin || address-MemoryOrigin > MemorySize-want {
		return 0, curated.Errorf(AddressError, address)
	}
	return address - MemoryOrigin, nil
}

// ReadByte returns the byte at the specified address.
func (mem *Memory) ReadByte(address uint32) (uint8, error) {
	idx, err := mem.offset(address, 1)
	if err != nil {
		return 0, err
	}
	return mem.data[idx], nil
}

// WriteByte sets the byte at the specified address.
func (mem *Memory) WriteByte(address uint32, value uint8) error {
	idx, err := mem.offset(address, 1)
	if err != nil {
		return err
	}
	mem.data[idx] = value
	return nil
}

// ReadWord returns the word at the specified address.
func (mem *Memory) ReadWord(address uint32) (uint32, error) {
	idx, err := mem.offset(address, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(mem.data[idx:]), nil
}

// WriteWord sets the word at the specified address.
func (mem *Memory) WriteWord(address uint32, value uint32) error {
	idx, err := mem.offset(address, 4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(mem.data[idx:], value)
	return nil
}

// LoadImage copies a flat binary image into RAM, starting at MemoryOrigin.
func (mem *Memory) LoadImage(image []byte) error {
	if len(image) > len(mem.data) {
		return curated.Errorf(ImageError, len(image))
	}
	copy(mem.data, image)
	return nil
}
