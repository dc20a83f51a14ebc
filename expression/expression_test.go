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

package expression_test

import (
	"testing"

	"github.com/softcpu/remu/curated"
	"github.com/softcpu/remu/expression"
	"github.com/softcpu/remu/test"
)

// stubState implements the expression.State interface. Register values are
// looked up in a map and every memory word is the address plus one.
type stubState struct {
	registers map[string]uint32
}

func (st stubState) Register(name string) (uint32, error) {
	if v, ok := st.registers[name]; ok {
		return v, nil
	}
	return 0, curated.Errorf("no such register (%s)", name)
}

func (st stubState) ReadWord(address uint32) (uint32, error) {
	if address >= 0xfffffff0 {
		return 0, curated.Errorf("address %#08x is not mapped", address)
	}
	return address + 1, nil
}

func TestEvaluate(t *testing.T) {
	st := stubState{
		registers: map[string]uint32{
			"pc": 0x80000000,
			"r0": 10,
			"r1": 3,
		},
	}

	table := []struct {
		input string
		value uint32
	}{
		{"1", 1},
		{"0x10", 16},
		{"1+2", 3},
		{"1 + 2", 3},
		{"2*3+4", 10},
		{"4+2*3", 10},
		{"(4+2)*3", 18},
		{"10/3", 3},
		{"-1", 0xffffffff},
		{"--1", 1},
		{"1==1", 1},
		{"1==2", 0},
		{"1!=2", 1},
		{"1==1 && 2==2", 1},
		{"1==1 && 2==3", 0},
		{"$r0", 10},
		{"$r0+$r1", 13},
		{"$r0==10", 1},
		{"*0x100", 0x101},
		{"*$pc", 0x80000001},
		{"**0", 2},
		{"*(0x100+4)", 0x105},
		{"2**0x100", 0x202},
	}

	for _, e := range table {
		v, err := expression.Evaluate(st, e.input)
		if test.ExpectSuccess(t, err) {
			test.ExpectEquality(t, v, e.value)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	st := stubState{registers: map[string]uint32{"pc": 0}}

	table := []string{
		"",
		"   ",
		"1+",
		"+1",
		"(1",
		"1)",
		"1 2",
		"1//2",
		"1/0",
		"$",
		"$nosuch",
		"*0xfffffff0",
		"0xzz",
		"hello",
	}

	for _, input := range table {
		_, err := expression.Evaluate(st, input)
		if test.ExpectFailure(t, err) {
			test.ExpectSuccess(t, curated.Is(err, expression.EvalError))
		}
	}
}
