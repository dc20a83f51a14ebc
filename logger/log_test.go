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

package logger

import (
	"testing"

	"github.com/softcpu/remu/test"
)

func TestWriteAndTail(t *testing.T) {
	l := newLogger(100)

	tw := &test.Writer{}
	test.ExpectFailure(t, l.write(tw))
	test.ExpectSuccess(t, tw.Compare(""))

	l.log("test", "this is a test")
	test.ExpectSuccess(t, l.write(tw))
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	l.log("test2", "this is another test")
	tw.Clear()
	test.ExpectSuccess(t, l.write(tw))
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// only the last entry
	tw.Clear()
	l.tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))
}

func TestRepeatFolding(t *testing.T) {
	l := newLogger(100)

	l.log("test", "repeated detail")
	l.log("test", "repeated detail")
	l.log("test", "repeated detail")

	test.ExpectEquality(t, len(l.entries), 1)

	tw := &test.Writer{}
	test.ExpectSuccess(t, l.write(tw))
	test.ExpectSuccess(t, tw.Compare("test: repeated detail (repeat x3)\n"))
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("a", "1")
	l.log("b", "2")
	l.log("c", "3")

	test.ExpectEquality(t, len(l.entries), 2)
	test.ExpectEquality(t, l.entries[0].Tag, "b")
	test.ExpectEquality(t, l.entries[1].Tag, "c")
}

func TestEcho(t *testing.T) {
	l := newLogger(100)
	l.log("before", "logged before echo")

	tw := &test.Writer{}
	l.setEcho(tw, true)
	test.ExpectSuccess(t, tw.Compare("before: logged before echo\n"))

	l.log("after", "logged after echo")
	test.ExpectSuccess(t, tw.Compare("before: logged before echo\nafter: logged after echo\n"))
}
