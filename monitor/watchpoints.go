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

package monitor

import (
	"github.com/softcpu/remu/curated"
	"github.com/softcpu/remu/expression"
	"github.com/softcpu/remu/monitor/terminal"
)

// the number of watchpoints that can be active at once. a fixed pool means a
// watchpoint identity is stable and small enough to type.
const watchpointCapacity = 32

type watchpoint struct {
	expr string

	// the value of expr when the watchpoint was created or when it last
	// fired, whichever is more recent
	value uint32
}

// watchpoints is the pool of active watchpoints. identities are indices into
// the slots array. a deleted identity returns to the free list and is the
// first to be handed out by the next create, so identities are reused, most
// recently deleted first.
type watchpoints struct {
	mon   *Monitor
	slots [watchpointCapacity]watchpoint

	// free identities. allocation pops from the end: a fresh pool hands out
	// identities in ascending order and a deleted identity is the next to
	// be reused.
	free []int

	// active identities in order of creation. listing and rechecking both
	// walk this slice.
	order []int
}

// watchHit describes one watchpoint transition observed by recheck().
type watchHit struct {
	id       int
	expr     string
	old, new uint32
}

func newWatchpoints(mon *Monitor) *watchpoints {
	wpt := &watchpoints{mon: mon}
	for i := watchpointCapacity - 1; i >= 0; i-- {
		wpt.free = append(wpt.free, i)
	}
	return wpt
}

// create evaluates expr against the current machine state and, if evaluation
// succeeds, activates a watchpoint over it. the expression is evaluated
// before any identity is claimed, so a bad expression never costs a slot.
func (wpt *watchpoints) create(expr string) (int, error) {
	val, err := expression.Evaluate(wpt.mon.mach, expr)
	if err != nil {
		return -1, err
	}

	if len(wpt.free) == 0 {
		return -1, curated.Errorf(AllocationExhausted, watchpointCapacity)
	}

	id := wpt.free[len(wpt.free)-1]
	wpt.free = wpt.free[:len(wpt.free)-1]
	wpt.slots[id] = watchpoint{expr: expr, value: val}
	wpt.order = append(wpt.order, id)

	return id, nil
}

// delete deactivates the watchpoint with the given identity. the identity is
// immediately available for reuse.
func (wpt *watchpoints) delete(id int) error {
	for i, o := range wpt.order {
		if o == id {
			wpt.order = append(wpt.order[:i], wpt.order[i+1:]...)
			wpt.slots[id] = watchpoint{}
			wpt.free = append(wpt.free, id)
			return nil
		}
	}
	return curated.Errorf(LookupError, id)
}

// list prints the active watchpoints in creation order.
func (wpt *watchpoints) list() {
	if len(wpt.order) == 0 {
		wpt.mon.printLine(terminal.StyleFeedback, "no watchpoints")
		return
	}
	for _, id := range wpt.order {
		wpt.mon.printLine(terminal.StyleFeedback, "% 2d: %s = %d",
			id, wpt.slots[id].expr, wpt.slots[id].value)
	}
}

// recheck re-evaluates every active watchpoint against the current machine
// state. a watchpoint whose value has changed is recorded as a hit and its
// stored value updated. an expression that no longer evaluates, because a
// register value has pushed a dereference out of the address space for
// example, is reported but leaves the watchpoint active and its stored value
// untouched.
func (wpt *watchpoints) recheck() []watchHit {
	var hits []watchHit

	for _, id := range wpt.order {
		val, err := expression.Evaluate(wpt.mon.mach, wpt.slots[id].expr)
		if err != nil {
			wpt.mon.printLine(terminal.StyleError, "watchpoint %d: %v", id, err)
			continue
		}
		if val != wpt.slots[id].value {
			hits = append(hits, watchHit{
				id:   id,
				expr: wpt.slots[id].expr,
				old:  wpt.slots[id].value,
				new:  val,
			})
			wpt.slots[id].value = val
		}
	}

	return hits
}
