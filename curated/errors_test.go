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

package curated_test

import (
	"errors"
	"testing"

	"github.com/softcpu/remu/curated"
	"github.com/softcpu/remu/test"
)

const testError = "test error: %s"

func TestDuplicateNormalisation(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same pattern next to each other causes one of
	// them to be dropped from the message
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectSuccess(t, curated.Has(e, testError))

	// a wrapped error no longer matches with Is() but does with Has()
	f := curated.Errorf("fatal: %v", e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testError))

	// errors from other sources are never curated
	g := errors.New("uncurated")
	test.ExpectFailure(t, curated.IsAny(g))
	test.ExpectFailure(t, curated.Is(g, "uncurated"))
	test.ExpectFailure(t, curated.Has(g, "uncurated"))

	// nil is not an error at all
	test.ExpectFailure(t, curated.IsAny(nil))
}
