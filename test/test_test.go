// This file is part of Ready.
//
// Ready is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ready is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ready.  If not, see <https://www.gnu.org/licenses/>.

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/technic0/Ready/test"
)

func TestExpectations(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
	test.ExpectEquality(t, 10, 10)
	test.ExpectInequality(t, "foo", "bar")
	test.ExpectApproximate(t, 102, 100, 0.05)
}

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(6)
	test.DemandSuccess(t, err)

	fmt.Fprint(r, "abc")
	test.ExpectEquality(t, r.String(), "abc")

	fmt.Fprint(r, "def")
	test.ExpectEquality(t, r.String(), "abcdef")

	fmt.Fprint(r, "gh")
	test.ExpectEquality(t, r.String(), "cdefgh")

	fmt.Fprint(r, "ijklmnopq")
	test.ExpectEquality(t, r.String(), "lmnopq")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")
}

func TestCappedWriter(t *testing.T) {
	c, err := test.NewCappedWriter(5)
	test.DemandSuccess(t, err)

	fmt.Fprint(c, "abc")
	fmt.Fprint(c, "defgh")
	test.ExpectEquality(t, c.String(), "abcde")

	c.Reset()
	fmt.Fprint(c, "xy")
	test.ExpectEquality(t, c.String(), "xy")

	_, err = test.NewCappedWriter(0)
	test.ExpectFailure(t, err)
}
