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

package main

import (
	"testing"

	"github.com/technic0/Ready/hardware/vic"
	"github.com/technic0/Ready/test"
)

func TestParseBorder(t *testing.T) {
	b, err := parseBorder("full")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, vic.FullBorder)

	b, err = parseBorder("Reduced")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, vic.ReducedBorder)

	b, err = parseBorder("NONE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, vic.NoBorder)

	_, err = parseBorder("thin")
	test.ExpectFailure(t, err)
}
