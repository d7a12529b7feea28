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

package specification_test

import (
	"testing"

	"github.com/technic0/Ready/hardware/specification"
	"github.com/technic0/Ready/test"
)

func TestGeometry(t *testing.T) {
	test.ExpectEquality(t, specification.SpecPAL.CyclesPerFrame(), 19656)
	test.ExpectEquality(t, specification.SpecNTSC.CyclesPerFrame(), 17095)
	test.ExpectApproximate(t, specification.SpecPAL.RefreshRate(), 50.12, 0.001)
	test.ExpectApproximate(t, specification.SpecNTSC.RefreshRate(), 59.83, 0.001)
	test.ExpectEquality(t, specification.SpecPAL.VisibleWidth(), 384)
	test.ExpectEquality(t, specification.SpecPAL.VisibleHeight(), 272)
	test.ExpectEquality(t, specification.SpecNTSC.VisibleHeight(), 235)
}

func TestSearch(t *testing.T) {
	s, err := specification.SearchSpec("ntsc")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.ID, "NTSC")

	_, err = specification.SearchSpec("SECAM")
	test.ExpectFailure(t, err)
}
