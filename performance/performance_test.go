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

package performance_test

import (
	"os"
	"strings"
	"testing"

	"github.com/technic0/Ready/hardware/hardwaretest"
	"github.com/technic0/Ready/hardware/specification"
	"github.com/technic0/Ready/performance"
	"github.com/technic0/Ready/test"
)

func TestCalcFPS(t *testing.T) {
	spec := specification.SpecPAL

	fps, accuracy := performance.CalcFPS(spec, 100, 2)
	test.ExpectEquality(t, fps, 50.0)
	test.ExpectApproximate(t, accuracy, 100*50/spec.RefreshRate(), 0.0001)

	fps, accuracy = performance.CalcFPS(spec, 100, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu,trace")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "cpu,trace")

	p, err = performance.ParseProfile("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "none")

	_, err = performance.ParseProfile("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("performance check takes longer than two seconds")
	}

	m := hardwaretest.NewMachine(t, false)

	// profiles are written to the working directory
	t.Chdir(t.TempDir())

	var out strings.Builder
	test.DemandSuccess(t, performance.Check(&out, performance.ProfileMem, m, false, "200ms"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "fps"))

	_, err := os.Stat("performance_mem.profile")
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, performance.Check(&out, performance.ProfileNone, m, true, "soon"))
}
