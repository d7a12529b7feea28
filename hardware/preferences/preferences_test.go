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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/technic0/Ready/hardware/preferences"
	"github.com/technic0/Ready/test"
)

func TestDefaultsAndValidation(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.TVSpec.String(), "PAL")
	test.ExpectEquality(t, p.SampleRate.Get().(int), 44100)

	test.ExpectFailure(t, p.TVSpec.Set("SECAM"))
	test.ExpectFailure(t, p.SIDModel.Set("6582"))
	test.ExpectFailure(t, p.SampleRate.Set(100))

	test.ExpectSuccess(t, p.SIDModel.Set(preferences.SID8580))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.SIDModel.String(), preferences.SID8580)
}
