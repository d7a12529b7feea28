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

package environment_test

import (
	"path/filepath"
	"testing"

	"github.com/technic0/Ready/environment"
	"github.com/technic0/Ready/hardware/preferences"
	"github.com/technic0/Ready/logger"
	"github.com/technic0/Ready/test"
)

func TestPermission(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	main, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, main.IsMainEmulation())
	test.DemandImplements[logger.Permission](t, main)
	test.ExpectSuccess(t, main.AllowLogging())

	rewind, err := environment.NewEnvironment("rewind", p)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, rewind.IsMainEmulation())
	test.ExpectSuccess(t, rewind.IsEmulation("rewind"))
	test.ExpectFailure(t, rewind.AllowLogging())

	// preferences are shared
	test.ExpectSuccess(t, p.TVSpec.Set("NTSC"))
	test.ExpectEquality(t, rewind.Prefs.TVSpec.String(), "NTSC")
}
