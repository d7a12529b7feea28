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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/technic0/Ready/paths"
	"github.com/technic0/Ready/test"
)

func TestLocalResourcePath(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Mkdir(".ready", 0o700))

	p, err := paths.ResourcePath("roms", "kernal")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(".ready", "roms", "kernal"))

	fi, err := os.Stat(filepath.Join(".ready", "roms"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())
}
