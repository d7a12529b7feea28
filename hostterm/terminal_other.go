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

//go:build !(linux || darwin)

package hostterm

import (
	"os"
	"time"

	"github.com/technic0/Ready/curated"
)

// Terminal is not supported on this platform.
type Terminal struct{}

// Open always fails on this platform.
func Open(_ *os.File) (*Terminal, error) {
	return nil, curated.Errorf("hostterm: not supported on this platform")
}

// Restore does nothing on this platform.
func (t *Terminal) Restore() error {
	return nil
}

// Size does nothing on this platform.
func (t *Terminal) Size() (int, int, error) {
	return 0, 0, nil
}

// Read does nothing on this platform.
func (t *Terminal) Read(_ time.Duration) ([]byte, error) {
	return nil, nil
}
