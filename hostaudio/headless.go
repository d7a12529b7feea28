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

//go:build headless

package hostaudio

import (
	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/hardware/sid"
)

// Audio is not available in headless builds.
type Audio struct{}

// NewAudio always fails in headless builds.
func NewAudio(_ int) (*Audio, error) {
	return nil, curated.Errorf("hostaudio: not available in headless build")
}

// NewBatch does nothing in headless builds.
func (aud *Audio) NewBatch(_ sid.Batch) error {
	return nil
}

// Mute does nothing in headless builds.
func (aud *Audio) Mute(_ bool) error {
	return nil
}

// End does nothing in headless builds.
func (aud *Audio) End() error {
	return nil
}
