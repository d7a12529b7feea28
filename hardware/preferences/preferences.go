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

// Package preferences collates the preference values of the emulated
// hardware.
package preferences

import (
	"fmt"
	"strings"

	"github.com/technic0/Ready/paths"
	"github.com/technic0/Ready/prefs"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences"

// SID models accepted by the SIDModel preference.
const (
	SID6581 = "6581"
	SID8580 = "8580"
)

// Preferences defines and collates all the preference values used by the
// hardware package.
type Preferences struct {
	dsk *prefs.Disk

	// the television specification. PAL or NTSC
	TVSpec prefs.String

	// chip model of the SID and whether to apply the filter
	SIDModel  prefs.String
	SIDFilter prefs.Bool

	// output sample rate of the SID in Hz
	SampleRate prefs.Int

	// whether a 1541 is attached to the serial bus as device 8
	DriveAttached prefs.Bool

	// directory containing ROM images. an empty string means the roms
	// directory in the resource path
	ROMDir prefs.String

	// rewind snapshot frequency (in frames) and the maximum number of
	// snapshots kept
	RewindFrequency prefs.Int
	RewindDepth     prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Preferences are loaded from the file in the resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but with an explicit path to
// the preferences file. The file does not need to exist.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("tv.spec", &p.TVSpec); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sid.model", &p.SIDModel); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sid.filter", &p.SIDFilter); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sid.samplerate", &p.SampleRate); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("drive.attached", &p.DriveAttached); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("roms.dir", &p.ROMDir); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("rewind.frequency", &p.RewindFrequency); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("rewind.depth", &p.RewindDepth); err != nil {
		return nil, err
	}

	p.TVSpec.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case "PAL", "NTSC":
			return nil
		}
		return fmt.Errorf("preferences: unknown tv spec %q", v)
	})

	p.SIDModel.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case SID6581, SID8580:
			return nil
		}
		return fmt.Errorf("preferences: unknown SID model %q", v)
	})

	p.SampleRate.SetHookPre(func(v prefs.Value) error {
		if r := v.(int); r < 8000 || r > 192000 {
			return fmt.Errorf("preferences: unsupported sample rate %d", r)
		}
		return nil
	})

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.TVSpec.Set("PAL")
	_ = p.SIDModel.Set(SID6581)
	_ = p.SIDFilter.Set(true)
	_ = p.SampleRate.Set(44100)
	_ = p.DriveAttached.Set(false)
	_ = p.ROMDir.Set("")
	_ = p.RewindFrequency.Set(5)
	_ = p.RewindDepth.Set(50)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
