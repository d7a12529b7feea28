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

package sid

import (
	"fmt"

	"github.com/technic0/Ready/environment"
	"github.com/technic0/Ready/hardware/preferences"
	"github.com/technic0/Ready/hardware/specification"
	"github.com/technic0/Ready/logger"
)

// Model is the chip revision of the SID.
type Model int

// List of valid Model values.
const (
	MOS6581 Model = iota
	MOS8580
)

func (m Model) String() string {
	switch m {
	case MOS6581:
		return preferences.SID6581
	case MOS8580:
		return preferences.SID8580
	}
	return "unknown"
}

// default values when the SID is created without an environment
const (
	defaultModel      = MOS6581
	defaultSampleRate = 44100
)

// SID represents the sound chip.
type SID struct {
	env  *environment.Environment
	spec specification.Spec

	model      Model
	filterOn   bool
	sampleRate int

	voices [3]voice
	filter filter

	// filter and volume registers
	cutoff   uint16
	resFilt  uint8
	modeVol  uint8
	lastBus  uint8
	potX     uint8
	potY     uint8
	paddles  bool
	sampleAc int

	// voice output accumulated since the last sample
	sums  [3]int64
	count int64

	buf []int16
}

// NewSID is the preferred method of initialisation for the SID type.
func NewSID(env *environment.Environment, spec specification.Spec) *SID {
	sid := &SID{
		env:  env,
		spec: spec,
	}
	sid.Reset()
	return sid
}

// Label implements the memory.IODevice interface.
func (sid *SID) Label() string {
	return fmt.Sprintf("SID (%s)", sid.model)
}

func (sid *SID) String() string {
	return fmt.Sprintf("v1: %s  v2: %s  v3: %s  fc=%03x res=%x filt=%x mode=%x vol=%x",
		&sid.voices[0], &sid.voices[1], &sid.voices[2],
		sid.cutoff, sid.resFilt>>4, sid.resFilt&0x0f, sid.modeVol>>4, sid.modeVol&0x0f)
}

// Model returns the chip revision being emulated.
func (sid *SID) Model() Model {
	return sid.model
}

// SampleRate returns the output sample rate in Hz.
func (sid *SID) SampleRate() int {
	return sid.sampleRate
}

// Reset the SID. Preferences for the model, the filter and the sample rate are
// read from the environment.
func (sid *SID) Reset() {
	sid.model = defaultModel
	sid.filterOn = true
	sid.sampleRate = defaultSampleRate

	if sid.env != nil && sid.env.Prefs != nil {
		if sid.env.Prefs.SIDModel.Get().(string) == preferences.SID8580 {
			sid.model = MOS8580
		}
		sid.filterOn = sid.env.Prefs.SIDFilter.Get().(bool)
		sid.sampleRate = sid.env.Prefs.SampleRate.Get().(int)
	}

	for i := range sid.voices {
		sid.voices[i].reset()
	}
	sid.filter = filter{}
	sid.cutoff = 0
	sid.resFilt = 0
	sid.modeVol = 0
	sid.lastBus = 0
	sid.potX = 0xff
	sid.potY = 0xff
	sid.sampleAc = 0
	clear(sid.sums[:])
	sid.count = 0
	sid.buf = sid.buf[:0]
	sid.filter.update(sid.model, sid.cutoff, sid.resFilt, sid.sampleRate)

	logger.Logf(sid.env, "sid", "reset: model %s, filter %v, %dHz", sid.model, sid.filterOn, sid.sampleRate)
}

// SetModel changes the chip revision. The change takes effect immediately.
func (sid *SID) SetModel(model Model) {
	sid.model = model
	sid.filter.update(sid.model, sid.cutoff, sid.resFilt, sid.sampleRate)
}

// SetPaddles sets the value read from the POTX and POTY registers.
func (sid *SID) SetPaddles(x, y uint8) {
	sid.potX = x
	sid.potY = y
}

// Advance the SID by the number of cycles.
func (sid *SID) Advance(cycles int) {
	for range cycles {
		sid.Step()
	}
}

// Step the SID by one cycle.
func (sid *SID) Step() {
	for i := range sid.voices {
		sid.voices[i].clockOscillator()
	}

	// hard sync. the sync source for a voice is the previous voice
	for i := range sid.voices {
		src := &sid.voices[(i+2)%3]
		if sid.voices[i].sync() && src.msbRising {
			sid.voices[i].acc = 0
		}
	}

	for i := range sid.voices {
		sid.voices[i].env.clock()
		sid.sums[i] += int64(sid.voices[i].output(&sid.voices[(i+2)%3], sid.model))
	}
	sid.count++

	sid.sampleAc += sid.sampleRate
	if sid.sampleAc >= sid.spec.ClockHz {
		sid.sampleAc -= sid.spec.ClockHz
		sid.buf = append(sid.buf, sid.sample())
	}
}

// the largest possible value of the sum of three voices
const fullScale = 3 * 0x800 * 0xff

// produce one sample from the accumulated voice output
func (sid *SID) sample() int16 {
	var direct, filtered float64

	for i := range sid.voices {
		v := float64(sid.sums[i]) / float64(sid.count)
		sid.sums[i] = 0

		routed := sid.resFilt&(1<<i) != 0
		if routed && sid.filterOn {
			filtered += v
			continue
		}

		// voice 3 off only applies when voice 3 is not routed through the filter
		if i == 2 && sid.modeVol&mode3Off != 0 && !routed {
			continue
		}
		direct += v
	}
	sid.count = 0

	out := direct
	if sid.filterOn {
		out += sid.filter.clock(filtered, sid.modeVol)
	}

	vol := float64(sid.modeVol & volumeMsk)
	out = out * vol / 15.0

	// the 6581 has a DC offset on the output which makes changes to the
	// volume register audible
	if sid.model == MOS6581 {
		out += dcOffset6581 * vol / 15.0
	}

	out = out * 32767.0 / fullScale
	switch {
	case out > 32767:
		return 32767
	case out < -32768:
		return -32768
	}
	return int16(out)
}

// the DC offset of the 6581, as a proportion of full scale
const dcOffset6581 = fullScale * 0.38 / 3

// Drain returns all samples produced since the previous call to Drain().
func (sid *SID) Drain() Batch {
	b := Batch{
		Rate:    sid.sampleRate,
		Samples: sid.buf,
	}
	sid.buf = make([]int16, 0, cap(sid.buf))
	return b
}
