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

import "github.com/technic0/Ready/faults"

// VoiceState is the state of one voice and its envelope.
type VoiceState struct {
	Freq      uint16
	PW        uint16
	Control   uint8
	Acc       uint32
	MSBRising bool
	Noise     uint32

	AttackDecay    uint8
	SustainRelease uint8
	EnvState       int
	Gated          bool
	Counter        uint8
	Rate           uint16
	Exp            uint8
}

// State is the complete state of the SID. Samples that have not been drained
// are not part of the state.
type State struct {
	Model      int
	FilterOn   bool
	SampleRate int

	Voices [3]VoiceState

	FilterLow  float64
	FilterBand float64

	Cutoff   uint16
	ResFilt  uint8
	ModeVol  uint8
	LastBus  uint8
	PotX     uint8
	PotY     uint8
	SampleAc int

	Sums  [3]int64
	Count int64
}

// State returns the current state of the SID.
func (sid *SID) State() State {
	s := State{
		Model:      int(sid.model),
		FilterOn:   sid.filterOn,
		SampleRate: sid.sampleRate,
		FilterLow:  sid.filter.low,
		FilterBand: sid.filter.band,
		Cutoff:     sid.cutoff,
		ResFilt:    sid.resFilt,
		ModeVol:    sid.modeVol,
		LastBus:    sid.lastBus,
		PotX:       sid.potX,
		PotY:       sid.potY,
		SampleAc:   sid.sampleAc,
		Sums:       sid.sums,
		Count:      sid.count,
	}
	for i, v := range sid.voices {
		s.Voices[i] = VoiceState{
			Freq:           v.freq,
			PW:             v.pw,
			Control:        v.control,
			Acc:            v.acc,
			MSBRising:      v.msbRising,
			Noise:          v.noise,
			AttackDecay:    v.env.attackDecay,
			SustainRelease: v.env.sustainRelease,
			EnvState:       int(v.env.state),
			Gated:          v.env.gated,
			Counter:        v.env.counter,
			Rate:           v.env.rate,
			Exp:            v.env.exp,
		}
	}
	return s
}

// CheckState returns an error if the state cannot be applied to the SID.
func (sid *SID) CheckState(s State) error {
	if s.Model != int(MOS6581) && s.Model != int(MOS8580) {
		return faults.Errorf(faults.SnapshotError, faults.CorruptSnapshot, "sid: unknown model")
	}
	if s.SampleRate <= 0 || s.SampleAc < 0 || s.SampleAc >= sid.spec.ClockHz {
		return faults.Errorf(faults.SnapshotError, faults.CorruptSnapshot, "sid: sample clock out of range")
	}
	for _, v := range s.Voices {
		if v.EnvState < int(attack) || v.EnvState > int(release) {
			return faults.Errorf(faults.SnapshotError, faults.CorruptSnapshot, "sid: envelope state out of range")
		}
	}
	return nil
}

// SetState applies the state to the SID. Any undrained samples are discarded.
func (sid *SID) SetState(s State) error {
	if err := sid.CheckState(s); err != nil {
		return err
	}

	sid.model = Model(s.Model)
	sid.filterOn = s.FilterOn
	sid.sampleRate = s.SampleRate
	sid.cutoff = s.Cutoff
	sid.resFilt = s.ResFilt
	sid.modeVol = s.ModeVol
	sid.lastBus = s.LastBus
	sid.potX = s.PotX
	sid.potY = s.PotY
	sid.sampleAc = s.SampleAc
	sid.sums = s.Sums
	sid.count = s.Count

	for i, v := range s.Voices {
		sid.voices[i] = voice{
			freq:      v.Freq,
			pw:        v.PW,
			control:   v.Control,
			acc:       v.Acc,
			msbRising: v.MSBRising,
			noise:     v.Noise,
			env: envelope{
				attackDecay:    v.AttackDecay,
				sustainRelease: v.SustainRelease,
				state:          envelopeState(v.EnvState),
				gated:          v.Gated,
				counter:        v.Counter,
				rate:           v.Rate,
				exp:            v.Exp,
			},
		}
	}

	sid.filter.update(sid.model, sid.cutoff, sid.resFilt, sid.sampleRate)
	sid.filter.low = s.FilterLow
	sid.filter.band = s.FilterBand
	sid.buf = sid.buf[:0]

	return nil
}
