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

// Register addresses. Each voice has seven registers, starting at
// VoiceBase(n).
const (
	FreqLo = iota
	FreqHi
	PWLo
	PWHi
	Control
	AttackDecay
	SustainRelease
)

// Registers shared by the three voices.
const (
	FCLo    = 0x15
	FCHi    = 0x16
	ResFilt = 0x17
	ModeVol = 0x18
	PotX    = 0x19
	PotY    = 0x1a
	Osc3    = 0x1b
	Env3    = 0x1c
)

// VoiceBase returns the address of the first register for the voice. Voices
// are numbered from zero.
func VoiceBase(n int) uint8 {
	return uint8(n * 7)
}

// ReadRegister implements the memory.IODevice interface.
func (sid *SID) ReadRegister(reg uint8) uint8 {
	return sid.PeekRegister(reg)
}

// PeekRegister implements the memory.IODevice interface. Reading the SID has
// no side effects so ReadRegister() and PeekRegister() are the same.
func (sid *SID) PeekRegister(reg uint8) uint8 {
	switch reg & 0x1f {
	case PotX:
		return sid.potX
	case PotY:
		return sid.potY
	case Osc3:
		return uint8(sid.voices[2].waveform(&sid.voices[1], sid.model) >> 4)
	case Env3:
		return sid.voices[2].env.counter
	}

	// write only registers read back the last value written to the chip
	return sid.lastBus
}

// WriteRegister implements the memory.IODevice interface.
func (sid *SID) WriteRegister(reg uint8, data uint8) {
	reg &= 0x1f
	sid.lastBus = data

	if reg < FCLo {
		v := &sid.voices[reg/7]
		switch reg % 7 {
		case FreqLo:
			v.freq = v.freq&0xff00 | uint16(data)
		case FreqHi:
			v.freq = v.freq&0x00ff | uint16(data)<<8
		case PWLo:
			v.pw = v.pw&0x0f00 | uint16(data)
		case PWHi:
			v.pw = v.pw&0x00ff | uint16(data&0x0f)<<8
		case Control:
			v.writeControl(data)
		case AttackDecay:
			v.env.attackDecay = data
		case SustainRelease:
			v.env.sustainRelease = data
		}
		return
	}

	switch reg {
	case FCLo:
		sid.cutoff = sid.cutoff&0x7f8 | uint16(data&0x07)
	case FCHi:
		sid.cutoff = sid.cutoff&0x007 | uint16(data)<<3
	case ResFilt:
		sid.resFilt = data
	case ModeVol:
		sid.modeVol = data
	default:
		return
	}

	sid.filter.update(sid.model, sid.cutoff, sid.resFilt, sid.sampleRate)
}
