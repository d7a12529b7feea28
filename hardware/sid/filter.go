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

import "math"

// bits of the mode/volume register
const (
	modeLP    = 0x10
	modeBP    = 0x20
	modeHP    = 0x40
	mode3Off  = 0x80
	volumeMsk = 0x0f
)

// resonance of each model as a Q value for each of the 16 register values.
// the 6581 resonance rises steeply towards self-oscillation
var resonance = [2][16]float64{
	MOS6581: {
		0.50, 0.55, 0.62, 0.72, 0.85, 1.00, 1.20, 1.50,
		1.90, 2.40, 3.00, 3.80, 4.80, 6.00, 8.00, 12.0,
	},
	MOS8580: {
		0.50, 0.60, 0.70, 0.82, 0.95, 1.10, 1.30, 1.50,
		1.75, 2.00, 2.30, 2.65, 3.00, 3.50, 4.20, 5.00,
	},
}

// cutoffHz returns the cutoff frequency for the 11 bit cutoff value. the 8580
// curve is close to linear and the 6581 curve is compressed at the low end
func cutoffHz(model Model, fc uint16) float64 {
	if fc == 0 {
		return 30
	}

	var hz, limit float64
	if model == MOS8580 {
		hz = 30 + float64(fc)*5.8
		limit = 18000
	} else {
		hz = 30 + math.Pow(float64(fc), 1.35)*0.22
		limit = 12000
	}
	return min(hz, limit)
}

// filter is a state variable filter clocked once per output sample
type filter struct {
	// coefficients
	f float64
	q float64

	low  float64
	band float64
}

func (flt *filter) update(model Model, fc uint16, resFilt uint8, sampleRate int) {
	hz := cutoffHz(model, fc)

	// the state variable filter is only stable up to about one sixth of the
	// sample rate
	hz = min(hz, float64(sampleRate)/6)

	flt.f = 2 * math.Sin(math.Pi*hz/float64(sampleRate))
	flt.q = 1 / resonance[model][resFilt>>4]
}

// clock the filter with the input and return the output for the filter modes
// selected in the mode register
func (flt *filter) clock(in float64, modeVol uint8) float64 {
	high := in - flt.low - flt.q*flt.band
	flt.band += flt.f * high
	flt.low += flt.f * flt.band

	// limit the internal state to keep high resonance settings bounded
	const limit = fullScale * 4
	flt.band = max(-limit, min(limit, flt.band))
	flt.low = max(-limit, min(limit, flt.low))

	var out float64
	if modeVol&modeLP != 0 {
		out += flt.low
	}
	if modeVol&modeBP != 0 {
		out += flt.band
	}
	if modeVol&modeHP != 0 {
		out += high
	}
	return out
}
