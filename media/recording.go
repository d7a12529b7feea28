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

package media

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/technic0/Ready/hardware/clocks"
)

// DecodeWAV converts a WAV recording of a tape into pulses. Only the first
// channel of the recording is used.
func DecodeWAV(name string, r io.ReadSeeker) (*Tape, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return nil, malformed(name, "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("media: wav: %w", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	chans := max(int(dec.NumChans), 1)
	data := make([]float32, 0, len(floatBuf.Data)/chans)
	for i := 0; i < len(floatBuf.Data); i += chans {
		data = append(data, floatBuf.Data[i])
	}

	return recording(name, data, int(dec.SampleRate))
}

// DecodeMP3 converts an MP3 recording of a tape into pulses. Only the left
// channel of the recording is used.
func DecodeMP3(name string, r io.Reader) (*Tape, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("media: mp3: %w", err)
	}

	var data []float32

	// the stream is always 16bit little endian stereo. four bytes per sample
	chunk := make([]byte, 4096)
	for err != io.EOF {
		var n int
		n, err = dec.Read(chunk)
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("media: mp3: %w", err)
		}
		for i := 0; i+1 < n; i += 4 {
			data = append(data, float32(int16(uint16(chunk[i])|uint16(chunk[i+1])<<8)))
		}
	}

	return recording(name, data, dec.SampleRate())
}

// hysteresis of the edge detector as a fraction of the peak amplitude
const edgeThreshold = 0.125

// recording measures the distance between falling edges in the sampled
// signal. pulse lengths are in PAL cycles, which is the clock TAP images are
// measured against
func recording(name string, data []float32, rate int) (*Tape, error) {
	if rate <= 0 || len(data) == 0 {
		return nil, malformed(name, "recording is empty")
	}

	var peak float64
	for _, s := range data {
		peak = max(peak, math.Abs(float64(s)))
	}
	if peak == 0 {
		return nil, malformed(name, "recording is silent")
	}
	thresh := float32(peak * edgeThreshold)

	t := &Tape{
		name:    name,
		Version: 1,
	}

	high := data[0] >= 0
	last := -1
	for i, s := range data {
		if high && s < -thresh {
			high = false
			if last >= 0 {
				p := uint64(i-last) * clocks.PAL / uint64(rate)
				t.Pulses = append(t.Pulses, uint32(p))
			}
			last = i
		} else if !high && s > thresh {
			high = true
		}
	}

	if len(t.Pulses) == 0 {
		return nil, malformed(name, "no pulses in recording")
	}

	return t, nil
}
