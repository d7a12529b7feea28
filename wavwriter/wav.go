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

// Package wavwriter allows writing of the SID output to disk as a WAV file.
// Samples are written to disk as they arrive so a recording can be of any
// length.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/hardware/sid"
	"github.com/technic0/Ready/logger"
)

// WavWriter records batches of SID samples as a mono 16 bit WAV file.
type WavWriter struct {
	filename string
	f        *os.File
	enc      *wav.Encoder

	// sample rate of the file. taken from the first batch
	rate int

	// reused for every batch
	buf audio.IntBuffer

	samples int
}

// New is the preferred method of initialisation for the WavWriter type. The
// file is created immediately but the header is not complete until End() is
// called.
func New(filename string) (*WavWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}

	aw := &WavWriter{
		filename: filename,
		f:        f,
	}

	return aw, nil
}

// NewBatch adds the samples in the batch to the WAV file. Every batch must
// have the same sample rate.
func (aw *WavWriter) NewBatch(b sid.Batch) error {
	if b.Len() == 0 {
		return nil
	}

	if aw.enc == nil {
		aw.rate = b.Rate
		aw.enc = wav.NewEncoder(aw.f, aw.rate, 16, 1, 1)
		aw.buf.Format = &audio.Format{NumChannels: 1, SampleRate: aw.rate}
		aw.buf.SourceBitDepth = 16
	} else if b.Rate != aw.rate {
		return curated.Errorf("wavwriter: sample rate changed from %d to %d", aw.rate, b.Rate)
	}

	aw.buf.Data = aw.buf.Data[:0]
	for _, s := range b.All() {
		aw.buf.Data = append(aw.buf.Data, int(s))
	}

	if err := aw.enc.Write(&aw.buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	aw.samples += b.Len()

	return nil
}

// Samples returns the number of samples written so far.
func (aw *WavWriter) Samples() int {
	return aw.samples
}

// End the recording. The WAV header is completed and the file is closed. A
// recording with no samples results in an empty file.
func (aw *WavWriter) End() (rerr error) {
	defer func() {
		err := aw.f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	if aw.enc == nil {
		return nil
	}

	if err := aw.enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "%d samples written to %s", aw.samples, aw.filename)

	return nil
}
