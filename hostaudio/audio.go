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

//go:build !headless

package hostaudio

import (
	"github.com/ebitengine/oto/v3"
	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/hardware/sid"
	"github.com/technic0/Ready/logger"
)

// Audio plays SID batches on the host's audio device.
type Audio struct {
	rate   int
	ctx    *oto.Context
	player *oto.Player
	q      *queue
}

// the amount of audio that can be queued, in seconds
const queueSeconds = 0.25

// NewAudio is the preferred method of initialisation for the Audio type. The
// sample rate must match the rate of the batches sent to NewBatch().
func NewAudio(rate int) (*Audio, error) {
	if rate <= 0 {
		return nil, curated.Errorf("hostaudio: invalid sample rate (%d)", rate)
	}

	op := &oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf("hostaudio: %v", err)
	}
	<-ready

	aud := &Audio{
		rate: rate,
		ctx:  ctx,
		q:    newQueue(int(float64(rate)*queueSeconds) * 2),
	}
	aud.player = ctx.NewPlayer(aud.q)
	aud.player.Play()

	logger.Logf(logger.Allow, "hostaudio", "playing at %dHz", rate)

	return aud, nil
}

// NewBatch queues the batch for playing. Batches at a different sample rate
// to the one given to NewAudio() are rejected.
func (aud *Audio) NewBatch(b sid.Batch) error {
	if b.Rate != aud.rate {
		return curated.Errorf("hostaudio: sample rate changed (%d to %d)", aud.rate, b.Rate)
	}
	aud.q.push(b)
	return nil
}

// Mute pauses or resumes the audio device.
func (aud *Audio) Mute(mute bool) error {
	var err error
	if mute {
		err = aud.ctx.Suspend()
	} else {
		err = aud.ctx.Resume()
	}
	if err != nil {
		return curated.Errorf("hostaudio: %v", err)
	}
	return nil
}

// End playback. The Audio instance can not be used again.
func (aud *Audio) End() error {
	aud.q.crit.Lock()
	dropped, underflow := aud.q.dropped, aud.q.underflow
	aud.q.crit.Unlock()

	logger.Logf(logger.Allow, "hostaudio", "ended: %d samples dropped, %d bytes of silence", dropped, underflow)

	if err := aud.player.Close(); err != nil {
		return curated.Errorf("hostaudio: %v", err)
	}
	return nil
}
