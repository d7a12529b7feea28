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

package digest_test

import (
	"path/filepath"
	"testing"

	"github.com/technic0/Ready/digest"
	"github.com/technic0/Ready/environment"
	"github.com/technic0/Ready/hardware"
	"github.com/technic0/Ready/hardware/hardwaretest"
	"github.com/technic0/Ready/hardware/input"
	"github.com/technic0/Ready/hardware/peripherals/keyboard"
	"github.com/technic0/Ready/recorder"
	"github.com/technic0/Ready/snapshot"
	"github.com/technic0/Ready/test"
)

// copies the keyboard rows to the border colour and the SID volume register
//
//	1000  LDA #$FF
//	1002  STA $DC02
//	1005  LDA #$00
//	1007  STA $DC00
//	100A  LDA $DC01
//	100D  STA $D020
//	1010  STA $D418
//	1013  JMP $100A
var program = []uint8{
	0xa9, 0xff, 0x8d, 0x02, 0xdc, 0xa9, 0x00, 0x8d, 0x00, 0xdc,
	0xad, 0x01, 0xdc, 0x8d, 0x20, 0xd0, 0x8d, 0x18, 0xd4, 0x4c, 0x0a, 0x10,
}

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	m := hardwaretest.NewMachine(t, false)
	for i, b := range program {
		m.Mem.PokeRAM(0x1000+uint16(i), b)
	}
	m.CPU.PC.Load(0x1000)
	return m
}

func TestDigest(t *testing.T) {
	a := newMachine(t)
	b := newMachine(t)

	va, aa, err := digest.Run(a, 5)
	test.DemandSuccess(t, err)
	vb, ab, err := digest.Run(b, 5)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, va, vb)
	test.ExpectEquality(t, aa, ab)

	// the digests continue to change
	va2, _, err := digest.Run(a, 1)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, va2, va)

	video := digest.NewVideo()
	test.DemandImplements[digest.Digest](t, video)
	test.DemandImplements[digest.Digest](t, digest.NewAudio())
}

func TestDeterminism(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "session.txt")

	a := newMachine(t)
	test.DemandSuccess(t, a.RunFrame())

	snap, err := snapshot.Capture(a)
	test.DemandSuccess(t, err)

	rec, err := recorder.NewRecorder(transcript, a)
	test.DemandSuccess(t, err)

	video := digest.NewVideo()
	audio := digest.NewAudio()
	digest.Attach(a, video, audio)

	for i := range 6 {
		switch i {
		case 1:
			_, err = a.Input.HandleEvent(input.Event{Kind: input.KeyDown, Key: keyboard.A})
			test.DemandSuccess(t, err)
		case 3:
			_, err = a.Input.HandleEvent(input.Event{Kind: input.KeyUp, Key: keyboard.A})
			test.DemandSuccess(t, err)
		}
		test.DemandSuccess(t, a.RunFrame())
	}
	audio.Flush()
	test.DemandSuccess(t, rec.End())

	// a second machine in its own environment replays the session from the
	// snapshot
	env, err := environment.NewEnvironment("determinism", a.Env().Prefs)
	test.DemandSuccess(t, err)
	b, err := hardware.NewMachine(env, hardwaretest.ROMs(t, false))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, snapshot.Restore(b, snap))

	plb, err := recorder.NewPlayback(transcript)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, plb.AttachToMachine(b))

	vb, ab, err := digest.Run(b, 6)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, vb, video.Hash())
	test.ExpectEquality(t, ab, audio.Hash())
	test.ExpectSuccess(t, plb.Ended())

	// without the input the output is different
	c, err := hardware.NewMachine(env, hardwaretest.ROMs(t, false))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, snapshot.Restore(c, snap))

	vc, _, err := digest.Run(c, 6)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, vc, video.Hash())
}
