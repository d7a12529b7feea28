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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/technic0/Ready/digest"
	"github.com/technic0/Ready/environment"
	"github.com/technic0/Ready/govern"
	"github.com/technic0/Ready/hardware"
	"github.com/technic0/Ready/hardware/cia"
	"github.com/technic0/Ready/hardware/cpu"
	"github.com/technic0/Ready/hardware/input"
	"github.com/technic0/Ready/hardware/peripherals/iec"
	"github.com/technic0/Ready/hardware/peripherals/joystick"
	"github.com/technic0/Ready/hardware/peripherals/keyboard"
	"github.com/technic0/Ready/hardware/preferences"
	"github.com/technic0/Ready/hardware/sid"
	"github.com/technic0/Ready/hardware/vic"
	"github.com/technic0/Ready/hostaudio"
	"github.com/technic0/Ready/hostterm"
	"github.com/technic0/Ready/logger"
	"github.com/technic0/Ready/macro"
	"github.com/technic0/Ready/modalflag"
	"github.com/technic0/Ready/performance"
	"github.com/technic0/Ready/performance/limiter"
	"github.com/technic0/Ready/prefs"
	"github.com/technic0/Ready/recorder"
	"github.com/technic0/Ready/rewind"
	"github.com/technic0/Ready/screenshot"
	"github.com/technic0/Ready/snapshot"
	"github.com/technic0/Ready/statsview"
	"github.com/technic0/Ready/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "INFO", "DIGEST", "PERFORMANCE")
	md.AdditionalHelp("Preferences for a single run are given with the -prefs flag. For example:\n\n\t-prefs \"tv.spec::NTSC; drive.attached::true\"")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "INFO":
		err = info(md)
	case "DIGEST":
		err = digestMode(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// create a new machine with the preferences overridden by the string. the
// string is in the format accepted by prefs.PushCommandLineStack()
func newMachine(override string) (*hardware.Machine, error) {
	if override != "" {
		prefs.PushCommandLineStack(override)
		defer prefs.PopCommandLineStack()
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	if err != nil {
		return nil, err
	}

	return hardware.NewMachine(env, nil)
}

func insertMedia(m *hardware.Machine, files []string) error {
	for _, fn := range files {
		if err := m.InsertFile(fn); err != nil {
			return err
		}
	}
	return nil
}

func parseBorder(s string) (vic.BorderMode, error) {
	for _, b := range []vic.BorderMode{vic.FullBorder, vic.ReducedBorder, vic.NoBorder} {
		if strings.EqualFold(s, b.String()) {
			return b, nil
		}
	}
	return vic.FullBorder, fmt.Errorf("unknown border mode: %s", s)
}

// control characters read from the terminal that are not passed to the
// emulated keyboard
const (
	ctrlPause  = 0x10 // ctrl-P
	ctrlRewind = 0x12 // ctrl-R
	ctrlSwap   = 0x17 // ctrl-W
)

func run(md *modalflag.Modes) error {
	md.NewMode()

	override := md.AddString("prefs", "", "preferences for this run")
	log := md.AddBool("log", false, "echo log to stdout")
	frames := md.AddInt("frames", 0, "number of frames to run (0 runs until interrupted)")
	uncapped := md.AddBool("uncapped", false, "run as quickly as possible")
	audio := md.AddBool("audio", true, "play audio through the host's audio device")
	keys := md.AddBool("keys", true, "type on the C64 keyboard from the terminal")
	wav := md.AddString("wav", "", "record audio to wav file")
	record := md.AddString("record", "", "record input to transcript file")
	playback := md.AddString("playback", "", "play back input from transcript file")
	macroFile := md.AddString("macro", "", "run lua macro")
	load := md.AddString("snapshot", "", "restore snapshot before running")
	save := md.AddString("save", "", "save snapshot on exit")
	shot := md.AddString("screenshot", "", "save final frame to file (png or bmp)")
	border := md.AddString("border", "full", "border in screenshots: full, reduced, none")
	stats := md.AddBool("statsview", false, "launch statsview server")

	md.AdditionalHelp("When reading keys from the terminal, ctrl-P pauses, ctrl-R rewinds\nand ctrl-W swaps the joystick ports.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *record != "" && *playback != "" {
		return fmt.Errorf("cannot record and play back at the same time")
	}

	shotOpts := screenshot.Options{}
	shotOpts.Border, err = parseBorder(*border)
	if err != nil {
		return err
	}

	m, err := newMachine(*override)
	if err != nil {
		return err
	}

	if *load != "" {
		s, err := snapshot.Load(*load)
		if err != nil {
			return err
		}
		if err := snapshot.Restore(m, s); err != nil {
			return err
		}
	}

	if err := insertMedia(m, md.RemainingArgs()); err != nil {
		return err
	}

	if *playback != "" {
		plb, err := recorder.NewPlayback(*playback)
		if err != nil {
			return err
		}
		if err := plb.AttachToMachine(m); err != nil {
			return err
		}
	}

	if *record != "" {
		rec, err := recorder.NewRecorder(*record, m)
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.End(); err != nil {
				logger.Log(logger.Allow, "ready", err)
			}
		}()
	}

	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw, err = wavwriter.New(*wav)
		if err != nil {
			return err
		}
		defer func() {
			if err := aw.End(); err != nil {
				logger.Log(logger.Allow, "ready", err)
			}
		}()
	}

	var aud *hostaudio.Audio
	if *audio && !*uncapped {
		aud, err = hostaudio.NewAudio(m.Env().Prefs.SampleRate.Get().(int))
		if err != nil {
			logger.Logf(logger.Allow, "ready", "no audio: %v", err)
		} else {
			defer aud.End()
		}
	}

	// the first error from an audio callback ends the emulation
	var audioErr error

	var grabber screenshot.Grabber
	m.SetCallbacks(hardware.Callbacks{
		OnFrameReady: func(f *vic.Frame) {
			grabber.NewFrame(f)
			f.Release()
		},
		OnAudioBatchReady: func(b sid.Batch) {
			if aw != nil && audioErr == nil {
				audioErr = aw.NewBatch(b)
			}
			if aud != nil && audioErr == nil {
				audioErr = aud.NewBatch(b)
			}
		},
	})

	rw, err := rewind.NewRewind(m)
	if err != nil {
		return err
	}

	var term *hostterm.Terminal
	if *keys {
		term, err = hostterm.Open(os.Stdin)
		if err != nil {
			logger.Logf(logger.Allow, "ready", "no keyboard: %v", err)
		} else {
			defer term.Restore()
		}
	}
	termKeys := hostterm.NewKeys(hostterm.DefaultHold)

	var lim *limiter.FpsLimiter
	if !*uncapped {
		lim, err = limiter.NewFPSLimiter(m.Spec().RefreshRate())
		if err != nil {
			return err
		}
		defer lim.End()
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Fprintln(md.Output, "statsview not available in this build")
		}
	}

	var mcr atomic.Pointer[macro.Macro]

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-intChan:
			m.Stop()
			if q := mcr.Load(); q != nil {
				q.Quit()
			}
		case <-done:
		}
	}()

	// read the terminal and apply key presses to the machine
	service := func() error {
		if term == nil {
			return nil
		}

		var timeout time.Duration
		if m.EmulationState() == govern.Paused {
			timeout = 50 * time.Millisecond
		}

		b, err := term.Read(timeout)
		if err != nil {
			return err
		}

		var typed []byte
		for _, c := range b {
			switch c {
			case ctrlPause:
				if m.EmulationState() == govern.Paused {
					m.Resume()
				} else {
					m.Pause()
				}
			case ctrlRewind:
				fn, err := rw.Rewind(1)
				if err != nil {
					return err
				}
				logger.Logf(logger.Allow, "ready", "rewound to frame %d", fn)
			case ctrlSwap:
				logger.Logf(logger.Allow, "ready", "joysticks swapped: %v", m.SwapJoysticks())
			default:
				typed = append(typed, c)
			}
		}

		if m.EmulationState() == govern.Paused {
			return nil
		}

		for _, ev := range termKeys.Frame(hostterm.Translate(typed)) {
			if _, err := m.Input.HandleEvent(ev); err != nil {
				return err
			}
		}

		return nil
	}

	var count int
	var driveLED bool

	// called at the end of every frame
	endOfFrame := func() error {
		if audioErr != nil {
			return audioErr
		}
		count++
		if m.Drive != nil && m.Drive.LED() != driveLED {
			driveLED = m.Drive.LED()
			logger.Logf(logger.Allow, "ready", "drive LED: %v", driveLED)
		}
		if err := rw.Check(); err != nil {
			return err
		}
		if err := service(); err != nil {
			return err
		}
		if lim != nil {
			lim.Wait()
		}
		return nil
	}

	if *macroFile != "" {
		q, err := macro.NewMacro(*macroFile, m, macro.Options{
			Grabber:    &grabber,
			OnFrame:    endOfFrame,
			Screenshot: shotOpts,
		})
		if err != nil {
			return err
		}
		mcr.Store(q)
		err = q.Run()
		if err != nil {
			return err
		}
	} else {
		err = m.Run(func() (govern.State, error) {
			state := m.EmulationState()
			if state == govern.Paused {
				if term == nil {
					time.Sleep(50 * time.Millisecond)
				}
				return state, service()
			}
			if err := endOfFrame(); err != nil {
				return govern.Ending, err
			}
			if *frames > 0 && count >= *frames {
				return govern.Ending, nil
			}
			return state, nil
		})
		if err != nil {
			return err
		}
	}

	logger.Logf(logger.Allow, "ready", "ended after %d frames", count)

	if *shot != "" {
		if err := grabber.Save(*shot, shotOpts); err != nil {
			return err
		}
	}

	if *save != "" {
		s, err := snapshot.Capture(m)
		if err != nil {
			return err
		}
		if err := s.Save(*save); err != nil {
			return err
		}
	}

	return nil
}

// the parts of the machine state shown by the memviz option of the INFO
// mode. memory and the video state are not included because of their size
type machineState struct {
	Machine   hardware.State
	CPU       cpu.State
	CIA1      cia.State
	CIA2      cia.State
	Keyboard  keyboard.State
	Joystick1 joystick.State
	Joystick2 joystick.State
	IEC       iec.State
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	override := md.AddString("prefs", "", "preferences for this run")
	viz := md.AddString("memviz", "", "write machine state as a graphviz DOT file")

	md.AdditionalHelp("An optional snapshot file can be given as an argument.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := newMachine(*override)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		s, err := snapshot.Load(md.GetArg(0))
		if err != nil {
			return err
		}
		if err := snapshot.Restore(m, s); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	fmt.Fprintf(md.Output, "%s\n\n", m.Spec())
	fmt.Fprintf(md.Output, "%s\n\n", m.Parts())
	fmt.Fprintf(md.Output, "frame: %d\ncycles: %d\nPC: %#04x\n", m.VIC.FrameNum(), m.Cycles(), m.CPU.PC.Address())
	fmt.Fprintf(md.Output, "tape: counter %d, motor %v\n", m.Datasette.Counter(), m.Datasette.Motor())
	if m.Drive != nil {
		fmt.Fprintf(md.Output, "drive: half-track %d, motor %v, LED %v\n", m.Drive.HalfTrack(), m.Drive.Motor(), m.Drive.LED())
		if err := m.DriveFault(); err != nil {
			fmt.Fprintf(md.Output, "drive fault: %v\n", err)
		}
	}
	fmt.Fprintln(md.Output)
	fmt.Fprintf(md.Output, "%s\n", m.Env().Prefs)

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()

		st := &machineState{
			Machine:   m.State(),
			CPU:       m.CPU.State(),
			CIA1:      m.CIA1.State(),
			CIA2:      m.CIA2.State(),
			Keyboard:  m.Keyboard.State(),
			Joystick1: m.Joysticks[0].State(),
			Joystick2: m.Joysticks[1].State(),
			IEC:       m.IEC.State(),
		}
		memviz.Map(f, st)
	}

	return nil
}

func digestMode(md *modalflag.Modes) error {
	md.NewMode()

	override := md.AddString("prefs", "", "preferences for this run")
	frames := md.AddInt("frames", 60, "number of frames to run")
	playback := md.AddString("playback", "", "play back input from transcript file")
	events := md.AddString("events", "", "input events to apply before running (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := newMachine(*override)
	if err != nil {
		return err
	}

	if err := insertMedia(m, md.RemainingArgs()); err != nil {
		return err
	}

	if *playback != "" {
		plb, err := recorder.NewPlayback(*playback)
		if err != nil {
			return err
		}
		if err := plb.AttachToMachine(m); err != nil {
			return err
		}
	}

	if *events != "" {
		for _, s := range strings.Split(*events, ",") {
			var ev input.Event
			if err := ev.UnmarshalText([]byte(s)); err != nil {
				return err
			}
			if _, err := m.Input.HandleEvent(ev); err != nil {
				return err
			}
		}
	}

	video, audio, err := digest.Run(m, *frames)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "video: %s\naudio: %s\n", video, audio)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	override := md.AddString("prefs", "", "preferences for this run")
	fpsCap := md.AddBool("fpscap", true, "cap FPS to specification")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: cpu, mem, trace (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	m, err := newMachine(*override)
	if err != nil {
		return err
	}

	if err := insertMedia(m, md.RemainingArgs()); err != nil {
		return err
	}

	return performance.Check(md.Output, prf, m, !*fpsCap, *duration)
}
