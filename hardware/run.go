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

package hardware

import (
	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/govern"
	"github.com/technic0/Ready/logger"
)

// FrameBudget returns the number of cycles in a frame.
func (m *Machine) FrameBudget() int {
	return m.spec.CyclesPerFrame()
}

// RunFrame runs the emulation until the frame budget is used up. The last
// instruction of the frame will usually run past the budget and the excess is
// taken from the budget of the next frame. If the machine has been stepped
// part way through a frame then only the remainder of the frame is run.
//
// An error pauses the machine.
func (m *Machine) RunFrame() error {
	m.frameDone = false
	for !m.frameDone {
		if _, err := m.Step(); err != nil {
			m.halt(err)
			return err
		}
	}
	return nil
}

func (m *Machine) halt(err error) {
	m.paused.Store(true)
	m.pausedOnError.Store(true)
	logger.Logf(m.env, "machine", "paused: %v", err)
}

// Run sets the emulation running as quickly as possible, one frame at a time.
// The continueCheck function is called after every frame and decides what
// happens next. The function is also responsible for pacing the emulation
// and for not spinning while the machine is paused. A nil continueCheck runs
// the machine until Stop() is called.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	defer m.stop.Store(false)

	var err error

	state := govern.Running

	for state != govern.Ending {
		if m.stop.Load() {
			return nil
		}

		switch state {
		case govern.Running:
			if !m.paused.Load() {
				if err := m.RunFrame(); err != nil {
					return err
				}
			}
		case govern.Paused:
		default:
			return curated.Errorf("machine: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the emulation for the specified number of frames.
// Useful for digests and performance measurement. The continueCheck function
// can be nil.
func (m *Machine) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	for frame := range numFrames {
		if err := m.RunFrame(); err != nil {
			return err
		}
		if continueCheck != nil {
			state, err := continueCheck(frame)
			if err != nil {
				return err
			}
			if state == govern.Ending {
				return nil
			}
		}
	}
	return nil
}

// Stop the emulation started with Run(). The machine stops at the end of the
// current frame. Safe to call from any goroutine.
func (m *Machine) Stop() {
	m.stop.Store(true)
}

// Pause the emulation. Takes effect at the end of the current frame.
func (m *Machine) Pause() {
	m.paused.Store(true)
	m.pausedOnError.Store(false)
	logger.Log(m.env, "machine", "paused")
}

// Resume the emulation after a call to Pause() or after an error.
func (m *Machine) Resume() {
	m.paused.Store(false)
	m.pausedOnError.Store(false)
	logger.Log(m.env, "machine", "resumed")
}

// EmulationState returns the current state of the emulation as seen by
// Run().
func (m *Machine) EmulationState() govern.State {
	if m.paused.Load() {
		return govern.Paused
	}
	return govern.Running
}

// EmulationSubState qualifies the result of EmulationState(). A machine
// paused by an error is PausedOnError.
func (m *Machine) EmulationSubState() govern.SubState {
	if m.paused.Load() && m.pausedOnError.Load() {
		return govern.PausedOnError
	}
	return govern.Normal
}
