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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/technic0/Ready/govern"
	"github.com/technic0/Ready/hardware"
	"github.com/technic0/Ready/performance/limiter"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the time allowed for the frame rate to settle before measurement begins
const leadTime = 2 * time.Second

// Check the performance of the emulator with the supplied machine. Media
// should already be inserted.
//
// Emulation will run for the specified duration and will create a cpu or
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument.
//
// Unless uncapped is true the emulation is limited to the refresh rate of
// the machine's TV specification.
func Check(output io.Writer, profile Profile, m *hardware.Machine, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var lim *limiter.FpsLimiter
	if !uncapped {
		lim, err = limiter.NewFPSLimiter(m.Spec().RefreshRate())
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer lim.End()
	}

	startFrame := m.VIC.FrameNum()

	runner := func() error {
		// signals false when the leadtime has elapsed and measurement should
		// start. signals true when the duration has expired
		timerChan := make(chan bool, 1)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		err := m.Run(func() (govern.State, error) {
			if lim != nil {
				lim.Wait()
			}

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startFrame = m.VIC.FrameNum()
			default:
			}

			return govern.Running, nil
		})
		if errors.Is(err, timedOut) {
			return nil
		}
		return err
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	numFrames := int(m.VIC.FrameNum() - startFrame)
	fps, accuracy := CalcFPS(m.Spec(), numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
