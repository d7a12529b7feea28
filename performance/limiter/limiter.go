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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(50.125)
//	defer fps.End()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		m.RunFrame()
//	}
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/technic0/Ready/curated"
)

// FpsLimiter will trigger every frames per second
type FpsLimiter struct {
	// the period between triggers in nanoseconds
	period atomic.Int64

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type
func NewFPSLimiter(framesPerSecond float64) (*FpsLimiter, error) {
	lim := &FpsLimiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}

	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}

	// run ticker concurrently. the sleep period is adjusted to correct for
	// the time taken by the previous iteration
	go func() {
		adjusted := time.Duration(lim.period.Load())
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			period := time.Duration(lim.period.Load())
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - period
			adjusted = min(max(adjusted, 0), period*2)
			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the limit at which the FpsLimiter waits. Safe to call from
// any goroutine.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) error {
	if framesPerSecond <= 0 {
		return curated.Errorf("limiter: frame rate must be positive (%f)", framesPerSecond)
	}
	lim.period.Store(int64(float64(time.Second) / framesPerSecond))
	return nil
}

// Wait will block until trigger
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// End the limiter. The limiter must not be used after this function has been
// called.
func (lim *FpsLimiter) End() {
	close(lim.quit)
}
