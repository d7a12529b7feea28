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

import (
	"iter"
	"time"
)

// Batch is a finite sequence of mono samples.
type Batch struct {
	// sample rate in Hz
	Rate int

	Samples []int16
}

// Len returns the number of samples in the batch.
func (b Batch) Len() int {
	return len(b.Samples)
}

// Duration returns the playing time of the batch.
func (b Batch) Duration() time.Duration {
	if b.Rate == 0 {
		return 0
	}
	return time.Duration(len(b.Samples)) * time.Second / time.Duration(b.Rate)
}

// All returns an iterator over the samples in the batch. The iterator can be
// used more than once.
func (b Batch) All() iter.Seq2[int, int16] {
	return func(yield func(int, int16) bool) {
		for i, s := range b.Samples {
			if !yield(i, s) {
				return
			}
		}
	}
}
