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

package limiter_test

import (
	"testing"
	"time"

	"github.com/technic0/Ready/performance/limiter"
	"github.com/technic0/Ready/test"
)

func TestLimiter(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewFPSLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.End()

	start := time.Now()
	for range 20 {
		lim.Wait()
	}
	elapsed := time.Since(start)

	// twenty ticks at 100Hz is about 200ms. the first tick is immediate
	test.ExpectSuccess(t, elapsed >= 150*time.Millisecond, elapsed)
	test.ExpectSuccess(t, elapsed < 2*time.Second, elapsed)

	test.ExpectFailure(t, lim.SetLimit(-1))
}
