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

package hostaudio

import (
	"encoding/binary"
	"sync"

	"github.com/technic0/Ready/hardware/sid"
)

// queue of 16 bit little endian samples. implements io.Reader
type queue struct {
	crit sync.Mutex
	data []byte

	// maximum number of bytes in the queue
	limit int

	// the number of samples dropped because the queue was full and the
	// number of bytes of silence given because it was empty
	dropped   int
	underflow int
}

func newQueue(limit int) *queue {
	return &queue{
		data:  make([]byte, 0, limit),
		limit: limit,
	}
}

func (q *queue) push(b sid.Batch) {
	q.crit.Lock()
	defer q.crit.Unlock()

	for _, s := range b.All() {
		q.data = binary.LittleEndian.AppendUint16(q.data, uint16(s))
	}

	if over := len(q.data) - q.limit; over > 0 {
		q.data = q.data[:copy(q.data, q.data[over:])]
		q.dropped += over / 2
	}
}

// Read implements the io.Reader interface.
func (q *queue) Read(p []byte) (int, error) {
	q.crit.Lock()
	defer q.crit.Unlock()

	n := copy(p, q.data)
	q.data = q.data[:copy(q.data, q.data[n:])]

	if n < len(p) {
		clear(p[n:])
		q.underflow += len(p) - n
	}

	return len(p), nil
}

func (q *queue) len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.data) / 2
}
