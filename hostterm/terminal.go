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

//go:build linux || darwin

package hostterm

import (
	"os"
	"time"

	"github.com/pkg/term/termios"
	"github.com/technic0/Ready/curated"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is the host terminal in cbreak mode.
type Terminal struct {
	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	buffer []byte
}

// Open puts the terminal connected to the file into cbreak mode. Restore()
// should be called to put the terminal back into canonical mode.
func Open(input *os.File) (*Terminal, error) {
	if input == nil {
		return nil, curated.Errorf("hostterm: no input file")
	}
	if !term.IsTerminal(int(input.Fd())) {
		return nil, curated.Errorf("hostterm: %s is not a terminal", input.Name())
	}

	t := &Terminal{
		input:  input,
		buffer: make([]byte, 32),
	}

	if err := termios.Tcgetattr(t.input.Fd(), &t.canAttr); err != nil {
		return nil, curated.Errorf("hostterm: %v", err)
	}
	t.cbreakAttr = t.canAttr
	termios.Cfmakecbreak(&t.cbreakAttr)

	if err := termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.cbreakAttr); err != nil {
		return nil, curated.Errorf("hostterm: %v", err)
	}

	return t, nil
}

// Restore the terminal to the state it was in when Open() was called.
func (t *Terminal) Restore() error {
	if err := termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.canAttr); err != nil {
		return curated.Errorf("hostterm: %v", err)
	}
	return nil
}

// Size returns the number of columns and rows in the terminal.
func (t *Terminal) Size() (int, int, error) {
	cols, rows, err := term.GetSize(int(t.input.Fd()))
	if err != nil {
		return 0, 0, curated.Errorf("hostterm: %v", err)
	}
	return cols, rows, nil
}

// Read returns any bytes that are waiting in the terminal. Blocks for no
// longer than the timeout. A timeout of zero returns immediately.
func (t *Terminal) Read(timeout time.Duration) ([]byte, error) {
	fds := []unix.PollFd{{Fd: int32(t.input.Fd()), Events: unix.POLLIN}}

	n, err := unix.Poll(fds, int(timeout.Milliseconds()))
	if err != nil {
		if err == unix.EINTR {
			return nil, nil
		}
		return nil, curated.Errorf("hostterm: %v", err)
	}
	if n == 0 || fds[0].Revents&unix.POLLIN == 0 {
		return nil, nil
	}

	n, err = t.input.Read(t.buffer)
	if err != nil {
		return nil, curated.Errorf("hostterm: %v", err)
	}

	return t.buffer[:n], nil
}
