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

package media

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/technic0/Ready/faults"
)

// Kind is the type of media.
type Kind int

// List of valid Kind values.
const (
	TapeMedia Kind = iota
	DiskMedia
	ProgramMedia
)

func (k Kind) String() string {
	switch k {
	case TapeMedia:
		return "tape"
	case DiskMedia:
		return "disk"
	case ProgramMedia:
		return "program"
	}
	return "unknown"
}

// Media is implemented by the Tape, Disk and Program types.
type Media interface {
	Kind() Kind
	Name() string
}

// Load reads the file and decodes it according to its content. The extension
// of the filename is only used for PRG files, which have no signature.
func Load(filename string) (Media, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("media: %w", err)
	}
	return FromBytes(filepath.Base(filename), data)
}

// FromBytes decodes the data according to its content. The name is used to
// identify the media and to recognise PRG files.
func FromBytes(name string, data []byte) (Media, error) {
	switch {
	case bytes.HasPrefix(data, []byte(tapSignature)):
		return DecodeTAP(name, data)
	case bytes.HasPrefix(data, []byte(g64Signature)):
		return DecodeG64(name, data)
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WAVE":
		return DecodeWAV(name, bytes.NewReader(data))
	case isMP3(data):
		return DecodeMP3(name, bytes.NewReader(data))
	}

	if _, ok := d64Geometry(len(data)); ok {
		return DecodeD64(name, data)
	}

	if strings.EqualFold(filepath.Ext(name), ".prg") {
		return DecodePRG(name, data)
	}

	return nil, faults.Errorf(faults.MediaError, faults.MediaMalformed, fmt.Sprintf("%s: unrecognised format", name))
}

// an MP3 file either starts with an ID3 tag or with a frame sync
func isMP3(data []byte) bool {
	if bytes.HasPrefix(data, []byte("ID3")) {
		return true
	}
	return len(data) >= 2 && data[0] == 0xff && data[1]&0xe0 == 0xe0
}

func malformed(name string, format string, args ...any) error {
	return faults.Errorf(faults.MediaError, faults.MediaMalformed,
		fmt.Sprintf("%s: %s", name, fmt.Sprintf(format, args...)))
}
