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

package recorder

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/hardware"
	"github.com/technic0/Ready/snapshot"
)

const (
	fieldCycle int = iota
	fieldEvent
	numFields
)

const fieldSep = ", "

// the first line of every transcript.
const magicString = "ready recording v1"

const (
	lineMagic int = iota
	lineTVSpec
	lineFingerprint
	numHeaderLines
)

func header(m *hardware.Machine) string {
	lines := make([]string, numHeaderLines)
	lines[lineMagic] = magicString
	lines[lineTVSpec] = m.Spec().ID
	lines[lineFingerprint] = fmt.Sprintf("%08x", snapshot.Fingerprint(m))
	return strings.Join(lines, "\n") + "\n"
}

func (rec *Recorder) writeHeader() error {
	line := header(rec.m)

	n, err := io.WriteString(rec.output, line)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	if n != len(line) {
		return curated.Errorf("recorder: output truncated")
	}

	return nil
}

func (plb *Playback) readHeader(lines []string) error {
	if len(lines) < numHeaderLines || lines[lineMagic] != magicString {
		return curated.Errorf("playback: %s is not a transcript", plb.transcript)
	}

	plb.TVSpec = lines[lineTVSpec]

	f, err := strconv.ParseUint(lines[lineFingerprint], 16, 32)
	if err != nil {
		return curated.Errorf("playback: fingerprint: %v", err)
	}
	plb.Fingerprint = uint32(f)

	return nil
}
