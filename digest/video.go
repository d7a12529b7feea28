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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/technic0/Ready/hardware/vic"
)

// Video is a digest of every frame produced by the VIC.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum uint64
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
}

// FrameNum returns the number of the last frame added to the digest.
func (dig *Video) FrameNum() uint64 {
	return dig.frameNum
}

// NewFrame adds the frame to the digest.
func (dig *Video) NewFrame(f *vic.Frame) {
	// room for the previous digest value and the entire frame
	l := len(dig.digest) + len(f.Pix)
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	n := copy(dig.pixels, dig.digest[:])
	copy(dig.pixels[n:], f.Pix)

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = f.Number
}
