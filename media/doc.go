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

// Package media decodes the tape, disk and program images that can be
// inserted into the machine.
//
// Tapes are decoded into a sequence of pulse lengths measured in system
// cycles. TAP images are decoded directly and WAV or MP3 recordings of real
// tapes are converted by detecting the edges in the recorded signal.
//
// Disks are decoded into the bit level GCR tracks read by the 1541 drive
// mechanism. D64 images are GCR encoded, including any error information
// stored in the image, and G64 images already contain GCR tracks.
//
// Programs are PRG files that can be loaded directly into memory.
//
// The Load() function sniffs the format of a file. Malformed images are
// reported as a faults.MediaError.
package media
