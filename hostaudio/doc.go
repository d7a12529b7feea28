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

// Package hostaudio plays the audio produced by the SID through the host's
// audio device. Batches from the emulation are queued and the audio device
// reads from the queue on its own goroutine. If the queue runs dry the
// device is given silence. If the emulation runs ahead of the device the
// oldest samples are dropped.
//
// The package can be excluded from a build with the headless build tag, in
// which case NewAudio() always fails.
package hostaudio
