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

// Package clocks defines the constant values for the speed of the clocks in
// the C64 and the attached peripherals. Values are in Hz.
//
// The C64 system clock is derived from the video crystal: the PAL crystal of
// 17.734472MHz is divided by 18 and the NTSC crystal of 14.31818MHz is divided
// by 14.
package clocks

const (
	PAL  = 985248
	NTSC = 1022727

	// the 1541 has its own 16MHz crystal divided by 16
	Drive1541 = 1000000
)

// Time-of-day clocks in the CIAs are driven by the mains frequency.
const (
	MainsPAL  = 50
	MainsNTSC = 60
)
