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

// Package sid implements the 6581 and 8580 Sound Interface Device.
//
// The SID is clocked once per system cycle. Each cycle the three oscillators
// advance their 24 bit phase accumulators, the envelope generators count
// towards their next step and the output of every voice is accumulated. At
// the output sample rate the accumulated voices are averaged, routed through
// the multimode filter and scaled by the master volume.
//
// The output sample rate is derived from the system clock with an integer
// accumulator. The remainder is carried from one sample to the next so the
// number of samples produced for any number of cycles is never more than one
// sample away from the ideal.
//
// Samples are collected by calling Drain(), which returns a Batch of signed
// 16 bit mono samples.
package sid
