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

// Package iec implements the serial bus connecting the C64 to disk drives.
//
// The bus has three open collector lines: ATN, CLK and DATA. A line is low if
// any device on the bus pulls it low. Only the computer drives ATN.
//
// The computer is connected through port A of CIA2. Bits 3, 4 and 5 drive
// ATN, CLK and DATA through inverters so a one in the output pulls the line
// low. Bits 6 and 7 read the CLK and DATA lines directly.
//
// A 1541 is connected through port B of its first VIA. Bits 1 and 3 drive
// DATA and CLK through inverters. Bits 0, 2 and 7 read DATA, CLK and ATN
// through inverters so a one means the line is low. Bit 4 is the ATN
// acknowledge: the drive hardware pulls DATA low whenever ATN does not agree
// with it. Bits 5 and 6 are the device number jumpers.
//
// The ATN line is also connected, inverted, to CA1 of the drive's VIA. The
// OnATN callback given to AddDrive() is called whenever ATN changes.
package iec
