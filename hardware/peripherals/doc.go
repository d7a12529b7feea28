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

// Package peripherals defines the interface shared by the devices attached to
// the I/O chips of the machine: the keyboard, the joysticks, the datasette and
// the disk drive. The implementations are in the sub-packages.
//
// Peripherals see the port lines of the CIA or VIA they are attached to
// through BusRead() and BusWrite(). The address argument is the register
// number of the port, PortA or PortB. Peripherals that are not port devices,
// such as the disk drive, interpret the address as a location in their own
// address space.
package peripherals
