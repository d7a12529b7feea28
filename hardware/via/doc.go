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

// Package via emulates the 6522 Versatile Interface Adapter. The 1541 disk
// drive has two of them: VIA1 connects the drive to the serial bus and VIA2
// controls the drive mechanism.
//
// As with the cia package, external devices are connected to the two ports
// through the PortDevice interface. The four control lines (CA1, CA2, CB1
// and CB2) are driven directly with the SetCA1() etc. functions.
package via
