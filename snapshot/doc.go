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

// Package snapshot captures the complete state of a hardware.Machine and
// restores it later. A snapshot can be written to and read from a file.
//
// Each part of the machine contributes one section to the snapshot. A
// section is identified by a four character tag and its payload is the
// gob encoding of the part's state type.
//
// Restoring a snapshot happens in two phases. In the first phase every
// section is decoded and checked against the machine. Only if every section is
// acceptable is the second phase started, in which the state is applied to
// the machine. A snapshot that cannot be restored leaves the machine
// untouched.
//
// The file format is little-endian:
//
//	magic        8 bytes "READYSNP"
//	version      uint16
//	fingerprint  uint32
//	sections     uint16
//	checksum     uint32 CRC32 of everything that follows
//	sections     tag [4]byte, length uint32, payload
//
// The fingerprint is a CRC32 of the machine configuration: the TV
// specification, the ROM set and whether a disk drive is attached. A snapshot
// can only be restored into a machine with the same fingerprint.
package snapshot
