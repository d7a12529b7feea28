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

// Package logger is the central log of the emulator. Log entries are tagged,
// usually with the name of the package that created the entry, and adjacent
// entries that repeat are collapsed into one entry with a repeat count.
//
// There is one central logger for the whole application, accessed through the
// package level functions Log() and Logf(). Other instances can be created
// with NewLogger() for testing or for components that want a private log.
//
// Every logging request is accompanied by a Permission value. The
// environment.Environment type implements Permission so that only the main
// emulation is allowed to create entries. An emulation created for rewinding
// or for a determinism check will be silent. The Allow value can be used when
// there is no environment available.
package logger
