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

// Package prefs facilitates the storage of preferred values. Values are
// stored in types that implement the pref interface (Bool, String, Int and
// Float) and collected into a Disk which saves them to a file and loads them
// back.
//
// Values are stored atomically and can be read from any goroutine. Hooks can
// be attached to each value to be run before and after the value changes. A
// hook that returns an error prevents the change when it is the pre-hook.
//
// The file format is one entry per line:
//
//	key :: value
//
// Lines that begin with # are ignored. Entries in the file that do not belong
// to the Disk instance are preserved when the Disk is saved, allowing more
// than one Disk to share a file.
//
// Values can be overridden from the command line with PushCommandLineStack().
// The stack is checked when a Disk is loaded.
//
//	prefs.PushCommandLineStack("tv.spec::NTSC; sid.model::8580")
package prefs
