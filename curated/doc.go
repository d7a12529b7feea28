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

// Package curated wraps the plain Go error type with a pattern-based
// error that can be tested for identity without sentinel values.
//
// Errors are created with Errorf(). The pattern argument is kept alongside the
// values and is used by Is() and Has() to identify the error:
//
//	const NoDisk = "drive: no disk in drive %d"
//
//	err := curated.Errorf(NoDisk, 8)
//	if curated.Is(err, NoDisk) {
//		...
//	}
//
// Has() searches the chain. A curated error given as a value to another
// curated error is part of the chain:
//
//	f := curated.Errorf("media error: %v", err)
//	curated.Has(f, NoDisk) // true
//	curated.Is(f, NoDisk)  // false
//
// A plain error given as a value is also reachable by the standard library's
// errors.Is() and errors.As() through the Unwrap() method.
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts. A part is the text between ': ' separators, so wrapping an
// error with the same prefix twice does not print the prefix twice:
//
//	snapshot: snapshot: version mismatch
//
// is printed as
//
//	snapshot: version mismatch
//
// Sentinel patterns should be declared as const strings next to the code that
// raises them.
package curated
