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

// Package faults declares the error categories of the emulation. Each
// category is a curated error pattern and errors are categorised by wrapping
// them in the category pattern:
//
//	return curated.Errorf(faults.MediaError, curated.Errorf(faults.ChecksumMismatch, "track 18"))
//
// Errors can be tested with curated.Has() for a specific pattern or with
// Category() to find the broad category.
//
// The ConfigurationError and InternalInvariantViolation categories are fatal.
// An emulation that raises either of these should not continue. The other
// categories are recoverable: the operation that raised the error is abandoned
// and the machine continues in the state it was in before the operation.
package faults

import "github.com/technic0/Ready/curated"

// Category patterns.
const (
	ConfigurationError         = "configuration error: %v"
	MediaError                 = "media error: %v"
	SnapshotError              = "snapshot error: %v"
	InternalInvariantViolation = "internal invariant violation: %v"
)

// Media error patterns. These are always wrapped in a MediaError.
const (
	MediaNotPresent  = "media not present: %s"
	ChecksumMismatch = "checksum mismatch: %v"
	MediaMalformed   = "malformed: %v"
)

// Snapshot error patterns. These are always wrapped in a SnapshotError.
const (
	VersionMismatch   = "version mismatch: %v"
	CorruptSnapshot   = "corrupt snapshot: %v"
	IncompleteCapture = "incomplete capture: %v"
)

// Kind is the broad category of an error.
type Kind int

// List of valid Kind values.
const (
	Uncategorised Kind = iota
	Configuration
	Media
	Snapshot
	Internal
)

func (k Kind) String() string {
	switch k {
	case Configuration:
		return "configuration"
	case Media:
		return "media"
	case Snapshot:
		return "snapshot"
	case Internal:
		return "internal"
	}
	return "uncategorised"
}

// Category returns the Kind of the error. Errors that have not been wrapped in
// one of the category patterns are Uncategorised.
func Category(err error) Kind {
	switch {
	case curated.Has(err, InternalInvariantViolation):
		return Internal
	case curated.Has(err, ConfigurationError):
		return Configuration
	case curated.Has(err, SnapshotError):
		return Snapshot
	case curated.Has(err, MediaError):
		return Media
	}
	return Uncategorised
}

// IsFatal returns true if the error should stop the emulation. Uncategorised
// errors are considered fatal because their effect on the emulation is not
// known.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	switch Category(err) {
	case Media, Snapshot:
		return false
	}
	return true
}

// Errorf is a convenience function that wraps a new curated error in a
// category pattern.
func Errorf(category string, pattern string, values ...any) error {
	return curated.Errorf(category, curated.Errorf(pattern, values...))
}
