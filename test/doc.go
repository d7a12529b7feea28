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

// Package test contains helper functions that remove common boilerplate from
// the test files of the project.
//
// The Expect*() functions report a failure and allow the test to continue.
// The Demand*() functions stop the test immediately. Demand is useful when a
// value is used in further tests and so must be correct. For example, the
// length of a slice that is then indexed.
//
// ExpectSuccess() and ExpectFailure() accept values of type bool and error.
// The nil value is considered a success because of how errors are returned by
// convention in Go.
//
// All functions accept an optional list of tags which are prepended to the
// failure message. This is useful when tests are run in a loop.
//
// The CappedWriter and RingWriter types implement io.Writer and are used to
// capture output of a component (the logger for example) for comparison.
package test
