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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/technic0/Ready/prefs"
	"github.com/technic0/Ready/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()
	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected))
}

func TestBoolAndInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Int
	test.DemandSuccess(t, dsk.Add("test", &v))
	test.DemandSuccess(t, dsk.Add("number", &w))
	test.ExpectFailure(t, dsk.Add("test", &w))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("100"))
	test.ExpectFailure(t, w.Set("foo"))
	test.ExpectSuccess(t, dsk.Save())
	cmpFile(t, fn, "number :: 100\ntest :: true\n")

	var x prefs.Bool
	var y prefs.Int
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk2.Add("test", &x))
	test.DemandSuccess(t, dsk2.Add("number", &y))
	test.ExpectSuccess(t, dsk2.Load())
	test.ExpectEquality(t, x.Get().(bool), true)
	test.ExpectEquality(t, y.Get().(int), 100)
}

func TestPreserveForeignEntries(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, _ := prefs.NewDisk(fn)
	var s prefs.String
	test.DemandSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.ExpectSuccess(t, dsk.Save())

	dsk2, _ := prefs.NewDisk(fn)
	var f prefs.Float
	test.DemandSuccess(t, dsk2.Add("rate", &f))
	test.ExpectSuccess(t, f.Set(0.5))
	test.ExpectSuccess(t, dsk2.Save())

	cmpFile(t, fn, "foo :: bar\nrate :: 0.500\n")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	var post int
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, post, 10)
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("abcdefgh"))
	s.SetMaxLen(4)
	test.ExpectEquality(t, s.String(), "abcd")
	test.ExpectSuccess(t, s.Set("123456"))
	test.ExpectEquality(t, s.String(), "1234")
}

func TestCommandLineStack(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	dsk, _ := prefs.NewDisk(fn)

	var spec prefs.String
	var model prefs.Int
	test.DemandSuccess(t, dsk.Add("tv.spec", &spec))
	test.DemandSuccess(t, dsk.Add("sid.model", &model))
	test.ExpectSuccess(t, spec.Set("PAL"))
	test.ExpectSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("tv.spec::NTSC; unused::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, spec.String(), "NTSC")

	// the used value has been removed from the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
