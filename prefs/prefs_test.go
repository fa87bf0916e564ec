// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.String(), "true")

	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set("60"))
	test.ExpectEquality(t, v.Get().(int), 60)
	test.ExpectFailure(t, v.Set("sixty"))
	test.ExpectEquality(t, v.Get().(int), 60)
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "0")
}

func TestHooks(t *testing.T) {
	var v prefs.String
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(string) == "bad" {
			return errors.New("bad value")
		}
		return nil
	})

	var post string
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(string)
		return nil
	})

	test.ExpectSuccess(t, v.Set("good"))
	test.ExpectEquality(t, post, "good")
	test.ExpectFailure(t, v.Set("bad"))
	test.ExpectEquality(t, v.String(), "good")
}

func TestDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	var s prefs.String
	var i prefs.Int
	test.DemandSuccess(t, dsk.Add("test.bool", &b))
	test.DemandSuccess(t, dsk.Add("test.string", &s))
	test.DemandSuccess(t, dsk.Add("test.int", &i))
	test.ExpectFailure(t, dsk.Add("test.int", &i))

	// no file yet
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, s.Set("foo"))
	test.ExpectSuccess(t, i.Set(10))
	test.DemandSuccess(t, dsk.Save())

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\n"+
		"test.bool :: true\n"+
		"test.int :: 10\n"+
		"test.string :: foo\n")

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, i.Get().(int), 0)
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectEquality(t, s.String(), "foo")
	test.ExpectEquality(t, i.Get().(int), 10)
}

func TestDiskSharedFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")

	dskA, _ := prefs.NewDisk(pth)
	var a prefs.Int
	test.DemandSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, a.Set(1))
	test.DemandSuccess(t, dskA.Save())

	dskB, _ := prefs.NewDisk(pth)
	var b prefs.Int
	test.DemandSuccess(t, dskB.Add("b", &b))
	test.ExpectSuccess(t, b.Set(2))
	test.DemandSuccess(t, dskB.Save())

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\na :: 1\nb :: 2\n")
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	prefs.PushCommandLineStack("test.int::99; bad")

	pth := filepath.Join(t.TempDir(), "prefs")
	dsk, _ := prefs.NewDisk(pth)
	var i prefs.Int
	test.DemandSuccess(t, dsk.Add("test.int", &i))

	err := dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	test.ExpectEquality(t, i.Get().(int), 99)

	// test.int has been used so the group is now empty
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
