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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/test"
)

func TestLocalResourcePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	test.DemandSuccess(t, os.Mkdir(".gopher8", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher8", "foo", "bar", "baz"))

	// missing directories are created
	info, err := os.Stat(filepath.Join(".gopher8", "foo", "bar"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher8", "preferences"))
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("audio", "pong")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "audio_pong_"))

	fn = paths.UniqueFilename("audio", " ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "audio_"))
	test.ExpectFailure(t, strings.HasPrefix(fn, "audio__"))
}
