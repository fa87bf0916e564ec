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

package romloader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

var program = []uint8{0x60, 0x05, 0x61, 0x05, 0x50, 0x10}

func TestLoadFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "test.ch8")
	test.DemandSuccess(t, os.WriteFile(pth, program, 0o644))

	ld := romloader.NewLoader(pth)
	test.ExpectEquality(t, ld.ShortName(), "test")
	test.ExpectFailure(t, ld.HasLoaded())

	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, string(ld.Data), string(program))
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(program)))
}

func TestLoadMissingFile(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	err := ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestUnexpectedHash(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "test.ch8")
	test.DemandSuccess(t, os.WriteFile(pth, program, 0o644))

	ld := romloader.NewLoader(pth)
	ld.Hash = "0000"
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.UnexpectedHash))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/roms/test.ch8" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(program)
	}))
	defer srv.Close()

	ld := romloader.NewLoader(srv.URL + "/roms/test.ch8")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, string(ld.Data), string(program))
	test.ExpectEquality(t, ld.ShortName(), "test")

	ld = romloader.NewLoader(srv.URL + "/roms/missing.ch8")
	test.ExpectFailure(t, ld.Load())
}

func TestUnsupportedScheme(t *testing.T) {
	ld := romloader.NewLoader("ftp://example.com/test.ch8")
	test.ExpectFailure(t, ld.Load())
}
