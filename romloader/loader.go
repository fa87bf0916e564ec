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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal errors.
const (
	UnexpectedHash = "romloader: unexpected hash value (%s)"
)

// FileExtensions is the list of file extensions that are usually used for
// CHIP-8 programs. Other extensions are not rejected.
var FileExtensions = [...]string{".CH8", ".C8", ".BIN", ".ROM"}

// the timeout for loading over HTTP
const httpTimeout = 10 * time.Second

// Loader is used to specify the program to load.
type Loader struct {
	// filename or URL of the program
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the base filename without the extension.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program data. Filenames with an http or https scheme are fetched
// over the network. Everything else is treated as a local file.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var err error

	switch scheme {
	case "http", "https":
		ld.Data, err = loadHTTP(ld.Filename)
	case "file":
		ld.Data, err = os.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
	default:
		// a windows path with a drive letter looks like a URL scheme
		if len(scheme) == 1 {
			ld.Data, err = os.ReadFile(ld.Filename)
		} else {
			err = fmt.Errorf("unsupported URL scheme (%s)", scheme)
		}
	}

	if err != nil {
		ld.Data = nil
		return curated.Errorf("romloader: %v", err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf(UnexpectedHash, hash)
	}
	ld.Hash = hash

	logger.Logf(logger.Allow, "romloader", "%s: %d bytes (sha1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)

	return nil
}

func loadHTTP(url string) ([]uint8, error) {
	client := http.Client{Timeout: httpTimeout}

	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
