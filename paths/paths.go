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

package paths

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopher8/curated"
)

// the base path for all resources
const baseResourcePath = ".gopher8"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with OS/build specific paths.
//
// The function creates any missing directories in the path. The file itself
// is not created.
func ResourcePath(path string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", curated.Errorf("paths: %v", err)
	}

	dir := filepath.Join(base, path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", curated.Errorf("paths: %v", err)
	}

	return filepath.Join(dir, file), nil
}

// the local resource path is used in preference to the user's config
// directory
func getBasePath() (string, error) {
	if info, err := os.Stat(baseResourcePath); err == nil && info.IsDir() {
		return baseResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, baseResourcePath[1:]), nil
}
