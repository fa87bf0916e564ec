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

// Package paths contains functions to prepare paths to gopher8 resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// path to the preferences file:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// If the base resource path, ".gopher8", is present in the program's current
// directory then that is the base path that will used. Otherwise the user's
// config directory, as returned by os.UserConfigDir(), is used. On a modern
// Linux system that would result in:
//
//	/home/user/.config/gopher8/preferences
//
// ResourcePath() will create any missing directories in the path, but not the
// file itself.
package paths
