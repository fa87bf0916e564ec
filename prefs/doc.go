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

// Package prefs facilitates the storage of preferential values. Preference
// values are of the Bool, String and Int types. Each is safe to use across
// goroutines.
//
// A Disk instance collates preference values under a key and can save and
// load them to and from a preferences file:
//
//	dsk, _ := prefs.NewDisk(pth)
//	var v prefs.Bool
//	_ = dsk.Add("hardware.example", &v)
//	_ = dsk.Load()
//
// The preferences file is a simple text file of "key :: value" lines. Keys in
// the file that have not been added to the Disk instance are preserved when
// the Disk is saved. This means that more than one Disk instance can share the
// same file.
//
// Preference values can also be set from the command line by pushing a
// preferences string to the command line stack. See PushCommandLineStack().
// When a Disk is loaded any values on the top of the command line stack
// override the values in the file.
package prefs
