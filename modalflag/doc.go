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

// Package modalflag wraps the flag package of the standard library and adds
// the idea of program modes. Each mode has its own set of flags and may
// itself have sub-modes.
//
// Arguments are added with NewArgs() and then parsed with Parse(). Sub-modes
// for the next Parse() are added with AddSubModes(), the first of which is the
// default mode. Mode comparisons are case insensitive and the selected mode is
// returned by Mode() in upper case.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("play", "disasm")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		scale := md.AddInt("scale", 10, "window scaling")
//		...
//	}
//
// Calling NewMode() after a mode has been selected begins a new set of flags
// for the arguments that follow the mode name.
package modalflag
