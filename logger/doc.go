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

// Package logger is the central log for the application. Log entries are
// kept in memory, up to a maximum number of entries, and can be written to
// any io.Writer on demand. Consecutive identical entries are collapsed into a
// single entry with a repeat count.
//
// The package level functions log to the central logger:
//
//	logger.Log(logger.Allow, "romloader", "loaded 246 bytes")
//	logger.Logf(logger.Allow, "chip8", "halted: %v", err)
//
// The first argument is a Permission. Log entries will only be made if the
// permission allows it. Use logger.Allow if the entry should always be made.
//
// Entries can be echoed to an io.Writer as they are created with SetEcho().
package logger
