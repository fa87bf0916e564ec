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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectSuccess() and ExpectFailure() functions test for success and
// failure under generic conditions. For the bool type success is true and
// for the error type success is nil. Note that the untyped nil value is
// considered a success, because of how errors are usually handled in Go.
//
// ExpectEquality() and ExpectInequality() compare values of the same
// comparable type. The Demand*() functions are the same as the Expect*()
// functions except that a failure is fatal to the test.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output for comparison.
package test
