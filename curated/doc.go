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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
// The pattern is remembered and is used to identify the error later:
//
//	const AddressError = "memory: address out of range (%#03x)"
//
//	err := curated.Errorf(AddressError, 0x1000)
//
//	if curated.Is(err, AddressError) {
//		...
//	}
//
// Is() only matches the outermost error. Has() looks for the pattern anywhere
// in the chain of curated errors:
//
//	err := curated.Errorf("cpu: %v", curated.Errorf(AddressError, 0x1000))
//	curated.Has(err, AddressError) // true
//	curated.Is(err, AddressError)  // false
//
// The Error() string is normalised such that duplicate adjacent parts of the
// chain are removed. Parts are separated by the sub-string ": ". This means
// that we can wrap errors with the package prefix without worrying about
// whether the error has already been prefixed by a function further down the
// call stack. For example, "cpu: cpu: stack overflow" becomes "cpu: stack
// overflow".
//
// Sentinal patterns should be stored as exported const strings in the package
// that creates them.
package curated
