// This file is part of TraceNES.
//
// TraceNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// TraceNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with TraceNES.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like fmt.Errorf, but the pattern
// doubles as the identity of the error:
//
//	e := curated.Errorf("cartridge: %v", err)
//
//	if curated.Is(e, "cartridge: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether a pattern occurs anywhere
// in the error chain rather than just at the head.
//
// Packages that produce errors of interest to other packages should declare
// the pattern as an exported const so that callers can test for it without
// repeating the string.
package curated
