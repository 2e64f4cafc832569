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

// Package version holds the version information for the application.
package version

// The name to use when referring to the application.
const ApplicationName = "TraceNES"

// number and revision are set through the linker by the release build.
var number string
var revision string

// Version returns the version string for the build. A build made outside of
// the release process reports "unreleased".
func Version() string {
	if number != "" {
		return number
	}
	if revision != "" {
		return revision
	}
	return "unreleased"
}
