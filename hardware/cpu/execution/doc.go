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

// Package execution records the result of a single instruction boundary. Every
// call to the CPU's Step() function produces an instance of the Result type,
// comprising the decoded definition, the cycle cost actually paid, the
// micro-op trail of bus accesses and a snapshot of the registers after the
// instruction has retired.
//
// The Result type is the currency of the trace, regression and monitor
// packages. Two runs of the same program must produce byte-for-byte identical
// sequences of Result values.
//
// The IsValid() function checks a Result for internal consistency against its
// definition. It is too slow to call on the hot path but the test suites lean
// on it heavily.
package execution
