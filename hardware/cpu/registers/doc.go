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

// Package registers implements the registers of the 6502 CPU. The Register
// type covers the accumulator and the index registers; the program counter,
// stack pointer and status register each get their own type because their
// behaviour differs in important ways (16 bit arithmetic, page wrapping and
// flag handling respectively).
//
// The arithmetic methods on the Register type return carry and overflow
// hints rather than mutating any flag state. Flags belong to the CPU; these
// types only report what happened.
package registers
