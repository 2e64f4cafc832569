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

// Package instructions defines the documented instruction set of the 6502 as
// data. Each opcode maps to an immutable Definition record describing the
// operator, addressing mode, encoded length, base cycle cost and effect
// category. The CPU package interprets these records; nothing here executes
// anything.
//
// Undocumented opcodes deliberately have no Definition. The CPU treats an
// opcode with a nil entry as unknown and substitutes a fixed-cost sentinel
// so that execution never halts on stray bytes.
package instructions
