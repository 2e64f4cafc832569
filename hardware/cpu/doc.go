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

// Package cpu implements the 6502 instruction set. The CPU executes one
// complete instruction per call to Step(), accounting cycles at the
// instruction boundary: the base cost from the instruction table plus any
// page-cross and branch penalties. It does not tick through the individual
// phases of an instruction.
//
// Every bus access an instruction makes goes through the attached
// cpubus.Memory implementation, which records it as a micro-op stamped with
// the offset from the start of the instruction. Step() returns an
// execution.Result folding together the decoded definition, the cycle cost,
// the micro-op trail and a post-execution register snapshot. The sequence of
// Result values from a reset onwards is the deterministic transcript of the
// machine: the trace, regression and monitor packages are all built on it.
//
// Only the 151 documented opcodes are implemented. An undefined opcode is
// logged and retired as a two cycle no-op with the mnemonic "???"; execution
// continues at the following address.
package cpu
