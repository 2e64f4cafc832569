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

// Package memory implements the bus between the CPU and everything else in
// the console. The Memory type is the only implementation of the
// cpubus.Memory interface in the emulation.
//
// Every Read() and Write() appends to a micro-op log, stamped with the cycle
// offset supplied by the attached clock. The CPU clears the log at the start
// of each instruction and folds the accumulated entries into the
// execution.Result for that instruction.
//
// Address decoding is delegated to the memorymap package. The cartridge area
// is handled by the cartridge package; the port window is handled by a
// PortHandler, with RegisterPorts as the default implementation.
package memory
