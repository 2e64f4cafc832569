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

// Package cpubus defines the memory operations available to the CPU. The
// Memory type in the memory package is the canonical implementation but
// tests (and anything else that wants to put the CPU on a leash) can supply
// their own.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU.
//
// Read is an ordinary bus read: it may trigger side effects in memory mapped
// registers and it is recorded in the audit log. Peek is the inspection
// variant: same routing, but side effects are suppressed and nothing is
// recorded. Neither function can fail; unmapped areas of the address space
// read as zero, as they do on the real machine.
//
// The audit log functions expose the per-instruction micro-op record. The
// log is owned by the implementation; the CPU clears it at the start of each
// instruction and copies it at the end.
type Memory interface {
	Read(address uint16) uint8
	Peek(address uint16) uint8
	Write(address uint16, data uint8)

	ClearAuditLog()
	AuditLog() []MicroOp
}

// CycleClock is implemented by the CPU so that the memory system can
// timestamp micro-ops with the cycle offset relative to the start of the
// instruction currently being executed.
type CycleClock interface {
	RelativeCycle() int
}

// The interrupt vectors of the 6502 live at the very top of the address
// space, inside the cartridge window.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)
