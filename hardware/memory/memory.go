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

package memory

import (
	"github.com/tracenes/tracenes/hardware/memory/cartridge"
	"github.com/tracenes/tracenes/hardware/memory/cpubus"
	"github.com/tracenes/tracenes/hardware/memory/memorymap"
)

// Memory is the monolithic representation of the memory in the console. It
// routes every access to the correct area, records the micro-op trail and
// applies the side effects of port reads.
type Memory struct {
	RAM   [memorymap.MaskRAM + 1]uint8
	Cart  *cartridge.Cartridge
	Ports PortHandler

	clk cpubus.CycleClock
	log []cpubus.MicroOp
}

// NewMemory is the preferred method of initialisation for Memory.
func NewMemory() *Memory {
	mem := &Memory{
		Cart:  cartridge.NewCartridge(),
		Ports: NewRegisterPorts(),
		log:   make([]cpubus.MicroOp, 0, 8),
	}
	return mem
}

// Reset contents of memory. The cartridge and the micro-op log are
// untouched.
func (mem *Memory) Reset() {
	for i := range mem.RAM {
		mem.RAM[i] = 0
	}
	mem.Ports.Reset()
}

// AttachClock attaches the source of micro-op timestamps, invariably the
// CPU. Accesses made without a clock attached are stamped at offset zero.
func (mem *Memory) AttachClock(clk cpubus.CycleClock) {
	mem.clk = clk
}

// Snapshot creates a copy of the current memory state. The micro-op log and
// the attached clock belong to the live instance and are not copied.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.Cart = mem.Cart.Snapshot()
	n.Ports = mem.Ports.Snapshot()
	n.clk = nil
	n.log = make([]cpubus.MicroOp, 0, 8)
	return &n
}

func (mem *Memory) relCycle() int {
	if mem.clk == nil {
		return 0
	}
	return mem.clk.RelativeCycle()
}

// Read is an implementation of cpubus.Memory. Every call is recorded in the
// micro-op log and port reads run their side effects.
func (mem *Memory) Read(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)

	var data uint8
	switch area {
	case memorymap.RAM:
		data = mem.RAM[ma]
	case memorymap.Ports:
		data = mem.Ports.Read(ma & memorymap.MaskPorts)
	case memorymap.Cartridge:
		data = mem.Cart.Read(address)
	}

	mem.log = append(mem.log, cpubus.MicroOp{
		Kind:     cpubus.ReadOp,
		Address:  address,
		Data:     data,
		RelCycle: mem.relCycle(),
	})

	return data
}

// Peek is an implementation of cpubus.Memory. As Read() but with no
// micro-op recorded and no side effects. This is how the debugging and
// disassembly packages look at memory.
func (mem *Memory) Peek(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM[ma]
	case memorymap.Ports:
		return mem.Ports.Peek(ma & memorymap.MaskPorts)
	case memorymap.Cartridge:
		return mem.Cart.Read(address)
	}

	return 0x00
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.RAM[ma] = data
	case memorymap.Ports:
		mem.Ports.Write(ma&memorymap.MaskPorts, data)
	case memorymap.Cartridge:
		mem.Cart.Write(address, data)
	}

	mem.log = append(mem.log, cpubus.MicroOp{
		Kind:     cpubus.WriteOp,
		Address:  address,
		Data:     data,
		RelCycle: mem.relCycle(),
	})
}

// ClearAuditLog is an implementation of cpubus.Memory. The CPU calls it at
// the start of every instruction.
func (mem *Memory) ClearAuditLog() {
	mem.log = mem.log[:0]
}

// AuditLog is an implementation of cpubus.Memory. The returned slice is a
// copy and safe to keep across instruction boundaries.
func (mem *Memory) AuditLog() []cpubus.MicroOp {
	log := make([]cpubus.MicroOp, len(mem.log))
	copy(log, mem.log)
	return log
}
