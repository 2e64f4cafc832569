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

// Package hardware assembles the console from its parts: the CPU, the memory
// bus and the cartridge slot. Hosts drive the console through Step() and
// Run(); everything those functions do is deterministic, so two consoles
// built the same way and fed the same program produce identical results at
// every step.
package hardware

import (
	"github.com/tracenes/tracenes/hardware/cpu"
	"github.com/tracenes/tracenes/hardware/cpu/execution"
	"github.com/tracenes/tracenes/hardware/memory"
	"github.com/tracenes/tracenes/hardware/memory/cartridge"
)

// NES is the console proper.
type NES struct {
	CPU *cpu.CPU
	Mem *memory.Memory
}

// NewNES is the preferred method of initialisation for the NES structure.
// The returned console has an empty cartridge slot and has been reset.
func NewNES() *NES {
	mem := memory.NewMemory()
	mc := cpu.NewCPU(mem)
	mem.AttachClock(mc)

	nes := &NES{
		CPU: mc,
		Mem: mem,
	}
	nes.Reset()

	return nes
}

// AttachCartridge inserts a mapper into the cartridge slot and resets the
// console. The reset is required: the program counter is meaningless until
// it has been loaded from the new cartridge's reset vector.
func (nes *NES) AttachCartridge(mapper cartridge.Mapper) {
	nes.Mem.Cart.Attach(mapper)
	nes.Reset()
}

// Reset the console. Emulates the effect of the power cycle, not the reset
// switch: RAM is zeroed.
func (nes *NES) Reset() {
	nes.Mem.Reset()
	nes.CPU.Reset()
}

// Step the console forward by one instruction.
func (nes *NES) Step() (execution.Result, error) {
	return nes.CPU.Step()
}

// Snapshot creates a copy of the console in its current state. The copy is
// fully plumbed and can itself be stepped, which is how the regression
// harness forks a run.
func (nes *NES) Snapshot() *NES {
	mem := nes.Mem.Snapshot()
	mc := nes.CPU.Snapshot()
	mc.Plumb(mem)
	mem.AttachClock(mc)

	return &NES{
		CPU: mc,
		Mem: mem,
	}
}
