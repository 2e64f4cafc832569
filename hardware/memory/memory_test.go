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

package memory_test

import (
	"testing"

	"github.com/tracenes/tracenes/hardware/memory"
	"github.com/tracenes/tracenes/hardware/memory/cartridge"
	"github.com/tracenes/tracenes/hardware/memory/cpubus"
	"github.com/tracenes/tracenes/test"
)

// stubClock hands out a fixed cycle offset.
type stubClock struct {
	rel int
}

func (c *stubClock) RelativeCycle() int {
	return c.rel
}

func TestRAMMirroring(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write(0x0010, 0xab)
	test.Equate(t, mem.Read(0x0010), 0xab)
	test.Equate(t, mem.Read(0x0810), 0xab)
	test.Equate(t, mem.Read(0x1010), 0xab)
	test.Equate(t, mem.Read(0x1810), 0xab)

	// writing through a mirror lands in the same cell
	mem.Write(0x1810, 0xcd)
	test.Equate(t, mem.Read(0x0010), 0xcd)
}

func TestUnmappedReads(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write(0x4000, 0xff)
	test.Equate(t, mem.Read(0x4000), 0x00)
	test.Equate(t, mem.Read(0x7fff), 0x00)
}

func TestStatusLatch(t *testing.T) {
	mem := memory.NewMemory()

	ports := mem.Ports.(*memory.RegisterPorts)
	ports.SetLatch()

	// first read sees the latch, second read sees it cleared. the window
	// mirrors every eight bytes so the mirror address behaves identically
	test.Equate(t, mem.Read(0x2002), 0x80)
	test.Equate(t, mem.Read(0x2002), 0x00)

	ports.SetLatch()
	test.Equate(t, mem.Read(0x3ffa), 0x80)
	test.Equate(t, mem.Read(0x2002), 0x00)
}

func TestPeekHasNoSideEffects(t *testing.T) {
	mem := memory.NewMemory()

	ports := mem.Ports.(*memory.RegisterPorts)
	ports.SetLatch()

	test.Equate(t, mem.Peek(0x2002), 0x80)
	test.Equate(t, mem.Peek(0x2002), 0x80)
	test.Equate(t, len(mem.AuditLog()), 0)

	// the audited read still sees the latch and then clears it
	test.Equate(t, mem.Read(0x2002), 0x80)
	test.Equate(t, mem.Peek(0x2002), 0x00)
}

func TestAuditLog(t *testing.T) {
	mem := memory.NewMemory()
	clk := &stubClock{}
	mem.AttachClock(clk)

	mem.Write(0x0010, 0x05)
	clk.rel = 1
	_ = mem.Read(0x0010)

	log := mem.AuditLog()
	test.Equate(t, len(log), 2)
	test.Equate(t, log[0].String(), "W 0010=05 @0")
	test.Equate(t, log[1].String(), "R 0010=05 @1")
	test.Equate(t, log[0].Kind == cpubus.WriteOp, true)
	test.Equate(t, log[1].Kind == cpubus.ReadOp, true)

	mem.ClearAuditLog()
	test.Equate(t, len(mem.AuditLog()), 0)
}

func TestSnapshot(t *testing.T) {
	data := make([]uint8, 16384)
	data[0x0000] = 0x42

	mapper, err := cartridge.NewNROM(data)
	test.ExpectedSuccess(t, err == nil)

	mem := memory.NewMemory()
	mem.Cart.Attach(mapper)
	mem.Write(0x0000, 0x99)

	snap := mem.Snapshot()
	mem.Write(0x0000, 0x00)

	test.Equate(t, snap.Peek(0x0000), 0x99)
	test.Equate(t, snap.Peek(0x8000), 0x42)
	test.Equate(t, len(snap.AuditLog()), 0)
}
