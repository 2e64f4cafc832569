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

package cpu_test

import (
	"testing"

	"github.com/tracenes/tracenes/hardware/cpu"
	"github.com/tracenes/tracenes/hardware/cpu/execution"
	"github.com/tracenes/tracenes/hardware/memory/cpubus"
	"github.com/tracenes/tracenes/test"
)

// mockMem is a flat 64k memory with the same micro-op recording as the real
// bus but with no address decoding or side effects.
type mockMem struct {
	internal []uint8
	clk      cpubus.CycleClock
	log      []cpubus.MicroOp
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) relCycle() int {
	if mem.clk == nil {
		return 0
	}
	return mem.clk.RelativeCycle()
}

func (mem *mockMem) Read(address uint16) uint8 {
	data := mem.internal[address]
	mem.log = append(mem.log, cpubus.MicroOp{
		Kind: cpubus.ReadOp, Address: address, Data: data, RelCycle: mem.relCycle(),
	})
	return data
}

func (mem *mockMem) Peek(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
	mem.log = append(mem.log, cpubus.MicroOp{
		Kind: cpubus.WriteOp, Address: address, Data: data, RelCycle: mem.relCycle(),
	})
}

func (mem *mockMem) ClearAuditLog() {
	mem.log = mem.log[:0]
}

func (mem *mockMem) AuditLog() []cpubus.MicroOp {
	log := make([]cpubus.MicroOp, len(mem.log))
	copy(log, mem.log)
	return log
}

// putInstructions copies the bytes into memory at the origin and returns the
// address of the next free location.
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

// newTestCPU assembles a CPU and mock memory with the reset vector pointing
// at the origin address.
func newTestCPU(origin uint16) (*cpu.CPU, *mockMem) {
	mem := newMockMem()
	mem.internal[cpubus.Reset] = uint8(origin)
	mem.internal[cpubus.Reset+1] = uint8(origin >> 8)

	mc := cpu.NewCPU(mem)
	mem.clk = mc
	mc.Reset()

	return mc, mem
}

// step executes one instruction and checks the result for internal
// consistency.
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()

	result, err := mc.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := result.IsValid(); err != nil {
		t.Fatalf("result failed validity check: %v", err)
	}

	return result
}

func TestReset(t *testing.T) {
	mc, _ := newTestCPU(0xc000)
	test.Equate(t, mc.PC.Address(), 0xc000)
	test.Equate(t, mc.SP.Value(), 0xfd)
	test.Equate(t, mc.Status.Value(), 0x34)
	test.Equate(t, mc.Cycles, 7)
}

func TestLoadAndFlags(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.putInstructions(0x8000,
		0xa9, 0x05, // LDA #$05
		0xa9, 0x00, // LDA #$00
		0xa9, 0x80, // LDA #$80
		0xa2, 0x01, // LDX #$01
		0xa0, 0xff, // LDY #$ff
	)

	r := step(t, mc)
	test.Equate(t, r.Mnemonic, "LDA")
	test.Equate(t, r.Cycles, 2)
	test.Equate(t, mc.A.Value(), 0x05)
	test.Equate(t, mc.Status.Zero, false)
	test.Equate(t, mc.Status.Sign, false)

	step(t, mc)
	test.Equate(t, mc.Status.Zero, true)

	step(t, mc)
	test.Equate(t, mc.Status.Sign, true)
	test.Equate(t, mc.Status.Zero, false)

	step(t, mc)
	test.Equate(t, mc.X.Value(), 0x01)
	step(t, mc)
	test.Equate(t, mc.Y.Value(), 0xff)
}

func TestStoreMicroOps(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.putInstructions(0x8000,
		0xa9, 0x05, // LDA #$05
		0x85, 0x10, // STA $10
	)

	step(t, mc)
	r := step(t, mc)
	test.Equate(t, r.Mnemonic, "STA")
	test.Equate(t, r.Cycles, 3)
	test.Equate(t, mem.internal[0x0010], 0x05)

	// opcode fetch, operand fetch, data write. offsets start at zero
	test.Equate(t, len(r.MicroOps), 3)
	test.Equate(t, r.MicroOps[0].String(), "R 8002=85 @0")
	test.Equate(t, r.MicroOps[1].String(), "R 8003=10 @1")
	test.Equate(t, r.MicroOps[2].String(), "W 0010=05 @2")
}

func TestArithmetic(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.putInstructions(0x8000,
		0x18,       // CLC
		0xa9, 0x50, // LDA #$50
		0x69, 0x50, // ADC #$50 ; overflow, no carry
		0x18,       // CLC
		0xa9, 0xff, // LDA #$ff
		0x69, 0x01, // ADC #$01 ; carry, zero
		0x38,       // SEC
		0xa9, 0x05, // LDA #$05
		0xe9, 0x03, // SBC #$03
	)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xa0)
	test.Equate(t, mc.Status.Overflow, true)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.Sign, true)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x00)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.Zero, true)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x02)
	test.Equate(t, mc.Status.Carry, true)
}

func TestCompare(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.putInstructions(0x8000,
		0xa9, 0x10, // LDA #$10
		0xc9, 0x10, // CMP #$10
		0xc9, 0x20, // CMP #$20
	)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.Carry, true)

	step(t, mc)
	test.Equate(t, mc.Status.Zero, false)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.Sign, true)

	// compare must not touch the accumulator
	test.Equate(t, mc.A.Value(), 0x10)
}

func TestPageCrossPenalty(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.internal[0x0133] = 0xaa
	mem.internal[0x0201] = 0xbb
	mem.putInstructions(0x8000,
		0xa2, 0x01, // LDX #$01
		0xbd, 0x32, 0x01, // LDA $0132,X ; same page
		0xa2, 0x02, // LDX #$02
		0xbd, 0xff, 0x01, // LDA $01ff,X ; crosses page
	)

	step(t, mc)
	r := step(t, mc)
	test.Equate(t, r.Cycles, 4)
	test.Equate(t, r.PageFault, false)
	test.Equate(t, mc.A.Value(), 0xaa)

	step(t, mc)
	r = step(t, mc)
	test.Equate(t, r.Cycles, 5)
	test.Equate(t, r.PageFault, true)
	test.Equate(t, mc.A.Value(), 0xbb)
}

func TestStorePaysNoPageCrossPenalty(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.putInstructions(0x8000,
		0xa2, 0x02, // LDX #$02
		0x9d, 0xff, 0x01, // STA $01ff,X ; crosses page
	)

	step(t, mc)
	r := step(t, mc)
	test.Equate(t, r.Cycles, 5)
	test.Equate(t, r.PageFault, false)
}

func TestBranchCycles(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.putInstructions(0x8000,
		0xa9, 0x01, // LDA #$01
		0xd0, 0x00, // BNE +0 ; taken, same page
		0xf0, 0x10, // BEQ +16 ; not taken
		0xd0, 0xf0, // BNE -16 ; taken, crosses to $7ff8
	)

	step(t, mc)

	r := step(t, mc)
	test.Equate(t, r.Cycles, 3)
	test.Equate(t, r.BranchTaken, true)
	test.Equate(t, r.PageFault, false)

	r = step(t, mc)
	test.Equate(t, r.Cycles, 2)
	test.Equate(t, r.BranchTaken, false)

	r = step(t, mc)
	test.Equate(t, r.Cycles, 4)
	test.Equate(t, r.BranchTaken, true)
	test.Equate(t, r.PageFault, true)
	test.Equate(t, mc.PC.Address(), 0x7ff8)
}

func TestBranchBackwards(t *testing.T) {
	mc, mem := newTestCPU(0x8010)
	mem.putInstructions(0x8010,
		0xa9, 0x00, // LDA #$00
		0xf0, 0xfc, // BEQ -4
	)

	step(t, mc)
	r := step(t, mc)
	test.Equate(t, r.BranchTaken, true)
	test.Equate(t, mc.PC.Address(), 0x8010)
}

func TestJmpIndirectPageBug(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.internal[0x02ff] = 0x34
	mem.internal[0x0300] = 0x12 // never used
	mem.internal[0x0200] = 0x56
	mem.putInstructions(0x8000,
		0x6c, 0xff, 0x02, // JMP ($02ff)
	)

	r := step(t, mc)
	test.Equate(t, r.Cycles, 5)

	// high byte comes from the start of the pointer's page, not $0300
	test.Equate(t, mc.PC.Address(), 0x5634)
}

func TestSubroutine(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.putInstructions(0x8000,
		0x20, 0x00, 0x90, // JSR $9000
	)
	mem.putInstructions(0x9000,
		0x60, // RTS
	)

	r := step(t, mc)
	test.Equate(t, r.Mnemonic, "JSR")
	test.Equate(t, r.Cycles, 6)
	test.Equate(t, mc.PC.Address(), 0x9000)
	test.Equate(t, mc.SP.Value(), 0xfb)

	// return address minus one, high byte pushed first
	test.Equate(t, mem.internal[0x01fd], 0x80)
	test.Equate(t, mem.internal[0x01fc], 0x02)

	r = step(t, mc)
	test.Equate(t, r.Mnemonic, "RTS")
	test.Equate(t, r.Cycles, 6)
	test.Equate(t, mc.PC.Address(), 0x8003)
	test.Equate(t, mc.SP.Value(), 0xfd)
}

func TestStatusPushPull(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.putInstructions(0x8000,
		0x38, // SEC
		0x08, // PHP
		0x18, // CLC
		0x28, // PLP
	)

	step(t, mc)
	step(t, mc)

	// pushed copy always has break and unused bits set
	test.Equate(t, mem.internal[0x01fd], 0x35)

	step(t, mc)
	test.Equate(t, mc.Status.Carry, false)

	step(t, mc)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.Break, false)
}

func TestBrkRti(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.internal[cpubus.IRQ] = 0x00
	mem.internal[cpubus.IRQ+1] = 0xa0
	mem.putInstructions(0x8000,
		0x00, 0xff, // BRK (with padding byte)
	)
	mem.putInstructions(0xa000,
		0x40, // RTI
	)

	r := step(t, mc)
	test.Equate(t, r.Mnemonic, "BRK")
	test.Equate(t, r.Cycles, 7)
	test.Equate(t, mc.PC.Address(), 0xa000)
	test.Equate(t, mc.Status.InterruptDisable, true)

	r = step(t, mc)
	test.Equate(t, r.Mnemonic, "RTI")
	test.Equate(t, r.Cycles, 6)

	// BRK return address skips the padding byte
	test.Equate(t, mc.PC.Address(), 0x8002)
	test.Equate(t, mc.SP.Value(), 0xfd)
	test.Equate(t, mc.Status.Break, false)
}

func TestReadModifyWrite(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.internal[0x0010] = 0x7f
	mem.putInstructions(0x8000,
		0xe6, 0x10, // INC $10
		0xc6, 0x10, // DEC $10
		0x06, 0x10, // ASL $10
	)

	r := step(t, mc)
	test.Equate(t, r.Cycles, 5)
	test.Equate(t, mem.internal[0x0010], 0x80)
	test.Equate(t, mc.Status.Sign, true)

	// fetch, operand, read, write. a single write-back
	test.Equate(t, len(r.MicroOps), 4)
	test.Equate(t, r.MicroOps[2].String(), "R 0010=7f @2")
	test.Equate(t, r.MicroOps[3].String(), "W 0010=80 @3")

	step(t, mc)
	test.Equate(t, mem.internal[0x0010], 0x7f)

	step(t, mc)
	test.Equate(t, mem.internal[0x0010], 0xfe)
	test.Equate(t, mc.Status.Carry, false)
}

func TestZeroPageWrapping(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.internal[0x0001] = 0x42
	mem.putInstructions(0x8000,
		0xa2, 0x02, // LDX #$02
		0xb5, 0xff, // LDA $ff,X ; wraps to $01
	)

	step(t, mc)
	r := step(t, mc)
	test.Equate(t, r.Cycles, 4)
	test.Equate(t, mc.A.Value(), 0x42)
}

func TestIndirectIndexed(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.internal[0x0010] = 0xff
	mem.internal[0x0011] = 0x01
	mem.internal[0x0200] = 0x99
	mem.putInstructions(0x8000,
		0xa0, 0x01, // LDY #$01
		0xb1, 0x10, // LDA ($10),Y ; $01ff+1 crosses page
	)

	step(t, mc)
	r := step(t, mc)
	test.Equate(t, r.Cycles, 6)
	test.Equate(t, r.PageFault, true)
	test.Equate(t, mc.A.Value(), 0x99)
}

func TestIndexedIndirectWrapping(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.internal[0x00ff] = 0x00
	mem.internal[0x0000] = 0x03 // pointer high byte wraps into zero page
	mem.internal[0x0300] = 0x77
	mem.putInstructions(0x8000,
		0xa2, 0x0f, // LDX #$0f
		0xa1, 0xf0, // LDA ($f0,X) ; pointer at $ff/$00
	)

	step(t, mc)
	r := step(t, mc)
	test.Equate(t, r.Cycles, 6)
	test.Equate(t, mc.A.Value(), 0x77)
}

func TestUndefinedOpcode(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.putInstructions(0x8000,
		0x02,       // undefined
		0xa9, 0x07, // LDA #$07
	)

	r := step(t, mc)
	test.Equate(t, r.Mnemonic, "???")
	test.Equate(t, r.Cycles, 2)
	test.Equate(t, r.Defn == nil, true)

	// execution continues at the following address
	r = step(t, mc)
	test.Equate(t, r.Mnemonic, "LDA")
	test.Equate(t, mc.A.Value(), 0x07)
}

func TestCycleAndSequenceCounting(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	mem.putInstructions(0x8000,
		0xa9, 0x05, // LDA #$05 ; 2
		0x85, 0x10, // STA $10  ; 3
		0xa5, 0x10, // LDA $10  ; 3
		0xea, // NOP      ; 2
	)

	var total uint64 = 7
	for i := 0; i < 4; i++ {
		r := step(t, mc)
		test.Equate(t, r.Sequence, i)
		test.Equate(t, r.StartCycle, total)
		total += uint64(r.Cycles)
		test.Equate(t, r.Post.Cycles, total)
	}

	test.Equate(t, mc.Cycles, 17)
}

func TestStackPointerWrap(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	origin := uint16(0x8000)
	for i := 0; i < 4; i++ {
		origin = mem.putInstructions(origin, 0x48) // PHA
	}

	mc.SP.Load(0x01)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.SP.Value(), 0xff)

	// pushes stay inside the stack page
	step(t, mc)
	test.Equate(t, mem.AuditLog()[1].Address, 0x01ff)
}
