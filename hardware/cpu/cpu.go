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

package cpu

import (
	"fmt"

	"github.com/tracenes/tracenes/curated"
	"github.com/tracenes/tracenes/hardware/cpu/execution"
	"github.com/tracenes/tracenes/hardware/cpu/instructions"
	"github.com/tracenes/tracenes/hardware/cpu/registers"
	"github.com/tracenes/tracenes/hardware/memory/cpubus"
	"github.com/tracenes/tracenes/logger"
)

// CPU implements the 6502 found in the console. Instructions execute
// atomically through the Step() function; cycle costs are accounted at the
// instruction boundary rather than by ticking the CPU cycle by cycle.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem cpubus.Memory

	// total number of cycles the CPU has consumed since the last reset.
	// seeded with the cost of the reset sequence itself
	Cycles uint64

	// the result of the most recent call to Step()
	LastResult execution.Result

	// the number of instructions retired since the last reset
	sequence uint64

	// bus accesses made so far by the instruction currently executing.
	// served to the memory system through RelativeCycle()
	relCycle int

	// the instruction table, indexed by opcode
	defns []*instructions.Definition

	// scratch register for read-modify-write and compare instructions
	acc8 registers.Register
}

// post-reset values defined by the hardware. the status register knows its
// own reset pattern.
const (
	resetSP     = uint8(0xfd)
	resetCycles = uint64(7)
)

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(0),
		Status: registers.NewStatusRegister(),
		mem:    mem,
		defns:  instructions.GetDefinitions(),
		acc8:   registers.NewRegister(0, "acc8"),
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory implementation into the CPU. Used when resurrecting a
// snapshot.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%v %v %v %v %v %v",
		mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status)
}

// RelativeCycle implements the cpubus.CycleClock interface. The returned
// offset is relative to the start of the instruction currently executing;
// the opcode fetch is always offset zero.
func (mc *CPU) RelativeCycle() int {
	return mc.relCycle
}

// Reset the CPU. The program counter is loaded from the reset vector; the
// vector read is a Peek() and does not appear in any audit trail.
func (mc *CPU) Reset() {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(resetSP)
	mc.Status.Reset()

	lo := mc.mem.Peek(cpubus.Reset)
	hi := mc.mem.Peek(cpubus.Reset + 1)
	mc.PC.Load(uint16(lo) | (uint16(hi) << 8))

	mc.Cycles = resetCycles
	mc.sequence = 0
	mc.relCycle = 0
	mc.LastResult = execution.Result{}
	mc.mem.ClearAuditLog()
}

// read8 performs an audited bus read, advancing the relative cycle clock.
func (mc *CPU) read8(address uint16) uint8 {
	v := mc.mem.Read(address)
	mc.relCycle++
	return v
}

// write8 performs an audited bus write, advancing the relative cycle clock.
func (mc *CPU) write8(address uint16, data uint8) {
	mc.mem.Write(address, data)
	mc.relCycle++
}

// read8PC reads the byte at the program counter and advances it.
func (mc *CPU) read8PC() uint8 {
	v := mc.read8(mc.PC.Address())
	mc.PC.Add(1)
	return v
}

// read16PC reads a little-endian word at the program counter and advances it.
func (mc *CPU) read16PC() uint16 {
	lo := mc.read8PC()
	hi := mc.read8PC()
	return uint16(lo) | (uint16(hi) << 8)
}

func (mc *CPU) push(data uint8) {
	mc.write8(mc.SP.Address(), data)
	mc.SP.Decrement()
}

func (mc *CPU) pull() uint8 {
	mc.SP.Increment()
	return mc.read8(mc.SP.Address())
}

// setNZ updates the sign and zero flags from a register.
func (mc *CPU) setNZ(r registers.Register) {
	mc.Status.Sign = r.IsNegative()
	mc.Status.Zero = r.IsZero()
}

// onDifferentPages is true if the two addresses have different high bytes.
func onDifferentPages(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

// resolveAddress decodes the operand for the definition, returning the
// effective address and whether the indexing stepped over a page boundary.
// Every byte it touches goes through the audited read path.
//
// Immediate mode returns the address of the operand itself; the caller reads
// it like any other operand. Implied, Accumulator and Relative modes have no
// effective address.
func (mc *CPU) resolveAddress(defn *instructions.Definition) (uint16, bool) {
	switch defn.AddressingMode {
	case instructions.Immediate:
		ea := mc.PC.Address()
		mc.PC.Add(1)
		return ea, false

	case instructions.Absolute:
		return mc.read16PC(), false

	case instructions.ZeroPage:
		return uint16(mc.read8PC()), false

	case instructions.Indirect:
		// the 6502 does not carry into the high byte when reading the
		// second byte of the vector. JMP ($xxFF) reads the high byte from
		// the start of the same page
		ptr := mc.read16PC()
		lo := mc.read8(ptr)
		hi := mc.read8((ptr & 0xff00) | uint16(uint8(ptr)+1))
		return uint16(lo) | (uint16(hi) << 8), false

	case instructions.IndexedIndirect:
		zp := mc.read8PC() + mc.X.Value()
		lo := mc.read8(uint16(zp))
		hi := mc.read8(uint16(zp + 1))
		return uint16(lo) | (uint16(hi) << 8), false

	case instructions.IndirectIndexed:
		zp := mc.read8PC()
		lo := mc.read8(uint16(zp))
		hi := mc.read8(uint16(zp + 1))
		base := uint16(lo) | (uint16(hi) << 8)
		ea := base + mc.Y.Address()
		return ea, onDifferentPages(base, ea)

	case instructions.AbsoluteIndexedX:
		base := mc.read16PC()
		ea := base + mc.X.Address()
		return ea, onDifferentPages(base, ea)

	case instructions.AbsoluteIndexedY:
		base := mc.read16PC()
		ea := base + mc.Y.Address()
		return ea, onDifferentPages(base, ea)

	case instructions.ZeroPageIndexedX:
		return uint16(mc.read8PC() + mc.X.Value()), false

	case instructions.ZeroPageIndexedY:
		return uint16(mc.read8PC() + mc.Y.Value()), false
	}

	return 0, false
}

// branch adjusts the program counter by the sign-extended offset, returning
// the number of penalty cycles and whether the branch crossed a page. The
// page comparison is against the address of the instruction that follows the
// branch.
func (mc *CPU) branch(offset uint8) (int, bool) {
	from := mc.PC.Address()
	target := from + uint16(int8(offset))
	mc.PC.Load(target)

	if onDifferentPages(from, target) {
		return 2, true
	}
	return 1, false
}

// Step executes the instruction at the current program counter, returning
// the complete record of what happened. An undefined opcode is not an error:
// it retires as a fixed-cost no-op with the sentinel mnemonic and the event
// is logged.
func (mc *CPU) Step() (execution.Result, error) {
	if mc.mem == nil {
		return execution.Result{}, curated.Errorf("cpu: not attached to memory")
	}

	mc.mem.ClearAuditLog()
	mc.relCycle = 0

	result := execution.Result{
		Sequence:   mc.sequence,
		Address:    mc.PC.Address(),
		StartCycle: mc.Cycles,
	}

	opcode := mc.read8PC()
	result.OpCode = opcode

	defn := mc.defns[opcode]
	if defn == nil {
		logger.Logf("cpu", "undefined opcode %#02x at %#04x", opcode, result.Address)
		result.Mnemonic = execution.UnknownOpcodeMnemonic
		result.Cycles = execution.UnknownOpcodeCycles
		mc.retire(&result)
		return result, nil
	}

	result.Defn = defn
	result.Mnemonic = defn.Mnemonic()

	cycles := defn.Cycles

	// branch instructions keep their raw operand; everything else resolves
	// to an effective address
	var ea uint16
	var operand uint8
	var pageFault bool

	if defn.IsBranch() {
		operand = mc.read8PC()
	} else {
		ea, pageFault = mc.resolveAddress(defn)
		if pageFault && defn.PageSensitive {
			cycles++
			result.PageFault = true
		}
	}

	// operand value fetch for instructions that consume one
	var value uint8
	switch defn.Effect {
	case instructions.Read, instructions.RMW:
		switch defn.AddressingMode {
		case instructions.Implied:
		case instructions.Accumulator:
			value = mc.A.Value()
		default:
			value = mc.read8(ea)
		}
	}

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Lda:
		mc.A.Load(value)
		mc.setNZ(mc.A)
	case instructions.Ldx:
		mc.X.Load(value)
		mc.setNZ(mc.X)
	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setNZ(mc.Y)

	case instructions.Sta:
		mc.write8(ea, mc.A.Value())
	case instructions.Stx:
		mc.write8(ea, mc.X.Value())
	case instructions.Sty:
		mc.write8(ea, mc.Y.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setNZ(mc.X)
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setNZ(mc.Y)
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setNZ(mc.A)
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setNZ(mc.A)
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setNZ(mc.X)
	case instructions.Txs:
		// does not affect flags
		mc.SP.Load(mc.X.Value())

	case instructions.Pha:
		mc.push(mc.A.Value())
	case instructions.Pla:
		mc.A.Load(mc.pull())
		mc.setNZ(mc.A)
	case instructions.Php:
		// the pushed copy always has the break bit set
		mc.push(mc.Status.Value() | 0x10)
	case instructions.Plp:
		mc.Status.FromValue(mc.pull())
		mc.Status.Break = false

	case instructions.And:
		mc.A.AND(value)
		mc.setNZ(mc.A)
	case instructions.Eor:
		mc.A.EOR(value)
		mc.setNZ(mc.A)
	case instructions.Ora:
		mc.A.ORA(value)
		mc.setNZ(mc.A)

	case instructions.Bit:
		mc.acc8.Load(value)
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.Status.Zero = mc.A.Value()&value == 0

	case instructions.Adc:
		// the decimal flag exists but binary arithmetic is always used
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.setNZ(mc.A)
	case instructions.Sbc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.setNZ(mc.A)

	case instructions.Cmp:
		mc.compare(mc.A, value)
	case instructions.Cpx:
		mc.compare(mc.X, value)
	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Inc:
		mc.acc8.Load(value + 1)
		mc.setNZ(mc.acc8)
		mc.write8(ea, mc.acc8.Value())
	case instructions.Dec:
		mc.acc8.Load(value - 1)
		mc.setNZ(mc.acc8)
		mc.write8(ea, mc.acc8.Value())

	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.setNZ(mc.X)
	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.setNZ(mc.Y)
	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.setNZ(mc.X)
	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.setNZ(mc.Y)

	case instructions.Asl:
		if defn.AddressingMode == instructions.Accumulator {
			mc.Status.Carry = mc.A.ASL()
			mc.setNZ(mc.A)
		} else {
			mc.acc8.Load(value)
			mc.Status.Carry = mc.acc8.ASL()
			mc.setNZ(mc.acc8)
			mc.write8(ea, mc.acc8.Value())
		}
	case instructions.Lsr:
		if defn.AddressingMode == instructions.Accumulator {
			mc.Status.Carry = mc.A.LSR()
			mc.setNZ(mc.A)
		} else {
			mc.acc8.Load(value)
			mc.Status.Carry = mc.acc8.LSR()
			mc.setNZ(mc.acc8)
			mc.write8(ea, mc.acc8.Value())
		}
	case instructions.Rol:
		if defn.AddressingMode == instructions.Accumulator {
			mc.Status.Carry = mc.A.ROL(mc.Status.Carry)
			mc.setNZ(mc.A)
		} else {
			mc.acc8.Load(value)
			mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
			mc.setNZ(mc.acc8)
			mc.write8(ea, mc.acc8.Value())
		}
	case instructions.Ror:
		if defn.AddressingMode == instructions.Accumulator {
			mc.Status.Carry = mc.A.ROR(mc.Status.Carry)
			mc.setNZ(mc.A)
		} else {
			mc.acc8.Load(value)
			mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
			mc.setNZ(mc.acc8)
			mc.write8(ea, mc.acc8.Value())
		}

	case instructions.Jmp:
		mc.PC.Load(ea)

	case instructions.Jsr:
		// the pushed return address points at the last byte of the JSR
		// instruction; RTS corrects it on the way back
		ret := mc.PC.Address() - 1
		mc.push(uint8(ret >> 8))
		mc.push(uint8(ret))
		mc.PC.Load(ea)

	case instructions.Rts:
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load(uint16(lo) | (uint16(hi) << 8))
		mc.PC.Add(1)

	case instructions.Brk:
		// the byte after the BRK opcode is padding. the pushed copy of the
		// status register always has the break bit set
		ret := mc.PC.Address() + 1
		mc.push(uint8(ret >> 8))
		mc.push(uint8(ret))
		mc.push(mc.Status.Value() | 0x10)
		mc.Status.InterruptDisable = true
		lo := mc.read8(cpubus.IRQ)
		hi := mc.read8(cpubus.IRQ + 1)
		mc.PC.Load(uint16(lo) | (uint16(hi) << 8))

	case instructions.Rti:
		mc.Status.FromValue(mc.pull())
		mc.Status.Break = false
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load(uint16(lo) | (uint16(hi) << 8))

	case instructions.Bcc:
		mc.takeBranch(!mc.Status.Carry, operand, &cycles, &result)
	case instructions.Bcs:
		mc.takeBranch(mc.Status.Carry, operand, &cycles, &result)
	case instructions.Bne:
		mc.takeBranch(!mc.Status.Zero, operand, &cycles, &result)
	case instructions.Beq:
		mc.takeBranch(mc.Status.Zero, operand, &cycles, &result)
	case instructions.Bpl:
		mc.takeBranch(!mc.Status.Sign, operand, &cycles, &result)
	case instructions.Bmi:
		mc.takeBranch(mc.Status.Sign, operand, &cycles, &result)
	case instructions.Bvc:
		mc.takeBranch(!mc.Status.Overflow, operand, &cycles, &result)
	case instructions.Bvs:
		mc.takeBranch(mc.Status.Overflow, operand, &cycles, &result)

	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Sei:
		mc.Status.InterruptDisable = true
	case instructions.Clv:
		mc.Status.Overflow = false
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Sed:
		mc.Status.DecimalMode = true
	}

	result.Cycles = cycles
	mc.retire(&result)

	return result, nil
}

// compare subtracts a value from the register without storing the result,
// setting the carry, sign and zero flags.
func (mc *CPU) compare(r registers.Register, value uint8) {
	mc.acc8.Load(r.Value())
	mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
	mc.setNZ(mc.acc8)
}

// takeBranch completes a branch instruction once the condition is known.
func (mc *CPU) takeBranch(cond bool, operand uint8, cycles *int, result *execution.Result) {
	if !cond {
		return
	}

	penalty, crossed := mc.branch(operand)
	*cycles += penalty
	result.BranchTaken = true
	result.PageFault = crossed
}

// retire completes the result record and advances the cycle and sequence
// counters.
func (mc *CPU) retire(result *execution.Result) {
	mc.Cycles += uint64(result.Cycles)
	mc.sequence++

	result.MicroOps = mc.mem.AuditLog()
	result.Post = execution.Registers{
		A:      mc.A.Value(),
		X:      mc.X.Value(),
		Y:      mc.Y.Value(),
		P:      mc.Status.Value(),
		SP:     mc.SP.Value(),
		PC:     mc.PC.Address(),
		Cycles: mc.Cycles,
	}

	mc.LastResult = *result
}
