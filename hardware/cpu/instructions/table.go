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

package instructions

import "sync"

// the table is process-wide constant data, built once on first use and never
// mutated afterwards.
var (
	buildOnce   sync.Once
	definitions []*Definition
)

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. Entries for opcodes outside the documented instruction set are
// nil; the CPU treats those as unknown opcodes rather than failing.
func GetDefinitions() []*Definition {
	buildOnce.Do(build)
	return definitions
}

func build() {
	definitions = make([]*Definition, 256)

	add := func(opcode uint8, operator Operator, mode AddressingMode, cycles int, pageSensitive bool, effect EffectCategory) {
		definitions[opcode] = &Definition{
			OpCode:         opcode,
			Operator:       operator,
			AddressingMode: mode,
			Bytes:          1 + mode.OperandBytes(),
			Cycles:         cycles,
			PageSensitive:  pageSensitive,
			Effect:         effect,
		}
	}

	// cycle counts are the documented base costs. instructions marked page
	// sensitive cost one more cycle when address resolution crosses a page;
	// branches cost one more when taken and another when the branch target
	// is on a different page.

	add(0x69, Adc, Immediate, 2, false, Read)
	add(0x65, Adc, ZeroPage, 3, false, Read)
	add(0x75, Adc, ZeroPageIndexedX, 4, false, Read)
	add(0x6d, Adc, Absolute, 4, false, Read)
	add(0x7d, Adc, AbsoluteIndexedX, 4, true, Read)
	add(0x79, Adc, AbsoluteIndexedY, 4, true, Read)
	add(0x61, Adc, IndexedIndirect, 6, false, Read)
	add(0x71, Adc, IndirectIndexed, 5, true, Read)

	add(0x29, And, Immediate, 2, false, Read)
	add(0x25, And, ZeroPage, 3, false, Read)
	add(0x35, And, ZeroPageIndexedX, 4, false, Read)
	add(0x2d, And, Absolute, 4, false, Read)
	add(0x3d, And, AbsoluteIndexedX, 4, true, Read)
	add(0x39, And, AbsoluteIndexedY, 4, true, Read)
	add(0x21, And, IndexedIndirect, 6, false, Read)
	add(0x31, And, IndirectIndexed, 5, true, Read)

	add(0x0a, Asl, Accumulator, 2, false, Read)
	add(0x06, Asl, ZeroPage, 5, false, RMW)
	add(0x16, Asl, ZeroPageIndexedX, 6, false, RMW)
	add(0x0e, Asl, Absolute, 6, false, RMW)
	add(0x1e, Asl, AbsoluteIndexedX, 7, false, RMW)

	add(0x90, Bcc, Relative, 2, true, Flow)
	add(0xb0, Bcs, Relative, 2, true, Flow)
	add(0xf0, Beq, Relative, 2, true, Flow)
	add(0x30, Bmi, Relative, 2, true, Flow)
	add(0xd0, Bne, Relative, 2, true, Flow)
	add(0x10, Bpl, Relative, 2, true, Flow)
	add(0x50, Bvc, Relative, 2, true, Flow)
	add(0x70, Bvs, Relative, 2, true, Flow)

	add(0x24, Bit, ZeroPage, 3, false, Read)
	add(0x2c, Bit, Absolute, 4, false, Read)

	add(0x00, Brk, Implied, 7, false, Interrupt)

	add(0x18, Clc, Implied, 2, false, Read)
	add(0xd8, Cld, Implied, 2, false, Read)
	add(0x58, Cli, Implied, 2, false, Read)
	add(0xb8, Clv, Implied, 2, false, Read)

	add(0xc9, Cmp, Immediate, 2, false, Read)
	add(0xc5, Cmp, ZeroPage, 3, false, Read)
	add(0xd5, Cmp, ZeroPageIndexedX, 4, false, Read)
	add(0xcd, Cmp, Absolute, 4, false, Read)
	add(0xdd, Cmp, AbsoluteIndexedX, 4, true, Read)
	add(0xd9, Cmp, AbsoluteIndexedY, 4, true, Read)
	add(0xc1, Cmp, IndexedIndirect, 6, false, Read)
	add(0xd1, Cmp, IndirectIndexed, 5, true, Read)

	add(0xe0, Cpx, Immediate, 2, false, Read)
	add(0xe4, Cpx, ZeroPage, 3, false, Read)
	add(0xec, Cpx, Absolute, 4, false, Read)

	add(0xc0, Cpy, Immediate, 2, false, Read)
	add(0xc4, Cpy, ZeroPage, 3, false, Read)
	add(0xcc, Cpy, Absolute, 4, false, Read)

	add(0xc6, Dec, ZeroPage, 5, false, RMW)
	add(0xd6, Dec, ZeroPageIndexedX, 6, false, RMW)
	add(0xce, Dec, Absolute, 6, false, RMW)
	add(0xde, Dec, AbsoluteIndexedX, 7, false, RMW)

	add(0xca, Dex, Implied, 2, false, Read)
	add(0x88, Dey, Implied, 2, false, Read)

	add(0x49, Eor, Immediate, 2, false, Read)
	add(0x45, Eor, ZeroPage, 3, false, Read)
	add(0x55, Eor, ZeroPageIndexedX, 4, false, Read)
	add(0x4d, Eor, Absolute, 4, false, Read)
	add(0x5d, Eor, AbsoluteIndexedX, 4, true, Read)
	add(0x59, Eor, AbsoluteIndexedY, 4, true, Read)
	add(0x41, Eor, IndexedIndirect, 6, false, Read)
	add(0x51, Eor, IndirectIndexed, 5, true, Read)

	add(0xe6, Inc, ZeroPage, 5, false, RMW)
	add(0xf6, Inc, ZeroPageIndexedX, 6, false, RMW)
	add(0xee, Inc, Absolute, 6, false, RMW)
	add(0xfe, Inc, AbsoluteIndexedX, 7, false, RMW)

	add(0xe8, Inx, Implied, 2, false, Read)
	add(0xc8, Iny, Implied, 2, false, Read)

	add(0x4c, Jmp, Absolute, 3, false, Flow)
	add(0x6c, Jmp, Indirect, 5, false, Flow)

	add(0x20, Jsr, Absolute, 6, false, Subroutine)

	add(0xa9, Lda, Immediate, 2, false, Read)
	add(0xa5, Lda, ZeroPage, 3, false, Read)
	add(0xb5, Lda, ZeroPageIndexedX, 4, false, Read)
	add(0xad, Lda, Absolute, 4, false, Read)
	add(0xbd, Lda, AbsoluteIndexedX, 4, true, Read)
	add(0xb9, Lda, AbsoluteIndexedY, 4, true, Read)
	add(0xa1, Lda, IndexedIndirect, 6, false, Read)
	add(0xb1, Lda, IndirectIndexed, 5, true, Read)

	add(0xa2, Ldx, Immediate, 2, false, Read)
	add(0xa6, Ldx, ZeroPage, 3, false, Read)
	add(0xb6, Ldx, ZeroPageIndexedY, 4, false, Read)
	add(0xae, Ldx, Absolute, 4, false, Read)
	add(0xbe, Ldx, AbsoluteIndexedY, 4, true, Read)

	add(0xa0, Ldy, Immediate, 2, false, Read)
	add(0xa4, Ldy, ZeroPage, 3, false, Read)
	add(0xb4, Ldy, ZeroPageIndexedX, 4, false, Read)
	add(0xac, Ldy, Absolute, 4, false, Read)
	add(0xbc, Ldy, AbsoluteIndexedX, 4, true, Read)

	add(0x4a, Lsr, Accumulator, 2, false, Read)
	add(0x46, Lsr, ZeroPage, 5, false, RMW)
	add(0x56, Lsr, ZeroPageIndexedX, 6, false, RMW)
	add(0x4e, Lsr, Absolute, 6, false, RMW)
	add(0x5e, Lsr, AbsoluteIndexedX, 7, false, RMW)

	add(0xea, Nop, Implied, 2, false, Read)

	add(0x09, Ora, Immediate, 2, false, Read)
	add(0x05, Ora, ZeroPage, 3, false, Read)
	add(0x15, Ora, ZeroPageIndexedX, 4, false, Read)
	add(0x0d, Ora, Absolute, 4, false, Read)
	add(0x1d, Ora, AbsoluteIndexedX, 4, true, Read)
	add(0x19, Ora, AbsoluteIndexedY, 4, true, Read)
	add(0x01, Ora, IndexedIndirect, 6, false, Read)
	add(0x11, Ora, IndirectIndexed, 5, true, Read)

	add(0x48, Pha, Implied, 3, false, Read)
	add(0x08, Php, Implied, 3, false, Read)
	add(0x68, Pla, Implied, 4, false, Read)
	add(0x28, Plp, Implied, 4, false, Read)

	add(0x2a, Rol, Accumulator, 2, false, Read)
	add(0x26, Rol, ZeroPage, 5, false, RMW)
	add(0x36, Rol, ZeroPageIndexedX, 6, false, RMW)
	add(0x2e, Rol, Absolute, 6, false, RMW)
	add(0x3e, Rol, AbsoluteIndexedX, 7, false, RMW)

	add(0x6a, Ror, Accumulator, 2, false, Read)
	add(0x66, Ror, ZeroPage, 5, false, RMW)
	add(0x76, Ror, ZeroPageIndexedX, 6, false, RMW)
	add(0x6e, Ror, Absolute, 6, false, RMW)
	add(0x7e, Ror, AbsoluteIndexedX, 7, false, RMW)

	add(0x40, Rti, Implied, 6, false, Interrupt)
	add(0x60, Rts, Implied, 6, false, Subroutine)

	add(0xe9, Sbc, Immediate, 2, false, Read)
	add(0xe5, Sbc, ZeroPage, 3, false, Read)
	add(0xf5, Sbc, ZeroPageIndexedX, 4, false, Read)
	add(0xed, Sbc, Absolute, 4, false, Read)
	add(0xfd, Sbc, AbsoluteIndexedX, 4, true, Read)
	add(0xf9, Sbc, AbsoluteIndexedY, 4, true, Read)
	add(0xe1, Sbc, IndexedIndirect, 6, false, Read)
	add(0xf1, Sbc, IndirectIndexed, 5, true, Read)

	add(0x38, Sec, Implied, 2, false, Read)
	add(0xf8, Sed, Implied, 2, false, Read)
	add(0x78, Sei, Implied, 2, false, Read)

	add(0x85, Sta, ZeroPage, 3, false, Write)
	add(0x95, Sta, ZeroPageIndexedX, 4, false, Write)
	add(0x8d, Sta, Absolute, 4, false, Write)
	add(0x9d, Sta, AbsoluteIndexedX, 5, false, Write)
	add(0x99, Sta, AbsoluteIndexedY, 5, false, Write)
	add(0x81, Sta, IndexedIndirect, 6, false, Write)
	add(0x91, Sta, IndirectIndexed, 6, false, Write)

	add(0x86, Stx, ZeroPage, 3, false, Write)
	add(0x96, Stx, ZeroPageIndexedY, 4, false, Write)
	add(0x8e, Stx, Absolute, 4, false, Write)

	add(0x84, Sty, ZeroPage, 3, false, Write)
	add(0x94, Sty, ZeroPageIndexedX, 4, false, Write)
	add(0x8c, Sty, Absolute, 4, false, Write)

	add(0xaa, Tax, Implied, 2, false, Read)
	add(0xa8, Tay, Implied, 2, false, Read)
	add(0xba, Tsx, Implied, 2, false, Read)
	add(0x8a, Txa, Implied, 2, false, Read)
	add(0x9a, Txs, Implied, 2, false, Read)
	add(0x98, Tya, Implied, 2, false, Read)
}
