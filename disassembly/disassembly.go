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

// Package disassembly produces a static listing of a cartridge. The walk is
// linear: it decodes from the start of the cartridge window without
// following flow, so data interleaved with code will decode as nonsense.
// Good enough for eyeballing small programs.
package disassembly

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tracenes/tracenes/curated"
	"github.com/tracenes/tracenes/hardware/cpu/instructions"
	"github.com/tracenes/tracenes/hardware/memory/cartridge"
	"github.com/tracenes/tracenes/hardware/memory/memorymap"
)

// operand formats the operand field of a listing line.
func operand(defn *instructions.Definition, val uint16, next uint16) string {
	switch defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", val)
	case instructions.Relative:
		return fmt.Sprintf("$%04X", next+uint16(int8(val)))
	case instructions.Absolute:
		return fmt.Sprintf("$%04X", val)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X", val)
	case instructions.Indirect:
		return fmt.Sprintf("($%04X)", val)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02X,X)", val)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02X),Y", val)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04X,X", val)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04X,Y", val)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02X,X", val)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02X,Y", val)
	}
	return ""
}

// FormatInstruction produces one listing line for the instruction at the
// address, returning the line and the address of the next instruction.
func FormatInstruction(mapper cartridge.Mapper, addr uint16) (string, uint16) {
	defns := instructions.GetDefinitions()

	opcode := mapper.CPURead(addr)
	defn := defns[opcode]
	if defn == nil {
		return fmt.Sprintf("%04X  %02X        .byte $%02X", addr, opcode, opcode), addr + 1
	}

	var val uint16
	var bytes string

	switch defn.Bytes {
	case 1:
		bytes = fmt.Sprintf("%02X      ", opcode)
	case 2:
		lo := mapper.CPURead(addr + 1)
		val = uint16(lo)
		bytes = fmt.Sprintf("%02X %02X   ", opcode, lo)
	case 3:
		lo := mapper.CPURead(addr + 1)
		hi := mapper.CPURead(addr + 2)
		val = uint16(lo) | (uint16(hi) << 8)
		bytes = fmt.Sprintf("%02X %02X %02X", opcode, lo, hi)
	}

	next := addr + uint16(defn.Bytes)
	line := fmt.Sprintf("%04X  %s  %s", addr, bytes, defn.Mnemonic())
	if op := operand(defn, val, next); op != "" {
		line = fmt.Sprintf("%s %s", line, op)
	}

	return line, next
}

// Write the complete listing of the cartridge window to output.
func Write(output io.Writer, mapper cartridge.Mapper) error {
	buf := bufio.NewWriter(output)

	addr := memorymap.OriginCartridge
	for addr >= memorymap.OriginCartridge {
		line, next := FormatInstruction(mapper, addr)
		if _, err := fmt.Fprintln(buf, line); err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
		addr = next
	}

	if err := buf.Flush(); err != nil {
		return curated.Errorf("disassembly: %v", err)
	}

	return nil
}
