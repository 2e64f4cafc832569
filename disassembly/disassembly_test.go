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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/tracenes/tracenes/disassembly"
	"github.com/tracenes/tracenes/hardware/memory/cartridge"
	"github.com/tracenes/tracenes/test"
)

func buildMapper(t *testing.T, program ...uint8) cartridge.Mapper {
	t.Helper()

	data := make([]uint8, 16384)
	copy(data, program)

	mapper, err := cartridge.NewNROM(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return mapper
}

func TestFormatInstruction(t *testing.T) {
	mapper := buildMapper(t,
		0xa9, 0x05, // LDA #$05
		0x8d, 0x34, 0x12, // STA $1234
		0xea,       // NOP
		0x0a,       // ASL A
		0xd0, 0xfe, // BNE -2
		0xb1, 0x10, // LDA ($10),Y
		0x02, // undefined
	)

	line, next := disassembly.FormatInstruction(mapper, 0x8000)
	test.Equate(t, line, "8000  A9 05     LDA #$05")
	test.Equate(t, next, 0x8002)

	line, next = disassembly.FormatInstruction(mapper, next)
	test.Equate(t, line, "8002  8D 34 12  STA $1234")
	test.Equate(t, next, 0x8005)

	line, next = disassembly.FormatInstruction(mapper, next)
	test.Equate(t, line, "8005  EA        NOP")

	line, next = disassembly.FormatInstruction(mapper, next)
	test.Equate(t, line, "8006  0A        ASL A")

	// branch target is relative to the following instruction
	line, next = disassembly.FormatInstruction(mapper, next)
	test.Equate(t, line, "8007  D0 FE     BNE $8007")

	line, next = disassembly.FormatInstruction(mapper, next)
	test.Equate(t, line, "8009  B1 10     LDA ($10),Y")

	line, next = disassembly.FormatInstruction(mapper, next)
	test.Equate(t, line, "800B  02        .byte $02")
	test.Equate(t, next, 0x800c)
}

func TestWriteCoversWindow(t *testing.T) {
	mapper := buildMapper(t, 0xea)

	s := &strings.Builder{}
	if err := disassembly.Write(s, mapper); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(s.String()), "\n")

	// the image is full of zero bytes, which decode as BRK with a padding
	// byte, so the listing is roughly half the window size
	test.Equate(t, strings.HasPrefix(lines[0], "8000"), true)
	test.Equate(t, strings.HasPrefix(lines[len(lines)-1], "FFF"), true)
}
