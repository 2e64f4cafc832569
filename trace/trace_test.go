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

package trace_test

import (
	"strings"
	"testing"

	"github.com/tracenes/tracenes/curated"
	"github.com/tracenes/tracenes/hardware"
	"github.com/tracenes/tracenes/hardware/memory/cartridge"
	"github.com/tracenes/tracenes/test"
	"github.com/tracenes/tracenes/trace"
)

func newConsole(t *testing.T, program ...uint8) *hardware.NES {
	t.Helper()

	data := make([]uint8, 16384)
	copy(data, program)
	data[0x3ffc] = 0x00
	data[0x3ffd] = 0x80

	mapper, err := cartridge.NewNROM(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nes := hardware.NewNES()
	nes.AttachCartridge(mapper)
	return nes
}

func TestLineStability(t *testing.T) {
	nes := newConsole(t,
		0xa9, 0x05, // LDA #$05
		0xea, // NOP
	)

	r, err := nes.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	test.Equate(t, trace.Line(r),
		"     0  8000  A9 LDA  A:05 X:00 Y:00 P:34 SP:FD  CYC:9")
}

func TestWriteThenCompare(t *testing.T) {
	program := []uint8{
		0xe8, // INX
		0x4c, 0x00, 0x80, // JMP $8000
	}

	s := &strings.Builder{}
	err := trace.Write(newConsole(t, program...), 20, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, len(strings.Split(strings.TrimSpace(s.String()), "\n")), 20)

	// a fresh console replays the log exactly
	err = trace.Compare(newConsole(t, program...), strings.NewReader(s.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCompareMismatch(t *testing.T) {
	s := &strings.Builder{}
	err := trace.Write(newConsole(t, 0xe8, 0x4c, 0x00, 0x80), 5, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// different program, same log
	err = trace.Compare(newConsole(t, 0xc8, 0x4c, 0x00, 0x80), strings.NewReader(s.String()))
	test.ExpectedFailure(t, err == nil)
	test.Equate(t, curated.Is(err, trace.MismatchError), true)
}

func TestCompareEmptyReference(t *testing.T) {
	err := trace.Compare(newConsole(t, 0xea), strings.NewReader(""))
	test.ExpectedFailure(t, err == nil)
}
