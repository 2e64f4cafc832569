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

package hardware_test

import (
	"testing"

	"github.com/tracenes/tracenes/hardware"
	"github.com/tracenes/tracenes/hardware/cpu/execution"
	"github.com/tracenes/tracenes/hardware/memory/cartridge"
	"github.com/tracenes/tracenes/hardware/memory/cpubus"
	"github.com/tracenes/tracenes/test"
)

// buildPRG assembles a 16k image with the program at the start of the
// cartridge window and the reset vector pointing at it.
func buildPRG(t *testing.T, program ...uint8) cartridge.Mapper {
	t.Helper()

	data := make([]uint8, 16384)
	copy(data, program)

	// vectors are at the very top of the image, which mirrors to $fffa
	data[0x3ffc] = 0x00
	data[0x3ffd] = 0x80

	mapper, err := cartridge.NewNROM(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return mapper
}

func TestConsoleScenario(t *testing.T) {
	nes := hardware.NewNES()
	nes.AttachCartridge(buildPRG(t,
		0xa9, 0x05, // LDA #$05
		0x85, 0x10, // STA $10
		0xa5, 0x10, // LDA $10
		0xea, // NOP
	))

	test.Equate(t, nes.CPU.PC.Address(), 0x8000)

	var results []execution.Result
	err := nes.RunSteps(4, func(r execution.Result) error {
		if err := r.IsValid(); err != nil {
			return err
		}
		results = append(results, r)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 7 reset cycles plus 2+3+3+2
	test.Equate(t, nes.CPU.Cycles, 17)
	test.Equate(t, nes.Mem.Peek(0x0010), 0x05)
	test.Equate(t, nes.CPU.A.Value(), 0x05)

	// the store instruction's write appears in its micro-op trail
	sta := results[1]
	test.Equate(t, sta.Mnemonic, "STA")
	test.Equate(t, len(sta.MicroOps), 3)
	test.Equate(t, sta.MicroOps[2].Kind == cpubus.WriteOp, true)
	test.Equate(t, sta.MicroOps[2].Address, 0x0010)
	test.Equate(t, sta.MicroOps[2].Data, 0x05)
}

func TestDeterminism(t *testing.T) {
	program := []uint8{
		0xa2, 0x00, // LDX #$00
		0xe8,       // INX
		0x8a,       // TXA
		0x48,       // PHA
		0x68,       // PLA
		0xc9, 0x10, // CMP #$10
		0xd0, 0xf8, // BNE -8
		0x4c, 0x00, 0x80, // JMP $8000
	}

	a := hardware.NewNES()
	a.AttachCartridge(buildPRG(t, program...))
	b := hardware.NewNES()
	b.AttachCartridge(buildPRG(t, program...))

	var trail []execution.Result
	err := a.RunSteps(500, func(r execution.Result) error {
		trail = append(trail, r)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	i := 0
	err = b.RunSteps(500, func(r execution.Result) error {
		w := trail[i]
		i++

		if r.Sequence != w.Sequence || r.Address != w.Address ||
			r.OpCode != w.OpCode || r.Cycles != w.Cycles ||
			r.StartCycle != w.StartCycle || r.Post != w.Post {
			t.Fatalf("consoles diverged at sequence %d", w.Sequence)
		}

		if len(r.MicroOps) != len(w.MicroOps) {
			t.Fatalf("micro-op trails diverged at sequence %d", w.Sequence)
		}
		for j := range r.MicroOps {
			if r.MicroOps[j] != w.MicroOps[j] {
				t.Fatalf("micro-op trails diverged at sequence %d", w.Sequence)
			}
		}

		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSnapshotForksTheRun(t *testing.T) {
	nes := hardware.NewNES()
	nes.AttachCartridge(buildPRG(t,
		0xe8, // INX
		0x4c, 0x00, 0x80, // JMP $8000
	))

	err := nes.RunSteps(10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fork := nes.Snapshot()
	test.Equate(t, fork.CPU.X.Value(), nes.CPU.X.Value())

	// the fork advances independently of the original
	err = fork.RunSteps(2, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, fork.CPU.X.Value(), nes.CPU.X.Value()+1)
	test.Equate(t, fork.CPU.Cycles > nes.CPU.Cycles, true)
}

func TestRunContinueCheck(t *testing.T) {
	nes := hardware.NewNES()
	nes.AttachCartridge(buildPRG(t,
		0x4c, 0x00, 0x80, // JMP $8000
	))

	frames := 0
	err := nes.Run(func() (bool, error) {
		frames++
		return frames < 3, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	test.Equate(t, frames, 3)
	test.Equate(t, nes.CPU.Cycles > 7, true)
}
