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

// Package trace turns the execution record of a run into a golden log: one
// fixed-width line per instruction, derived only from Result values. Because
// the emulation is deterministic the log is a complete fingerprint of a run
// and two logs can be compared line by line.
package trace

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tracenes/tracenes/curated"
	"github.com/tracenes/tracenes/hardware"
	"github.com/tracenes/tracenes/hardware/cpu/execution"
)

// Line formats a single execution result as one log line.
func Line(r execution.Result) string {
	return fmt.Sprintf("%6d  %04X  %02X %-3s  A:%02X X:%02X Y:%02X P:%02X SP:%02X  CYC:%d",
		r.Sequence, r.Address, r.OpCode, r.Mnemonic,
		r.Post.A, r.Post.X, r.Post.Y, r.Post.P, r.Post.SP, r.Post.Cycles)
}

// Write runs the console for the specified number of instructions, writing
// the log to output.
func Write(nes *hardware.NES, numSteps int, output io.Writer) error {
	buf := bufio.NewWriter(output)

	err := nes.RunSteps(numSteps, func(r execution.Result) error {
		if _, err := buf.WriteString(Line(r)); err != nil {
			return curated.Errorf("trace: %v", err)
		}
		if err := buf.WriteByte('\n'); err != nil {
			return curated.Errorf("trace: %v", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := buf.Flush(); err != nil {
		return curated.Errorf("trace: %v", err)
	}

	return nil
}

// sentinel error pattern returned by Compare on the first mismatched line.
const MismatchError = "trace: mismatch at line %d\nran: %s\nref: %s"

// Compare runs the console against a reference log, one instruction per
// line, failing on the first line that differs. The run ends when the
// reference is exhausted; a reference with no lines at all is an error.
func Compare(nes *hardware.NES, reference io.Reader) error {
	scanner := bufio.NewScanner(reference)

	line := 0
	for scanner.Scan() {
		ref := scanner.Text()
		line++

		result, err := nes.Step()
		if err != nil {
			return err
		}

		if ran := Line(result); ran != ref {
			return curated.Errorf(MismatchError, line, ran, ref)
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("trace: %v", err)
	}

	if line == 0 {
		return curated.Errorf("trace: reference log is empty")
	}

	return nil
}
