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

// Package regression is the golden-log harness. Record() captures a run of a
// program as a trace log; Verify() replays the program against the stored
// log and fails on the first divergence. Because the emulation is
// deterministic a verification failure always means the emulation has
// changed, never that the program has.
package regression

import (
	"os"

	"github.com/tracenes/tracenes/cartridgeloader"
	"github.com/tracenes/tracenes/curated"
	"github.com/tracenes/tracenes/hardware"
	"github.com/tracenes/tracenes/trace"
)

func newConsole(romFile string) (*hardware.NES, error) {
	mapper, err := cartridgeloader.Load(romFile)
	if err != nil {
		return nil, err
	}

	nes := hardware.NewNES()
	nes.AttachCartridge(mapper)
	return nes, nil
}

// Record runs the program for the specified number of instructions and
// stores the resulting trace log in logFile, overwriting any previous
// recording.
func Record(romFile string, numSteps int, logFile string) error {
	nes, err := newConsole(romFile)
	if err != nil {
		return err
	}

	output, err := os.Create(logFile)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer output.Close()

	return trace.Write(nes, numSteps, output)
}

// Verify replays the program against a stored trace log. The length of the
// run is decided by the log.
func Verify(romFile string, logFile string) error {
	nes, err := newConsole(romFile)
	if err != nil {
		return err
	}

	reference, err := os.Open(logFile)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer reference.Close()

	return trace.Compare(nes, reference)
}
