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

// Package performance measures how fast the emulation runs on the host. The
// core itself never reads the wall clock; this package drives the console
// from the outside and does the timing on its behalf.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/tracenes/tracenes/hardware"
)

// Check runs the console flat out for the specified duration and reports the
// achieved instruction and cycle rates.
func Check(output io.Writer, nes *hardware.NES, duration time.Duration) error {
	startCycles := nes.CPU.Cycles
	startTime := time.Now()
	endTime := startTime.Add(duration)

	instructions := 0
	err := nes.Run(func() (bool, error) {
		instructions = int(nes.CPU.LastResult.Sequence) + 1
		return time.Now().Before(endTime), nil
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(startTime).Seconds()
	cycles := nes.CPU.Cycles - startCycles

	fmt.Fprintf(output, "%d instructions in %.2fs (%.0f ips, %.0f cps)\n",
		instructions, elapsed,
		float64(instructions)/elapsed, float64(cycles)/elapsed)

	return nil
}
