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

// Package monitor is the single-key interactive front end to the console.
// The terminal is put into cbreak mode through "github.com/pkg/term/termios"
// so that keys act immediately, without line buffering.
package monitor

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/tracenes/tracenes/curated"
	"github.com/tracenes/tracenes/hardware"
	"github.com/tracenes/tracenes/logger"
	"github.com/tracenes/tracenes/trace"
)

// number of instructions executed by the frame key.
const frameSteps = 1000

// Monitor is a minimal interactive debugger. One console, one terminal.
type Monitor struct {
	nes *hardware.NES

	input  *os.File
	output *os.File

	// terminal attributes for canonical mode (what we found) and cbreak
	// mode (what we run in)
	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(nes *hardware.NES) (*Monitor, error) {
	mon := &Monitor{
		nes:    nes,
		input:  os.Stdin,
		output: os.Stdout,
	}

	if err := termios.Tcgetattr(mon.input.Fd(), &mon.canAttr); err != nil {
		return nil, curated.Errorf("monitor: %v", err)
	}

	mon.cbreakAttr = mon.canAttr
	termios.Cfmakecbreak(&mon.cbreakAttr)

	return mon, nil
}

func (mon *Monitor) print(s string, a ...interface{}) {
	fmt.Fprintf(mon.output, s, a...)
}

func (mon *Monitor) printHelp() {
	mon.print("s step   f frame (%d steps)   i registers   l log   h help   q quit\n", frameSteps)
}

// Run the monitor loop until the quit key or an error. The terminal is
// restored to canonical mode on the way out.
func (mon *Monitor) Run() error {
	if err := termios.Tcsetattr(mon.input.Fd(), termios.TCIFLUSH, &mon.cbreakAttr); err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer termios.Tcsetattr(mon.input.Fd(), termios.TCIFLUSH, &mon.canAttr)

	mon.printHelp()
	mon.print("%v\n", mon.nes.CPU)

	key := make([]byte, 1)
	for {
		if _, err := mon.input.Read(key); err != nil {
			return curated.Errorf("monitor: %v", err)
		}

		switch key[0] {
		case 's':
			result, err := mon.nes.Step()
			if err != nil {
				return err
			}
			mon.print("%s\n", trace.Line(result))

		case 'f':
			err := mon.nes.RunSteps(frameSteps, nil)
			if err != nil {
				return err
			}
			mon.print("%s\n", trace.Line(mon.nes.CPU.LastResult))

		case 'i':
			mon.print("%v\n", mon.nes.CPU)

		case 'l':
			logger.Tail(mon.output, 10)

		case 'h':
			mon.printHelp()

		case 'q':
			return nil
		}
	}
}
