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

package main

import (
	"fmt"
	"os"

	"github.com/tracenes/tracenes/cartridgeloader"
	"github.com/tracenes/tracenes/disassembly"
	"github.com/tracenes/tracenes/hardware"
	"github.com/tracenes/tracenes/logger"
	"github.com/tracenes/tracenes/modalflag"
	"github.com/tracenes/tracenes/monitor"
	"github.com/tracenes/tracenes/performance"
	"github.com/tracenes/tracenes/regression"
	"github.com/tracenes/tracenes/statsview"
	"github.com/tracenes/tracenes/trace"
	"github.com/tracenes/tracenes/version"
)

const defaultSteps = 10000

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args)
	md.AddSubModes("RUN", "DEBUG", "DISASM", "REGRESS")
	showVersion := md.AddBool("version", false, "display version and exit")

	res, err := md.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
	if res == modalflag.ParseHelp {
		os.Exit(2)
	}
	if *showVersion {
		fmt.Printf("%s %s\n", version.ApplicationName, version.Version())
		os.Exit(0)
	}

	switch md.Mode() {
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "REGRESS":
		err = regress(md)
	default:
		err = run(md)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

// newConsole loads the cartridge named by the first remaining argument.
func newConsole(md *modalflag.Modes) (*hardware.NES, error) {
	romFile := md.GetArg(0)
	if romFile == "" {
		return nil, fmt.Errorf("%s: no cartridge file specified", md.Path())
	}

	mapper, err := cartridgeloader.Load(romFile)
	if err != nil {
		return nil, err
	}

	nes := hardware.NewNES()
	nes.AttachCartridge(mapper)
	return nes, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	steps := md.AddInt("steps", defaultSteps, "number of instructions to run")
	traceRun := md.AddBool("trace", false, "write the trace log to stdout")
	perf := md.AddDuration("perf", 0, "run flat out for the duration and report the speed")
	stats := md.AddBool("stats", statsview.Available(), "launch stats server")
	echoLog := md.AddBool("log", false, "echo log entries to stderr")

	if res, err := md.Parse(); err != nil || res != modalflag.ParseContinue {
		return err
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}
	if *stats && statsview.Available() {
		statsview.Launch(os.Stdout)
	}

	nes, err := newConsole(md)
	if err != nil {
		return err
	}

	if *perf > 0 {
		return performance.Check(os.Stdout, nes, *perf)
	}

	if *traceRun {
		return trace.Write(nes, *steps, os.Stdout)
	}

	err = nes.RunSteps(*steps, nil)
	if err != nil {
		return err
	}
	fmt.Println(trace.Line(nes.CPU.LastResult))

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()
	echoLog := md.AddBool("log", false, "echo log entries to stderr")

	if res, err := md.Parse(); err != nil || res != modalflag.ParseContinue {
		return err
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	nes, err := newConsole(md)
	if err != nil {
		return err
	}

	mon, err := monitor.NewMonitor(nes)
	if err != nil {
		return err
	}

	return mon.Run()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	if res, err := md.Parse(); err != nil || res != modalflag.ParseContinue {
		return err
	}

	romFile := md.GetArg(0)
	if romFile == "" {
		return fmt.Errorf("%s: no cartridge file specified", md.Path())
	}

	mapper, err := cartridgeloader.Load(romFile)
	if err != nil {
		return err
	}

	return disassembly.Write(os.Stdout, mapper)
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RECORD", "VERIFY")
	steps := md.AddInt("steps", defaultSteps, "number of instructions to record")

	if res, err := md.Parse(); err != nil || res != modalflag.ParseContinue {
		return err
	}

	romFile := md.GetArg(0)
	logFile := md.GetArg(1)
	if romFile == "" || logFile == "" {
		return fmt.Errorf("%s: specify a cartridge file and a log file", md.Path())
	}

	var err error
	var verb string

	switch md.Mode() {
	case "RECORD":
		verb = "recorded"
		err = regression.Record(romFile, *steps, logFile)
	case "VERIFY":
		verb = "verified"
		err = regression.Verify(romFile, logFile)
	default:
		return fmt.Errorf("%s: specify RECORD or VERIFY", md.Path())
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s %s against %s\n", verb, romFile, logFile)

	return nil
}
