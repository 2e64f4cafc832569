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

package hardware

import (
	"github.com/tracenes/tracenes/hardware/cpu/execution"
)

// number of instructions executed between calls to the continue check in
// Run(). there is no video beam to pace against so a fixed instruction
// budget stands in for the frame.
const stepsPerFrame = 1000

// Run the console until the continueCheck callback says otherwise. The
// callback runs once per frame rather than once per instruction, so a
// stopping condition can be up to stepsPerFrame instructions stale.
//
// A nil continueCheck runs forever.
func (nes *NES) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	cont := true
	for cont {
		for i := 0; i < stepsPerFrame; i++ {
			if _, err := nes.CPU.Step(); err != nil {
				return err
			}
		}

		var err error
		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunSteps executes a fixed number of instructions, handing every result to
// the onStep callback. A non-nil error from the callback ends the run early.
// This is the entry point used by the trace, regression and performance
// packages: unlike Run() it promises that the callback sees every
// instruction.
func (nes *NES) RunSteps(numSteps int, onStep func(execution.Result) error) error {
	for i := 0; i < numSteps; i++ {
		result, err := nes.CPU.Step()
		if err != nil {
			return err
		}
		if onStep != nil {
			if err := onStep(result); err != nil {
				return err
			}
		}
	}

	return nil
}
