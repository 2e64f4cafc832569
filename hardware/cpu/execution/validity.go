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

package execution

import (
	"github.com/tracenes/tracenes/curated"
)

// number of cycles consumed by an opcode with no definition.
const UnknownOpcodeCycles = 2

// sentinel mnemonic recorded for opcodes with no definition.
const UnknownOpcodeMnemonic = "???"

// IsValid checks whether the instance of Result contains information
// consistent with its instruction definition. The CPU package doesn't call
// this function because of the performance penalty, but it is useful in
// debugging and testing contexts.
func (r Result) IsValid() error {
	if r.Defn == nil {
		// unknown opcodes consume a fixed penalty and carry the sentinel
		// mnemonic. anything else in the record means the CPU has
		// mis-assembled it
		if r.Mnemonic != UnknownOpcodeMnemonic {
			return curated.Errorf("execution: unknown opcode with unexpected mnemonic (%s)", r.Mnemonic)
		}
		if r.Cycles != UnknownOpcodeCycles {
			return curated.Errorf("execution: unknown opcode with unexpected cycle count (%d)", r.Cycles)
		}
		return nil
	}

	if r.Mnemonic != r.Defn.Mnemonic() {
		return curated.Errorf("execution: mnemonic does not match definition (%s and %s)", r.Mnemonic, r.Defn.Mnemonic())
	}

	if !r.Defn.PageSensitive && r.PageFault {
		return curated.Errorf("execution: unexpected page fault (%s)", r.Mnemonic)
	}

	if r.BranchTaken && !r.Defn.IsBranch() {
		return curated.Errorf("execution: branch taken on a non-branch instruction (%s)", r.Mnemonic)
	}

	// cycle windows. branches can cost up to two cycles over the base cost;
	// page sensitive instructions one
	if r.Defn.IsBranch() {
		if r.Cycles != r.Defn.Cycles && r.Cycles != r.Defn.Cycles+1 && r.Cycles != r.Defn.Cycles+2 {
			return curated.Errorf("execution: cycle count wrong for %#02x [%s] (%d instead of %d, %d or %d)",
				r.Defn.OpCode, r.Mnemonic, r.Cycles,
				r.Defn.Cycles, r.Defn.Cycles+1, r.Defn.Cycles+2)
		}
	} else if r.Defn.PageSensitive {
		if r.Cycles != r.Defn.Cycles && r.Cycles != r.Defn.Cycles+1 {
			return curated.Errorf("execution: cycle count wrong for %#02x [%s] (%d instead of %d or %d)",
				r.Defn.OpCode, r.Mnemonic, r.Cycles,
				r.Defn.Cycles, r.Defn.Cycles+1)
		}
	} else {
		if r.Cycles != r.Defn.Cycles {
			return curated.Errorf("execution: cycle count wrong for %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Mnemonic, r.Cycles, r.Defn.Cycles)
		}
	}

	// micro-op offsets start at zero and never decrease
	rel := 0
	for _, op := range r.MicroOps {
		if op.RelCycle < rel {
			return curated.Errorf("execution: micro-op cycle offsets out of order (%s)", op)
		}
		rel = op.RelCycle
	}
	if len(r.MicroOps) > 0 && r.MicroOps[0].RelCycle != 0 {
		return curated.Errorf("execution: first micro-op is not the opcode fetch (%s)", r.MicroOps[0])
	}

	return nil
}
