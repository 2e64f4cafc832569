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
	"fmt"

	"github.com/tracenes/tracenes/hardware/cpu/instructions"
	"github.com/tracenes/tracenes/hardware/memory/cpubus"
)

// Registers is the snapshot of CPU state taken immediately after an
// instruction has executed. The P field carries the status register in its
// uint8 form, unused bit set.
type Registers struct {
	A      uint8
	X      uint8
	Y      uint8
	P      uint8
	SP     uint8
	PC     uint16
	Cycles uint64
}

func (r Registers) String() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X PC:%04X CYC:%d",
		r.A, r.X, r.Y, r.P, r.SP, r.PC, r.Cycles)
}

// Result records the execution of one instruction: the unit of deterministic
// replay evidence. Two identically constructed consoles running the same ROM
// produce identical Result sequences at every index, forever.
//
// The MicroOps slice is a copy taken from the bus at the end of the
// instruction; it is owned by the Result and never aliased by the bus.
type Result struct {
	// monotonically increasing, one per executed instruction, starting at
	// zero after reset
	Sequence uint64

	// address the opcode was fetched from
	Address uint16

	OpCode   uint8
	Mnemonic string

	// nil for opcodes outside the documented instruction set
	Defn *instructions.Definition

	// value of the CPU cycle counter when the instruction started and the
	// number of cycles the instruction consumed
	StartCycle uint64
	Cycles     int

	PageFault   bool
	BranchTaken bool

	MicroOps []cpubus.MicroOp

	// register state after execution
	Post Registers
}

func (r Result) String() string {
	return fmt.Sprintf("%04d %04X %02X %s %s", r.Sequence, r.Address, r.OpCode, r.Mnemonic, r.Post)
}
