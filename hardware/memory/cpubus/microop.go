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

package cpubus

import "fmt"

// MicroOpKind distinguishes the two directions of a bus transaction.
type MicroOpKind int

// The two kinds of bus transaction.
const (
	ReadOp MicroOpKind = iota
	WriteOp
)

func (k MicroOpKind) String() string {
	if k == WriteOp {
		return "W"
	}
	return "R"
}

// MicroOp records one elementary bus transaction: the finest unit of
// observable bus activity. RelCycle is the cycle offset relative to the
// start of the instruction being executed; the opcode fetch is always at
// offset zero.
type MicroOp struct {
	Kind     MicroOpKind
	Address  uint16
	Data     uint8
	RelCycle int
}

func (op MicroOp) String() string {
	return fmt.Sprintf("%s %04x=%02x @%d", op.Kind, op.Address, op.Data, op.RelCycle)
}
