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

package memory

// PortHandler implementations sit behind the port area of the address space.
// Register numbers are pre-normalised to the range 0 to 7.
type PortHandler interface {
	// Read the numbered register, running any read side effects
	Read(reg uint16) uint8

	// Peek the numbered register with no side effects
	Peek(reg uint16) uint8

	// Write the numbered register
	Write(reg uint16, data uint8)

	// Reset all registers to their power-on values
	Reset()

	// Snapshot returns a deep copy of the handler's state
	Snapshot() PortHandler
}

// register numbers inside the port window.
const (
	RegControl = uint16(0x0)
	RegMask    = uint16(0x1)
	RegStatus  = uint16(0x2)
)

// the latch bit in the status register that a read clears.
const StatusLatch = uint8(0x80)

// RegisterPorts is the default PortHandler. It models the eight register
// window as plain storage with one exception: reading the status register
// clears the latch bit. A read is therefore an event, which is why the
// micro-op trail distinguishes Read() from Peek().
type RegisterPorts struct {
	regs [8]uint8
}

// NewRegisterPorts is the preferred method of initialisation for
// RegisterPorts.
func NewRegisterPorts() *RegisterPorts {
	return &RegisterPorts{}
}

// Read implements the PortHandler interface.
func (p *RegisterPorts) Read(reg uint16) uint8 {
	data := p.regs[reg]
	if reg == RegStatus {
		p.regs[reg] &= ^StatusLatch
	}
	return data
}

// Peek implements the PortHandler interface.
func (p *RegisterPorts) Peek(reg uint16) uint8 {
	return p.regs[reg]
}

// Write implements the PortHandler interface.
func (p *RegisterPorts) Write(reg uint16, data uint8) {
	p.regs[reg] = data
}

// Reset implements the PortHandler interface.
func (p *RegisterPorts) Reset() {
	for i := range p.regs {
		p.regs[i] = 0
	}
}

// Snapshot implements the PortHandler interface.
func (p *RegisterPorts) Snapshot() PortHandler {
	n := *p
	return &n
}

// SetLatch raises the latch bit in the status register. Used by tests and
// the monitor to provoke the read side effect.
func (p *RegisterPorts) SetLatch() {
	p.regs[RegStatus] |= StatusLatch
}
