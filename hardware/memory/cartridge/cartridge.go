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

// Package cartridge fulfils the cartridge area of the address space. The
// Cartridge type is the fixed point the bus talks to; the actual behaviour
// of an access is delegated to whichever mapper implementation is attached.
package cartridge

import (
	"github.com/tracenes/tracenes/logger"
)

// Mapper implementations decide what an access to the cartridge area of the
// bus actually does. Addresses arrive exactly as the CPU issued them.
type Mapper interface {
	// ID returns the canonical name of the mapper
	ID() string

	// CPURead returns the data at the (unnormalised) address
	CPURead(addr uint16) uint8

	// CPUWrite updates mapper state in response to a bus write. Most
	// mappers ignore writes entirely
	CPUWrite(addr uint16, data uint8)

	// Snapshot returns a deep copy of the mapper's mutable state
	Snapshot() Mapper
}

// Cartridge is the cartridge-slot end of the bus. It is always present even
// when no mapper is attached.
type Cartridge struct {
	mapper Mapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The slot starts out empty.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

// Attach puts a mapper in the slot, replacing whatever was there before.
func (cart *Cartridge) Attach(mapper Mapper) {
	cart.mapper = mapper
	logger.Logf("cartridge", "attached %s", mapper.ID())
}

// Eject removes the attached mapper. Reads from an empty slot return zero.
func (cart *Cartridge) Eject() {
	cart.mapper = ejected{}
}

// ID returns the ID of the attached mapper.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// Read delegates to the attached mapper.
func (cart *Cartridge) Read(addr uint16) uint8 {
	return cart.mapper.CPURead(addr)
}

// Write delegates to the attached mapper.
func (cart *Cartridge) Write(addr uint16, data uint8) {
	cart.mapper.CPUWrite(addr, data)
}

// Snapshot returns a deep copy of the Cartridge, including the attached
// mapper's state.
func (cart *Cartridge) Snapshot() *Cartridge {
	return &Cartridge{mapper: cart.mapper.Snapshot()}
}

// the ejected mapper stands in when the slot is empty. all reads return zero
// and writes disappear.
type ejected struct{}

func (ejected) ID() string {
	return "ejected"
}

func (ejected) CPURead(_ uint16) uint8 {
	return 0x00
}

func (ejected) CPUWrite(_ uint16, _ uint8) {
}

func (e ejected) Snapshot() Mapper {
	return e
}
