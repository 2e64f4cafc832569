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

package cartridge

import (
	"github.com/tracenes/tracenes/curated"
	"github.com/tracenes/tracenes/hardware/memory/memorymap"
)

// sizes of program image the nrom mapper accepts.
const (
	nromBankSize   = 16384
	nromDoubleBank = 32768
)

// nrom is the simplest mapper. The program image sits at the bottom of the
// cartridge area; a single-bank image is mirrored into the upper half so
// that the interrupt vectors are always visible at the top of the address
// space.
type nrom struct {
	data   []uint8
	mirror bool
}

// NewNROM is the preferred method of initialisation for the nrom mapper. The
// image must be exactly one or two banks long.
func NewNROM(data []uint8) (Mapper, error) {
	cart := &nrom{
		data:   make([]uint8, len(data)),
		mirror: len(data) == nromBankSize,
	}
	copy(cart.data, data)

	if len(data) != nromBankSize && len(data) != nromDoubleBank {
		return nil, curated.Errorf("nrom: unsupported image size (%d bytes)", len(data))
	}

	return cart, nil
}

// ID implements the Mapper interface.
func (cart *nrom) ID() string {
	return "NROM"
}

// CPURead implements the Mapper interface.
func (cart *nrom) CPURead(addr uint16) uint8 {
	if addr < memorymap.OriginCartridge {
		return 0x00
	}

	o := addr - memorymap.OriginCartridge
	if cart.mirror {
		o &= nromBankSize - 1
	}

	return cart.data[o]
}

// CPUWrite implements the Mapper interface. The nrom mapper has no mutable
// state so writes do nothing.
func (cart *nrom) CPUWrite(_ uint16, _ uint8) {
}

// Snapshot implements the Mapper interface.
func (cart *nrom) Snapshot() Mapper {
	n := *cart
	n.data = make([]uint8, len(cart.data))
	copy(n.data, cart.data)
	return &n
}
