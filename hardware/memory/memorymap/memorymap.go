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

// Package memorymap describes the areas of the console's address space and
// how addresses normalise within each area. The memory package uses the
// MapAddress() function to route bus accesses; the disassembly and monitor
// packages use it to label addresses.
package memorymap

// Area represents the different areas of the address space.
type Area int

// The different memory areas in the console.
const (
	Undefined Area = iota
	RAM
	Ports
	Unmapped
	Cartridge
)

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case Ports:
		return "Ports"
	case Unmapped:
		return "Unmapped"
	case Cartridge:
		return "Cartridge"
	}
	return "undefined"
}

// The boundaries of each memory area.
const (
	OriginRAM       = uint16(0x0000)
	MemtopRAM       = uint16(0x1fff)
	OriginPorts     = uint16(0x2000)
	MemtopPorts     = uint16(0x3fff)
	OriginUnmapped  = uint16(0x4000)
	MemtopUnmapped  = uint16(0x7fff)
	OriginCartridge = uint16(0x8000)
	MemtopCartridge = uint16(0xffff)
)

// The masks that normalise an address within its area. RAM is 2k mirrored
// four times; the port window is eight registers mirrored throughout.
const (
	MaskRAM   = uint16(0x07ff)
	MaskPorts = uint16(0x0007)
)

// MapAddress translates an address from the CPU's point of view to its
// normalised form, along with the area the address touches. Addresses in the
// RAM and port areas fold down to their unmirrored equivalent; cartridge and
// unmapped addresses pass through unchanged.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopPorts:
		return OriginPorts | (address & MaskPorts), Ports
	case address <= MemtopUnmapped:
		return address, Unmapped
	}
	return address, Cartridge
}
