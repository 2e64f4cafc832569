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

package registers

import "fmt"

// StackPointer is the 8 bit stack pointer of the 6502 CPU. The stack lives in
// a fixed page of memory; the pointer wraps within that page and never
// carries into the page byte.
type StackPointer struct {
	value uint8
}

// StackOrigin is the base address of the one page of memory the stack
// pointer indexes into.
const StackOrigin = uint16(0x0100)

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#02x", sp.value)
}

// Value returns the current value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the full 16 bit address indexed by the stack pointer.
func (sp StackPointer) Address() uint16 {
	return StackOrigin | uint16(sp.value)
}

// Load a value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Decrement the stack pointer, as happens after a push. Wraps within the
// stack page.
func (sp *StackPointer) Decrement() {
	sp.value--
}

// Increment the stack pointer, as happens before a pull. Wraps within the
// stack page.
func (sp *StackPointer) Increment() {
	sp.value++
}
