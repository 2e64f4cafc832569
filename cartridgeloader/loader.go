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

// Package cartridgeloader turns a file on disk into an attachable mapper.
// Images are raw program dumps; there is no container format to parse.
package cartridgeloader

import (
	"os"

	"github.com/tracenes/tracenes/curated"
	"github.com/tracenes/tracenes/hardware/memory/cartridge"
)

// Load reads the named file and wraps it in the appropriate mapper. Only the
// NROM layout is recognised, which the image sizes accepted by that mapper
// police well enough on their own.
func Load(filename string) (cartridge.Mapper, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}

	mapper, err := cartridge.NewNROM(data)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}

	return mapper, nil
}
