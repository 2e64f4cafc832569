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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/tracenes/tracenes/modalflag"
	"github.com/tracenes/tracenes/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"program", "a", "b"})

	res, err := md.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, int(res), int(modalflag.ParseContinue))
	test.Equate(t, md.Mode(), "")
	test.Equate(t, len(md.RemainingArgs()), 2)
	test.Equate(t, md.GetArg(0), "a")
	test.Equate(t, md.GetArg(2), "")
}

func TestSubModeSelection(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"program", "run", "some.prg"})
	md.AddSubModes("RUN", "DISASM")

	res, err := md.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, int(res), int(modalflag.ParseContinue))

	// mode words are case insensitive and normalised
	test.Equate(t, md.Mode(), "RUN")
	test.Equate(t, md.Path(), "program RUN")
	test.Equate(t, md.GetArg(0), "some.prg")
}

func TestModeFlags(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"program", "run", "-steps", "100", "some.prg"})
	md.AddSubModes("RUN")

	if _, err := md.Parse(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// flags after the mode word belong to the mode
	md.NewMode()
	steps := md.AddInt("steps", 0, "number of instructions")
	if _, err := md.Parse(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	test.Equate(t, *steps, 100)
	test.Equate(t, md.GetArg(0), "some.prg")
}

func TestUnrecognisedMode(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"program", "frobnicate"})
	md.AddSubModes("RUN")

	if _, err := md.Parse(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// an unrecognised word is left as an ordinary argument
	test.Equate(t, md.Mode(), "")
	test.Equate(t, md.GetArg(0), "frobnicate")
}
