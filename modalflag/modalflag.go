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

// Package modalflag layers sub-modes on top of the flag package from the
// standard library. The program name is followed by an optional mode word,
// which is followed by flags and arguments belonging to that mode; modes can
// themselves declare sub-modes. The flag package does all the parsing, this
// package only decides which FlagSet is in play.
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// Modes is the parse state of the command line. Create one with NewArgs(),
// then alternate AddSubModes()/Parse()/NewMode() until the mode path is
// fully resolved.
type Modes struct {
	Output io.Writer

	// the sequence of modes already chosen. index 0 is the program name
	path []string

	// arguments not yet parsed
	args []string

	// the flag set for the current mode
	flags *flag.FlagSet

	// sub-modes accepted at this level, stored upper case
	submodes []string
}

// ParseResult is the outcome of a call to Parse().
type ParseResult int

// The possible ParseResult values.
const (
	ParseError ParseResult = iota

	// parsing was interrupted by a help request. not an error but the
	// caller should stop
	ParseHelp

	ParseContinue
)

// NewArgs initialises the Modes value with the complete argument list,
// including the program name.
func (md *Modes) NewArgs(args []string) {
	md.path = md.path[:0]
	md.args = args[1:]
	md.path = append(md.path, args[0])
	md.NewMode()
}

// NewMode prepares a fresh flag set for the next level of parsing. The mode
// chosen by the previous Parse() becomes part of the mode path.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet(md.Path(), flag.ContinueOnError)
	md.flags.SetOutput(md.Output)
	md.submodes = md.submodes[:0]
}

// AddSubModes declares the mode words accepted at this level. Matching is
// case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, s := range submodes {
		md.submodes = append(md.submodes, strings.ToUpper(s))
	}
	sort.Strings(md.submodes)
}

// Mode returns the mode currently being parsed. The empty string before the
// first Parse() and for flag-only programs.
func (md *Modes) Mode() string {
	if len(md.path) < 2 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns the full mode path, program name included.
func (md *Modes) Path() string {
	return strings.Join(md.path, " ")
}

// Parse the current mode level. If the first remaining argument names one of
// the declared sub-modes it is consumed and becomes the new mode; flags
// before it belong to this level.
func (md *Modes) Parse() (ParseResult, error) {
	if err := md.flags.Parse(md.args); err != nil {
		if err == flag.ErrHelp {
			if len(md.submodes) > 0 {
				fmt.Fprintf(md.Output, "modes: %s\n", strings.Join(md.submodes, ", "))
			}
			return ParseHelp, nil
		}
		return ParseError, err
	}

	md.args = md.flags.Args()

	if len(md.submodes) > 0 && len(md.args) > 0 {
		maybe := strings.ToUpper(md.args[0])
		for _, s := range md.submodes {
			if s == maybe {
				md.path = append(md.path, maybe)
				md.args = md.args[1:]
				break
			}
		}
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments left over after parsing.
func (md *Modes) RemainingArgs() []string {
	return md.args
}

// GetArg returns the numbered remaining argument, or the empty string if
// there are not that many.
func (md *Modes) GetArg(i int) string {
	if i >= len(md.args) {
		return ""
	}
	return md.args[i]
}

// AddBool adds a boolean flag to the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt adds an integer flag to the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString adds a string flag to the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddDuration adds a duration flag to the current mode.
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}
