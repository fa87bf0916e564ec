// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package recorder

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/input"
)

const (
	fieldCycle int = iota
	fieldKeys
	fieldHash
	numFields
)

const fieldSep = ", "

// the keys field of the final entry in a transcript
const keysEnd = "END"

const (
	lineProgramName int = iota
	lineProgramHash
	lineSeed
	lineTimerSync
	lineCyclesPerFrame
	numHeaderLines
)

func (rec *Recorder) writeHeader() error {
	lines := make([]string, numHeaderLines)

	lines[lineProgramName] = rec.loader.Filename
	lines[lineProgramHash] = rec.loader.Hash
	lines[lineSeed] = fmt.Sprintf("%d", rec.seed)
	lines[lineTimerSync] = rec.c.Prefs.Sync().String()
	lines[lineCyclesPerFrame] = fmt.Sprintf("%d", rec.c.Prefs.CyclesPerFrame.Get().(int))

	return rec.write(strings.Join(lines, "\n") + "\n")
}

func (rec *Recorder) writeEntry(keys string) error {
	line := strings.Join([]string{
		fmt.Sprintf("%d", rec.c.Cycles),
		keys,
		rec.digest.Hash(),
	}, fieldSep)

	return rec.write(line + "\n")
}

func (rec *Recorder) write(s string) error {
	n, err := io.WriteString(rec.output, s)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	if n != len(s) {
		return curated.Errorf("recorder: %v", "output truncated")
	}
	return nil
}

// parseSnapshot is the inverse of input.Snapshot.String().
func parseSnapshot(s string) (input.Snapshot, error) {
	var keys input.Snapshot

	if len(s) != input.NumKeys {
		return keys, fmt.Errorf("keys field should be %d characters", input.NumKeys)
	}

	for k, c := range s {
		switch {
		case c == '-':
		case c == rune("0123456789ABCDEF"[k]):
			keys[k] = true
		default:
			return keys, fmt.Errorf("unexpected character (%c) in keys field", c)
		}
	}

	return keys, nil
}
