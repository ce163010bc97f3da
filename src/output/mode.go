// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package output

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is returned by [ParseMode] for an unrecognised mode name.
var ErrUnknownMode = errors.New("output: unknown display mode")

// Mode selects how a result is displayed.
type Mode int

const (
	// Plain prints "Domain: ... | Days until Certification expires: N".
	Plain Mode = iota
	// Short prints only the day count.
	Short
	// JSON prints {"domain": ..., "days": ...}.
	JSON
	// Table prints a markdown table with the expiry date.
	Table
)

var modeNames = map[Mode]string{
	Plain: "plain",
	Short: "short",
	JSON:  "json",
	Table: "table",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a mode name to its Mode. The empty string is Plain.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return Plain, nil
	}
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return Plain, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Select picks the mode from the command-line switches. JSON wins over short,
// short over table; with no switch set, fallback is used.
func Select(jsonOut, shortOut, tableOut bool, fallback Mode) Mode {
	switch {
	case jsonOut:
		return JSON
	case shortOut:
		return Short
	case tableOut:
		return Table
	default:
		return fallback
	}
}
