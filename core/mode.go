package core

import (
	"errors"
	"sort"
	"strings"
)

// ErrModeNotSupported occurs when a mode name is not recognised.
var ErrModeNotSupported = errors.New("mode not supported")

// Mode is a block chaining mode.
type Mode uint8

const (
	ECB Mode = iota + 1
	CBC
	CFB
)

var modeNames = map[string]Mode{
	"ecb": ECB,
	"cbc": CBC,
	"cfb": CFB,
}

func (m Mode) String() string {
	switch m {
	case ECB:
		return "ecb"
	case CBC:
		return "cbc"
	case CFB:
		return "cfb"
	}
	return "unknown"
}

// RequiresIV reports whether the mode needs an initialization vector.
func (m Mode) RequiresIV() bool { return m == CBC || m == CFB }

// ParseMode returns the Mode of the given case-insensitive name.
func ParseMode(name string) (Mode, error) {
	if m, ok := modeNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m, nil
	}
	return 0, ErrModeNotSupported
}

// ListModes returns the available mode names sorted alphabetically.
func ListModes() []string {
	var l []string
	for k := range modeNames {
		l = append(l, k)
	}
	sort.Strings(l)
	return l
}
