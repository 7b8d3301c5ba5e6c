// Package input describes the keys the rig reacts to and the per-frame
// key state the scene reads.
package input

import (
	"fmt"
	"strings"
)

// Key is a logical key.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyU
	KeyI
	KeyJ
	KeyK
	KeyEscape

	keyCount
)

var keyNames = [keyCount]string{
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyU:      "u",
	KeyI:      "i",
	KeyJ:      "j",
	KeyK:      "k",
	KeyEscape: "escape",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// ParseKey resolves a case-insensitive key name.
func ParseKey(s string) (Key, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range keyNames {
		if name == s {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("input: unknown key %q", s)
}

// Keys returns every known key.
func Keys() []Key {
	out := make([]Key, keyCount)
	for i := range out {
		out[i] = Key(i)
	}
	return out
}

// State reports whether a key is held during the current frame.
type State interface {
	Pressed(k Key) bool
}

// Set is a State backed by a bit set. The zero value has no key held.
type Set uint32

// NewSet returns a Set holding keys.
func NewSet(keys ...Key) Set {
	var s Set
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// With returns s with k held.
func (s Set) With(k Key) Set { return s | 1<<uint(k) }

// At returns s for every frame, so a Set can stand in for a Script.
func (s Set) At(int) Set { return s }

// Pressed implements State.
func (s Set) Pressed(k Key) bool { return s&(1<<uint(k)) != 0 }

func (s Set) String() string {
	var names []string
	for _, k := range Keys() {
		if s.Pressed(k) {
			names = append(names, k.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}
