package input

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Step holds a key combination for a number of frames.
type Step struct {
	Frames int      `yaml:"frames"`
	Keys   []string `yaml:"keys"`
}

// Script is a recorded key sequence used for headless playback.
type Script struct {
	steps []scriptStep
	total int
}

type scriptStep struct {
	end  int // exclusive frame index
	keys Set
}

// LoadScript reads a YAML script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: read %s: %w", path, err)
	}
	return ParseScript(data)
}

// ParseScript decodes a YAML list of steps:
//
//	- frames: 30
//	  keys: [left, u]
//	- frames: 10
func ParseScript(data []byte) (*Script, error) {
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("input: parse script: %w", err)
	}
	return NewScript(steps)
}

// NewScript builds a Script from steps. Steps with no frames are rejected.
func NewScript(steps []Step) (*Script, error) {
	s := &Script{}
	for i, st := range steps {
		if st.Frames <= 0 {
			return nil, fmt.Errorf("input: step %d: frames must be positive, got %d", i, st.Frames)
		}
		var set Set
		for _, name := range st.Keys {
			k, err := ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("input: step %d: %w", i, err)
			}
			set = set.With(k)
		}
		s.total += st.Frames
		s.steps = append(s.steps, scriptStep{end: s.total, keys: set})
	}
	return s, nil
}

// Len returns the number of frames covered by the script.
func (s *Script) Len() int { return s.total }

// At returns the keys held on frame. Frames past the end hold nothing.
func (s *Script) At(frame int) Set {
	if frame < 0 {
		return 0
	}
	for _, st := range s.steps {
		if frame < st.end {
			return st.keys
		}
	}
	return 0
}
