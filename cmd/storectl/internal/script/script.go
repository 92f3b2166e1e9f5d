// Package script loads replay scripts for storectl.
package script

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/driftstore/pkg/errors"
	"github.com/go-drift/driftstore/pkg/store"
)

// SupportedMajor is the script format major version understood by Load.
const SupportedMajor = "v1"

// TypeField is the action field holding the action type.
const TypeField = "type"

// Script is a replay script.
type Script struct {
	Version string           `yaml:"version"`
	Name    string           `yaml:"name,omitempty"`
	State   map[string]any   `yaml:"state"`
	Actions []map[string]any `yaml:"actions"`
}

// Load reads and validates the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, scriptError("parse", fmt.Errorf("invalid YAML: %w", err))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.State == nil {
		s.State = map[string]any{}
	}
	return &s, nil
}

// Validate checks the version and that every action has a type.
func (s *Script) Validate() error {
	version := s.Version
	if version != "" && !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return scriptError("validate", fmt.Errorf("invalid version %q", s.Version))
	}
	if major := semver.Major(version); major != SupportedMajor {
		return scriptError("validate", fmt.Errorf("unsupported version %s (want %s.x.x)", major, SupportedMajor))
	}
	for i, a := range s.Actions {
		if t, ok := a[TypeField].(string); !ok || t == "" {
			return scriptError("validate", fmt.Errorf("action %d has no type", i))
		}
	}
	return nil
}

// StoreActions converts the script actions. Every field other than type
// becomes part of the payload.
func (s *Script) StoreActions() []store.Action {
	actions := make([]store.Action, 0, len(s.Actions))
	for _, raw := range s.Actions {
		payload := maps.Clone(raw)
		delete(payload, TypeField)
		if len(payload) == 0 {
			payload = nil
		}
		actions = append(actions, store.Action{Type: raw[TypeField].(string), Payload: payload})
	}
	return actions
}

func scriptError(op string, err error) error {
	return &errors.StoreError{
		Op:   "script." + op,
		Kind: errors.KindScript,
		Err:  err,
	}
}
