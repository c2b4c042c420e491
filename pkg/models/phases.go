package models

import "fmt"

// SearchPhase is the debounce lifecycle of the query
type SearchPhase int

const (
	PhaseIdle SearchPhase = iota
	PhaseDebouncing
	PhaseResultsReady
)

func (p SearchPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDebouncing:
		return "debouncing"
	case PhaseResultsReady:
		return "results_ready"
	default:
		return "unknown"
	}
}

// MarshalText renders the phase name in JSON and YAML output
func (p SearchPhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a phase name written by MarshalText
func (p *SearchPhase) UnmarshalText(text []byte) error {
	for _, phase := range []SearchPhase{PhaseIdle, PhaseDebouncing, PhaseResultsReady} {
		if phase.String() == string(text) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("unknown search phase %q", text)
}

// VisibilityPhase tracks whether the results surface is physically present
type VisibilityPhase int

const (
	VisibilityUnmounted VisibilityPhase = iota
	VisibilityMounted
	VisibilityHidingPending
)

func (v VisibilityPhase) String() string {
	switch v {
	case VisibilityUnmounted:
		return "unmounted"
	case VisibilityMounted:
		return "mounted"
	case VisibilityHidingPending:
		return "hiding_pending"
	default:
		return "unknown"
	}
}

// MarshalText renders the visibility name in JSON and YAML output
func (v VisibilityPhase) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses a visibility name written by MarshalText
func (v *VisibilityPhase) UnmarshalText(text []byte) error {
	for _, phase := range []VisibilityPhase{VisibilityUnmounted, VisibilityMounted, VisibilityHidingPending} {
		if phase.String() == string(text) {
			*v = phase
			return nil
		}
	}
	return fmt.Errorf("unknown visibility phase %q", text)
}
