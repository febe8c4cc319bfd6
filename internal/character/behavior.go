package character

import (
	"fmt"
	"strings"
)

// Behavior is the primary AI behavior of a character.
type Behavior int

const (
	BehaviorNone   Behavior = iota // Player-controlled
	BehaviorPatrol                 // Walk back and forth between non-open tiles
	BehaviorFollow                 // Chase the player when close, patrol otherwise
)

// String returns the configuration name of the behavior.
func (b Behavior) String() string {
	switch b {
	case BehaviorNone:
		return "none"
	case BehaviorPatrol:
		return "patrol"
	case BehaviorFollow:
		return "follow"
	default:
		return "unknown"
	}
}

// ParseBehavior converts a configuration name into a Behavior.
// The empty string means no behavior.
func ParseBehavior(s string) (Behavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BehaviorNone, nil
	case "patrol":
		return BehaviorPatrol, nil
	case "follow":
		return BehaviorFollow, nil
	default:
		return BehaviorNone, fmt.Errorf("character: unknown behavior %q", s)
	}
}
