// Package events parses the event lines the firmware writes on its
// serial console. The format is "ev <kind> k=v ...", one event per line;
// anything that does not start with "ev " is a plain log line.
package events

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the event type.
type Kind string

const (
	KindKey     Kind = "key"
	KindEncoder Kind = "enc"
	KindButton  Kind = "encbtn"
	KindMode    Kind = "mode"
	KindScreen  Kind = "screen"
)

// Event is one parsed device event.
type Event struct {
	Kind Kind
	Time time.Time

	// Key events.
	Key  int
	Down bool

	// Encoder events.
	Delta    int
	Position int

	// Mode and screen events.
	Name string
}

// IsEventLine reports whether a console line carries an event.
func IsEventLine(line string) bool {
	return strings.HasPrefix(line, "ev ")
}

// Parse decodes one event line. The caller should check IsEventLine
// first; non-event lines return an error.
func Parse(line string, now time.Time) (Event, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "ev" {
		return Event{}, fmt.Errorf("not an event line: %q", line)
	}

	ev := Event{Time: now}
	kind := ""
	kv := map[string]string{}
	for _, f := range fields[1:] {
		if k, v, found := strings.Cut(f, "="); found {
			kv[k] = v
		} else if kind == "" {
			kind = f
		} else {
			return Event{}, fmt.Errorf("malformed field %q in %q", f, line)
		}
	}

	switch {
	case kv["key"] != "":
		ev.Kind = KindKey
		key, err := strconv.Atoi(kv["key"])
		if err != nil {
			return Event{}, fmt.Errorf("bad key index in %q: %w", line, err)
		}
		ev.Key = key
		switch kv["act"] {
		case "down":
			ev.Down = true
		case "up":
			ev.Down = false
		default:
			return Event{}, fmt.Errorf("bad key action in %q", line)
		}

	case kind == "encbtn":
		ev.Kind = KindButton
		ev.Down = kv["act"] == "down"

	case kind == "enc":
		ev.Kind = KindEncoder
		delta, err := strconv.Atoi(kv["delta"])
		if err != nil {
			return Event{}, fmt.Errorf("bad delta in %q: %w", line, err)
		}
		pos, err := strconv.Atoi(kv["pos"])
		if err != nil {
			return Event{}, fmt.Errorf("bad position in %q: %w", line, err)
		}
		ev.Delta = delta
		ev.Position = pos

	case kind == "mode":
		ev.Kind = KindMode
		ev.Name = kv["val"]

	case kind == "screen":
		ev.Kind = KindScreen
		ev.Name = kv["name"]

	default:
		return Event{}, fmt.Errorf("unknown event line %q", line)
	}
	return ev, nil
}

// String renders an event for logging.
func (e Event) String() string {
	switch e.Kind {
	case KindKey:
		act := "up"
		if e.Down {
			act = "down"
		}
		return fmt.Sprintf("key %d %s", e.Key, act)
	case KindEncoder:
		return fmt.Sprintf("encoder %+d (pos %d)", e.Delta, e.Position)
	case KindButton:
		return "encoder button"
	case KindMode:
		return "mode -> " + e.Name
	case KindScreen:
		return "screen -> " + e.Name
	}
	return "unknown event"
}
