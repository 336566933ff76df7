package events

import (
	"testing"
	"time"
)

var parseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestParseKeyEvents(t *testing.T) {
	ev, err := Parse("ev key=5 act=down", parseTime)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Kind != KindKey || ev.Key != 5 || !ev.Down {
		t.Errorf("event = %+v", ev)
	}
	if !ev.Time.Equal(parseTime) {
		t.Errorf("time = %v", ev.Time)
	}

	ev, err = Parse("ev key=11 act=up", parseTime)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Key != 11 || ev.Down {
		t.Errorf("event = %+v", ev)
	}
}

func TestParseEncoderEvents(t *testing.T) {
	ev, err := Parse("ev enc delta=-1 pos=3", parseTime)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Kind != KindEncoder || ev.Delta != -1 || ev.Position != 3 {
		t.Errorf("event = %+v", ev)
	}

	ev, err = Parse("ev encbtn act=down", parseTime)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Kind != KindButton || !ev.Down {
		t.Errorf("event = %+v", ev)
	}
}

func TestParseModeAndScreenEvents(t *testing.T) {
	ev, err := Parse("ev mode val=screen", parseTime)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Kind != KindMode || ev.Name != "screen" {
		t.Errorf("event = %+v", ev)
	}

	ev, err = Parse("ev screen name=Music", parseTime)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Kind != KindScreen || ev.Name != "Music" {
		t.Errorf("event = %+v", ev)
	}
}

func TestParseRejectsMalformedLines(t *testing.T) {
	bad := []string{
		"booting",
		"ev",
		"ev key=x act=down",
		"ev key=5 act=sideways",
		"ev enc delta=zz pos=0",
		"ev wobble spin=9",
		"ev encbtn stray trailing",
	}
	for _, line := range bad {
		if _, err := Parse(line, parseTime); err == nil {
			t.Errorf("no error for %q", line)
		}
	}
}

func TestIsEventLine(t *testing.T) {
	if !IsEventLine("ev key=0 act=down") {
		t.Error("event line not recognized")
	}
	if IsEventLine("everything is fine") || IsEventLine("boot ok") {
		t.Error("log line misclassified")
	}
}

func TestEventString(t *testing.T) {
	cases := map[string]string{
		"ev key=5 act=down":    "key 5 down",
		"ev enc delta=1 pos=4": "encoder +1 (pos 4)",
		"ev mode val=volume":   "mode -> volume",
		"ev screen name=Music": "screen -> Music",
	}
	for line, want := range cases {
		ev, err := Parse(line, parseTime)
		if err != nil {
			t.Fatal(err)
		}
		if got := ev.String(); got != want {
			t.Errorf("%q rendered %q, want %q", line, got, want)
		}
	}
}
