package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tilesnake/internal/config"
	"github.com/vovakirdan/tilesnake/internal/games/snake"
)

func TestParseScript(t *testing.T) {
	script, err := parseScript("3:left, 10:D,12:up")
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	want := map[int]snake.Direction{3: snake.DirLeft, 10: snake.DirDown, 12: snake.DirUp}
	if len(script) != len(want) {
		t.Fatalf("script = %v, want %v", script, want)
	}
	for tick, dir := range want {
		if script[tick] != dir {
			t.Errorf("tick %d = %v, want %v", tick, script[tick], dir)
		}
	}

	if script, err := parseScript(""); err != nil || len(script) != 0 {
		t.Errorf("empty script = %v, %v", script, err)
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, s := range []string{"left", "0:left", "x:left", "3:sideways", "3:left,"} {
		if _, err := parseScript(s); err == nil {
			t.Errorf("parseScript(%q) succeeded, want error", s)
		}
	}
}

func TestTraceWallCollision(t *testing.T) {
	var out bytes.Buffer
	opts := traceOptions{Ticks: 11, Events: true}
	if err := runTrace(&out, config.Default(), opts); err != nil {
		t.Fatalf("runTrace: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "tick 11: spawned=") || !strings.Contains(got, "collided=true") {
		t.Errorf("missing collision event:\n%s", got)
	}
	if !strings.Contains(got, "tick=11 head=(15,10) dir=up len=0/5 food=0 resets=1") {
		t.Errorf("unexpected final snapshot:\n%s", got)
	}
}

func TestTraceScriptAndBoard(t *testing.T) {
	var out bytes.Buffer
	opts := traceOptions{
		Ticks:  4,
		Script: map[int]snake.Direction{1: snake.DirLeft},
		Every:  2,
		Board:  true,
	}
	if err := runTrace(&out, config.Default(), opts); err != nil {
		t.Fatalf("runTrace: %v", err)
	}

	got := out.String()
	if strings.Count(got, "tick=") != 2 {
		t.Errorf("want snapshots at ticks 2 and 4:\n%s", got)
	}
	if !strings.Contains(got, "tick=4 head=(11,10) dir=left") {
		t.Errorf("unexpected final snapshot:\n%s", got)
	}
	if !strings.Contains(got, "ooooo") {
		t.Errorf("board missing snake cells:\n%s", got)
	}
}

func TestTraceRejectsNegativeTicks(t *testing.T) {
	if err := runTrace(&bytes.Buffer{}, config.Default(), traceOptions{Ticks: -1}); err == nil {
		t.Error("expected error for negative ticks")
	}
}
