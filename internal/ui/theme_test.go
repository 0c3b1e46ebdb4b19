package ui

import (
	"strings"
	"testing"
)

func TestClock(t *testing.T) {
	cases := map[int]string{0: "0:00", 59: "0:59", 600: "10:00", 185: "3:05", -4: "0:00"}
	for in, want := range cases {
		if got := Clock(in); got != want {
			t.Fatalf("Clock(%d)=%q, want %q", in, got, want)
		}
	}
}

func TestMoodFace(t *testing.T) {
	if MoodFace(1) != "😞" || MoodFace(5) != "😄" {
		t.Fatalf("unexpected faces")
	}
	if MoodFace(0) != "·" || MoodFace(6) != "·" {
		t.Fatalf("out-of-range moods should render a placeholder")
	}
}

func TestQuestIconAndStatus(t *testing.T) {
	if QuestIcon(true, true) != IconTimer || QuestIcon(false, true) != IconSuggest || QuestIcon(false, false) != IconQuest {
		t.Fatalf("unexpected quest icons")
	}
	if !strings.Contains(StatusText("DONE"), "done") {
		t.Fatalf("status text lost its label")
	}
}
