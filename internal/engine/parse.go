package engine

import (
	"fmt"
	"strconv"
	"strings"
)

var moodLabels = [...]string{"Depressed", "Sad", "Normal", "Happy", "Happiest"}

// MoodLabel returns the display label for a mood value.
func MoodLabel(mood int) string {
	if mood < MinMood || mood > MaxMood {
		return "Unknown"
	}
	return moodLabels[mood-1]
}

// ParseMood parses user input to a mood value.
// Supported: 1-5, depressed, sad, normal|neutral|ok, happy, happiest|great
func ParseMood(input string) (int, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "depressed":
		return 1, nil
	case "sad", "down":
		return 2, nil
	case "normal", "neutral", "ok":
		return 3, nil
	case "happy":
		return 4, nil
	case "happiest", "very happy", "great":
		return 5, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMood, input)
	}
	if n < MinMood || n > MaxMood {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMood, n)
	}
	return n, nil
}
