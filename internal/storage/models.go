package storage

// StateKey is the single storage key the progression record is kept under.
const StateKey = "wellness-quest-state-v2"

const (
	DefaultDisplayName = "You"
	DefaultAvatar      = "sprout"

	minMood = 1
	maxMood = 5
)

type MoodEntry struct {
	Date  string `json:"date"`
	Mood  int    `json:"mood"`
	Notes string `json:"notes"`
}

// ProgressionRecord is the persisted aggregate. Field names match the stored
// JSON payload so older payloads stay readable.
type ProgressionRecord struct {
	XP             int                 `json:"xp"`
	Completed      map[string][]string `json:"completed"`
	MoodLog        []MoodEntry         `json:"moodLog"`
	SelectedAvatar string              `json:"selectedAvatar"`
	Badges         []string            `json:"badges"`
	WeeklyProgress int                 `json:"weeklyProgress"`
	DisplayName    string              `json:"displayName"`
}

func DefaultRecord() *ProgressionRecord {
	return &ProgressionRecord{
		XP:             0,
		Completed:      map[string][]string{},
		MoodLog:        []MoodEntry{},
		SelectedAvatar: DefaultAvatar,
		Badges:         []string{},
		WeeklyProgress: 0,
		DisplayName:    DefaultDisplayName,
	}
}

// Normalize fills missing fields with defaults and repairs values that break
// record invariants: negative xp, out-of-range weekly progress or moods, and
// duplicate completions, badges or same-day mood entries.
func (r *ProgressionRecord) Normalize() {
	if r.XP < 0 {
		r.XP = 0
	}
	if r.Completed == nil {
		r.Completed = map[string][]string{}
	}
	for date, ids := range r.Completed {
		r.Completed[date] = dedupe(ids)
	}
	if r.MoodLog == nil {
		r.MoodLog = []MoodEntry{}
	}
	r.MoodLog = latestPerDate(validMoods(r.MoodLog))
	if r.SelectedAvatar == "" {
		r.SelectedAvatar = DefaultAvatar
	}
	r.Badges = dedupe(r.Badges)
	if r.WeeklyProgress < 0 {
		r.WeeklyProgress = 0
	}
	if r.WeeklyProgress > 100 {
		r.WeeklyProgress = 100
	}
	if r.DisplayName == "" {
		r.DisplayName = DefaultDisplayName
	}
}

// Clone returns a deep copy so callers can hand out snapshots safely.
func (r *ProgressionRecord) Clone() *ProgressionRecord {
	out := *r
	out.Completed = make(map[string][]string, len(r.Completed))
	for date, ids := range r.Completed {
		out.Completed[date] = append([]string(nil), ids...)
	}
	out.MoodLog = append([]MoodEntry(nil), r.MoodLog...)
	out.Badges = append([]string(nil), r.Badges...)
	return &out
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]bool{}
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// latestPerDate keeps the last entry for each date, ordered by where that last
// entry sits in the log.
// validMoods drops entries outside the 1-5 mood scale.
func validMoods(in []MoodEntry) []MoodEntry {
	out := make([]MoodEntry, 0, len(in))
	for _, m := range in {
		if m.Mood >= minMood && m.Mood <= maxMood {
			out = append(out, m)
		}
	}
	return out
}

func latestPerDate(in []MoodEntry) []MoodEntry {
	last := map[string]int{}
	for i, m := range in {
		last[m.Date] = i
	}
	out := make([]MoodEntry, 0, len(last))
	for i, m := range in {
		if last[m.Date] == i {
			out = append(out, m)
		}
	}
	return out
}
