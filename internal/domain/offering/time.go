package offering

import (
	"fmt"
	"strings"
)

// Day bits of TimeLocation.Days, Monday first.
const (
	Monday = 1 << iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// SlotMinutes is the length of one time slot.
const SlotMinutes = 5

// TimeLocation is a weekly meeting pattern. Weeks is a bitmask of teaching
// weeks; zero means every week of the term.
type TimeLocation struct {
	Days      int    `yaml:"days"`
	StartSlot int    `yaml:"start"`
	Length    int    `yaml:"length"`
	Weeks     uint64 `yaml:"weeks"`
	Room      string `yaml:"room"`
}

// Overlaps reports whether both patterns share a day, a slot and a week.
func (t *TimeLocation) Overlaps(other *TimeLocation) bool {
	if t == nil || other == nil {
		return false
	}
	if t.Days&other.Days == 0 {
		return false
	}
	if t.Weeks != 0 && other.Weeks != 0 && t.Weeks&other.Weeks == 0 {
		return false
	}
	return t.StartSlot < other.StartSlot+other.Length && other.StartSlot < t.StartSlot+t.Length
}

func (t *TimeLocation) String() string {
	if t == nil {
		return "arrange hours"
	}
	names := []string{"M", "T", "W", "R", "F", "S", "U"}
	var b strings.Builder
	for i, n := range names {
		if t.Days&(1<<i) != 0 {
			b.WriteString(n)
		}
	}
	start := t.StartSlot * SlotMinutes
	end := (t.StartSlot + t.Length) * SlotMinutes
	b.WriteString(" ")
	b.WriteString(clock(start))
	b.WriteString("-")
	b.WriteString(clock(end))
	return b.String()
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
