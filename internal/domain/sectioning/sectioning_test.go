//go:build unit

package sectioning_test

import (
	"time"

	"course-sectioning/internal/domain/offering"
)

var testNow = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

type counts struct {
	sections map[int64]int
	configs  map[int64]int
	courses  map[int64]int
}

func newCounts() *counts {
	return &counts{
		sections: map[int64]int{},
		configs:  map[int64]int{},
		courses:  map[int64]int{},
	}
}

func (c *counts) CountForSection(id int64) int { return c.sections[id] }
func (c *counts) CountForConfig(id int64) int  { return c.configs[id] }
func (c *counts) CountForCourse(id int64) int  { return c.courses[id] }

type offerings map[int64]*offering.Offering

func (o offerings) Offering(id int64) *offering.Offering { return o[id] }
