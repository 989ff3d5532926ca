package seed

import (
	"fmt"
	"sort"
	"strings"
)

// Report tallies what a run produced and what it had to skip. Skips are
// expected: a parent registered near the window end can leave no room for
// children.
type Report struct {
	Created map[string]int
	Skipped map[string]int

	RestockEvents int
	Sessions      int
	Conversions   int
}

func NewReport() *Report {
	return &Report{
		Created: make(map[string]int),
		Skipped: make(map[string]int),
	}
}

func (r *Report) AddCreated(entity string, n int) {
	r.Created[entity] += n
}

func (r *Report) AddSkipped(entity string, n int) {
	r.Skipped[entity] += n
}

func (r *Report) String() string {
	entities := make(map[string]struct{})
	for e := range r.Created {
		entities[e] = struct{}{}
	}
	for e := range r.Skipped {
		entities[e] = struct{}{}
	}
	names := make([]string, 0, len(entities))
	for e := range entities {
		names = append(names, e)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, e := range names {
		fmt.Fprintf(&b, "%s: created=%d skipped=%d\n", e, r.Created[e], r.Skipped[e])
	}
	fmt.Fprintf(&b, "sessions=%d conversions=%d restocks=%d\n", r.Sessions, r.Conversions, r.RestockEvents)
	return b.String()
}
