package seed

import (
	"context"
	"fmt"
	"sort"

	"amaluz-seeder/internal/pkg/errs"
)

var (
	ErrCyclicPhases   = errs.New("phase graph contains a cycle")
	ErrUnknownPhase   = errs.New("phase depends on an unknown phase")
	ErrDuplicatePhase = errs.New("duplicate phase name")
)

// Phase is one unit of generation work plus its data dependencies.
type Phase struct {
	Name  string
	After []string
	Run   func(ctx context.Context, tx Tx) error
}

// Order topologically sorts phases. Among simultaneously ready phases the
// name decides, so the schedule is stable across runs.
func Order(phases []Phase) ([]Phase, error) {
	byName := make(map[string]Phase, len(phases))
	indegree := make(map[string]int, len(phases))
	dependents := make(map[string][]string)

	for _, p := range phases {
		if _, dup := byName[p.Name]; dup {
			return nil, errs.Wrap(ErrDuplicatePhase, p.Name)
		}
		byName[p.Name] = p
		indegree[p.Name] = 0
	}
	for _, p := range phases {
		for _, dep := range p.After {
			if _, ok := byName[dep]; !ok {
				return nil, errs.Wrap(ErrUnknownPhase, fmt.Sprintf("%s -> %s", p.Name, dep))
			}
			indegree[p.Name]++
			dependents[dep] = append(dependents[dep], p.Name)
		}
	}

	var ready []string
	for name, deg := range indegree {
		if deg == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	ordered := make([]Phase, 0, len(phases))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		ordered = append(ordered, byName[name])

		released := false
		for _, dep := range dependents[name] {
			indegree[dep]--
			if indegree[dep] == 0 {
				ready = append(ready, dep)
				released = true
			}
		}
		if released {
			sort.Strings(ready)
		}
	}

	if len(ordered) != len(phases) {
		return nil, ErrCyclicPhases
	}
	return ordered, nil
}
