package nutrients

import "slices"

// Category groups warnings by the rule that produced them.
type Category string

const (
	CategoryFlush         Category = "flush"
	CategoryConflict      Category = "conflict"
	CategorySevere        Category = "severe"
	CategoryAntagonism    Category = "antagonism"
	CategoryNotice        Category = "notice"
	CategoryStageConflict Category = "stage-conflict"
)

// Warning priorities, 1 is the most urgent.
const (
	PriorityCritical = 1
	PriorityHigh     = 2
	PriorityMedium   = 3
	PriorityLow      = 4
	PriorityInfo     = 5
)

// Warning is a grower-facing message produced by the pipeline.
type Warning struct {
	Message  string   `json:"message"`
	Priority int      `json:"priority"`
	Category Category `json:"category"`
}

// warningList accumulates warnings in insertion order and drops exact repeats.
type warningList struct {
	items []Warning
	seen  map[Warning]struct{}
}

func (l *warningList) add(category Category, priority int, message string) {
	w := Warning{Message: message, Priority: priority, Category: category}
	if l.seen == nil {
		l.seen = make(map[Warning]struct{})
	}
	if _, dup := l.seen[w]; dup {
		return
	}
	l.seen[w] = struct{}{}
	l.items = append(l.items, w)
}

// sorted returns the warnings ordered by priority, insertion order on ties.
func (l *warningList) sorted() []Warning {
	return sortWarnings(l.items)
}

func sortWarnings(ws []Warning) []Warning {
	out := slices.Clone(ws)
	slices.SortStableFunc(out, func(a, b Warning) int {
		return a.Priority - b.Priority
	})
	if out == nil {
		out = []Warning{}
	}
	return out
}
