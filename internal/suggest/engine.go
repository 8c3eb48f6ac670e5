// Package suggest watches task lifecycle events and proposes
// recurrence and scheduling tweaks from historical completion
// patterns. It consumes parsed tasks but never participates in
// parsing itself.
package suggest

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"aufgabe/internal/parser"
	pkgLog "aufgabe/pkg/log"
)

// pattern aggregates what has been observed about one recurring
// chore, keyed by its comparison-normalized title.
type pattern struct {
	title           string
	occurrences     int
	completionHours []int
	dueWeekdays     map[time.Weekday]int
	postponeCount   int
	lastSeen        time.Time
}

// Engine aggregates events into per-title patterns. The pattern set
// is bounded by an LRU cache so a long-lived process cannot grow it
// without limit; rarely seen titles age out first.
type Engine struct {
	l pkgLog.Logger

	mu       sync.Mutex
	patterns *lru.Cache[string, *pattern]
}

// New creates an engine retaining at most maxPatterns distinct titles.
func New(l pkgLog.Logger, maxPatterns int) (*Engine, error) {
	cache, err := lru.New[string, *pattern](maxPatterns)
	if err != nil {
		return nil, fmt.Errorf("create pattern cache: %w", err)
	}
	return &Engine{l: l, patterns: cache}, nil
}

// Record folds one event into the pattern for its title.
func (e *Engine) Record(ev Event) {
	key := parser.NormalizeForComparison(ev.Title)
	if key == "" {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.patterns.Get(key)
	if !ok {
		p = &pattern{title: ev.Title, dueWeekdays: make(map[time.Weekday]int)}
		e.patterns.Add(key, p)
	}
	if ev.Timestamp.After(p.lastSeen) {
		p.lastSeen = ev.Timestamp
	}

	switch ev.Type {
	case EventCreated:
		p.occurrences++
		if ev.DueDate != nil {
			p.dueWeekdays[ev.DueDate.Weekday()]++
		}
	case EventCompleted:
		p.completionHours = append(p.completionHours, ev.Timestamp.Hour())
	case EventPostponed:
		p.postponeCount++
	}
}

// Suggestions derives proposals from the current patterns. Results
// are ordered by pattern age, oldest first, so output is stable for a
// fixed event history.
func (e *Engine) Suggestions() []Suggestion {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []Suggestion
	for _, key := range e.patterns.Keys() {
		p, ok := e.patterns.Peek(key)
		if !ok {
			continue
		}
		out = append(out, p.suggestions()...)
	}
	return out
}

const (
	minWeeklyOccurrences = 3
	weeklyShareThreshold = 0.7
	minHabitOccurrences  = 5
	minHabitWeekdays     = 5
	minTimedCompletions  = 3
	timeBandHours        = 2
	minPostponesForNudge = 2
)

func (p *pattern) suggestions() []Suggestion {
	var out []Suggestion

	if s, ok := p.weeklySuggestion(); ok {
		out = append(out, s)
	} else if s, ok := p.habitSuggestion(); ok {
		out = append(out, s)
	}
	if s, ok := p.timeSuggestion(); ok {
		out = append(out, s)
	}
	if p.postponeCount >= minPostponesForNudge {
		conf := float64(p.postponeCount) / 5
		if conf > 1 {
			conf = 1
		}
		out = append(out, Suggestion{
			Type:       SuggestAdjustDate,
			Title:      p.title,
			Message:    fmt.Sprintf("%q wurde %d-mal verschoben", p.title, p.postponeCount),
			Action:     "pick a more realistic due date",
			Confidence: conf,
		})
	}
	return out
}

func (p *pattern) weeklySuggestion() (Suggestion, bool) {
	if p.occurrences < minWeeklyOccurrences {
		return Suggestion{}, false
	}
	var (
		best      time.Weekday
		bestCount int
	)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if c := p.dueWeekdays[wd]; c > bestCount {
			best, bestCount = wd, c
		}
	}
	share := float64(bestCount) / float64(p.occurrences)
	if share < weeklyShareThreshold {
		return Suggestion{}, false
	}
	return Suggestion{
		Type:       SuggestRecurringWeekly,
		Title:      p.title,
		Message:    fmt.Sprintf("%q landet meistens auf %s", p.title, best),
		Action:     fmt.Sprintf("repeat every %s", best),
		Confidence: share,
	}, true
}

func (p *pattern) habitSuggestion() (Suggestion, bool) {
	if p.occurrences < minHabitOccurrences || len(p.dueWeekdays) < minHabitWeekdays {
		return Suggestion{}, false
	}
	return Suggestion{
		Type:       SuggestDailyHabit,
		Title:      p.title,
		Message:    fmt.Sprintf("%q taucht fast jeden Tag auf", p.title),
		Action:     "repeat daily",
		Confidence: float64(len(p.dueWeekdays)) / 7,
	}, true
}

func (p *pattern) timeSuggestion() (Suggestion, bool) {
	if len(p.completionHours) < minTimedCompletions {
		return Suggestion{}, false
	}
	// Count completions per 2h band and take the densest one.
	bands := make(map[int]int)
	for _, h := range p.completionHours {
		bands[h/timeBandHours]++
	}
	var bestBand, bestCount int
	for band := 0; band < 24/timeBandHours; band++ {
		if c := bands[band]; c > bestCount {
			bestBand, bestCount = band, c
		}
	}
	share := float64(bestCount) / float64(len(p.completionHours))
	if share < weeklyShareThreshold {
		return Suggestion{}, false
	}
	hour := bestBand * timeBandHours
	return Suggestion{
		Type:       SuggestSetTime,
		Title:      p.title,
		Message:    fmt.Sprintf("%q wird meist gegen %02d:00 erledigt", p.title, hour),
		Action:     fmt.Sprintf("set default time %02d:00", hour),
		Confidence: share,
	}, true
}
