package catalog

import (
	"sort"

	"github.com/soyroberto/roblox/pkg/apperr"
)

// Catalog is the immutable set of architecture components, built once from
// the loaded records and read-only for the process's lifetime. Concurrent
// reads need no locking.
type Catalog struct {
	ordered []ArchitectureComponent
	byID    map[string]ArchitectureComponent
}

// NewCatalog copies the given components into a catalog ordered by
// step_order.
func NewCatalog(components []ArchitectureComponent) *Catalog {
	ordered := make([]ArchitectureComponent, len(components))
	copy(ordered, components)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StepOrder < ordered[j].StepOrder
	})

	byID := make(map[string]ArchitectureComponent, len(ordered))
	for _, c := range ordered {
		byID[c.ID] = c
	}
	return &Catalog{ordered: ordered, byID: byID}
}

// List returns all components ordered by step_order. When difficulty is
// non-empty only components of that tier are returned, relative order
// preserved. An unmatched filter yields an empty slice, never an error.
func (c *Catalog) List(difficulty DifficultyLevel) []ArchitectureComponent {
	if difficulty == "" {
		out := make([]ArchitectureComponent, len(c.ordered))
		copy(out, c.ordered)
		return out
	}
	out := make([]ArchitectureComponent, 0, len(c.ordered))
	for _, comp := range c.ordered {
		if comp.DifficultyLevel == difficulty {
			out = append(out, comp)
		}
	}
	return out
}

// Get returns the component with the given id.
func (c *Catalog) Get(id string) (ArchitectureComponent, error) {
	comp, ok := c.byID[id]
	if !ok {
		return ArchitectureComponent{}, apperr.New(apperr.KindNotFound, "component not found: %s", id)
	}
	return comp, nil
}

// Len returns the number of components in the catalog.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// StepSequence is the immutable, ordered player-request journey.
type StepSequence struct {
	ordered  []JourneyStep
	byNumber map[int]JourneyStep
}

// NewStepSequence copies the given steps into a sequence ordered by
// step_number ascending.
func NewStepSequence(steps []JourneyStep) *StepSequence {
	ordered := make([]JourneyStep, len(steps))
	copy(ordered, steps)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StepNumber < ordered[j].StepNumber
	})

	byNumber := make(map[int]JourneyStep, len(ordered))
	for _, s := range ordered {
		byNumber[s.StepNumber] = s
	}
	return &StepSequence{ordered: ordered, byNumber: byNumber}
}

// List returns all steps ordered by step_number.
func (s *StepSequence) List() []JourneyStep {
	out := make([]JourneyStep, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Get returns the step with the given step_number.
func (s *StepSequence) Get(stepNumber int) (JourneyStep, error) {
	step, ok := s.byNumber[stepNumber]
	if !ok {
		return JourneyStep{}, apperr.New(apperr.KindNotFound, "step not found: %d", stepNumber)
	}
	return step, nil
}
