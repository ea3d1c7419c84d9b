package streams

import "github.com/pkg/errors"

// chain applies each stage in order, feeding every stage's output to the
// next. State stays independent per stage.
type chain struct {
	stages []Filter
}

// NewChain composes the given filters into one. Construction is atomic:
// an empty chain or a nil stage fails and no partial composition is
// returned.
func NewChain(stages ...Filter) (Filter, error) {
	if len(stages) == 0 {
		return nil, errors.New("filter chain needs at least one stage")
	}
	for i, stage := range stages {
		if stage == nil {
			return nil, errors.Errorf("filter chain stage %d is nil", i)
		}
	}
	copied := make([]Filter, len(stages))
	copy(copied, stages)
	return &chain{stages: copied}, nil
}

func (c *chain) Apply(sample float64) float64 {
	for _, stage := range c.stages {
		sample = stage.Apply(sample)
	}
	return sample
}

// Reset resets every stage that supports it.
func (c *chain) Reset() {
	for _, stage := range c.stages {
		if r, ok := stage.(Resettable); ok {
			r.Reset()
		}
	}
}
