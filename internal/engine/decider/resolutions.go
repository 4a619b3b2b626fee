package decider

import (
	"iter"

	"go.trai.ch/decider/internal/core/domain"
)

// Resolutions owns every Resolution of one attempt and remembers the order they were created in.
type Resolutions struct {
	byResolvent map[domain.Resolvent]*domain.Resolution
	ordered     []*domain.Resolution
}

// NewResolutions creates an empty registry.
func NewResolutions() *Resolutions {
	return &Resolutions{byResolvent: make(map[domain.Resolvent]*domain.Resolution)}
}

// GetOrCreate returns the Resolution for r, creating it if needed.
// The second result reports whether it was created by this call.
func (rs *Resolutions) GetOrCreate(r domain.Resolvent) (*domain.Resolution, bool) {
	if res, ok := rs.byResolvent[r]; ok {
		return res, false
	}
	res := domain.NewResolution(r)
	rs.byResolvent[r] = res
	rs.ordered = append(rs.ordered, res)
	return res, true
}

// Find returns the Resolution for r, or nil.
func (rs *Resolutions) Find(r domain.Resolvent) *domain.Resolution {
	return rs.byResolvent[r]
}

// Len returns the number of resolutions.
func (rs *Resolutions) Len() int {
	return len(rs.ordered)
}

// At returns the i-th resolution in creation order.
func (rs *Resolutions) At(i int) *domain.Resolution {
	return rs.ordered[i]
}

// All yields the resolutions that exist when iteration starts, in creation order.
// Resolutions created while iterating are not visited.
func (rs *Resolutions) All() iter.Seq[*domain.Resolution] {
	n := len(rs.ordered)
	return func(yield func(*domain.Resolution) bool) {
		for i := range n {
			if !yield(rs.ordered[i]) {
				return
			}
		}
	}
}
