// Package window turns the paging state into the at most three page
// descriptors a view needs to draw.
package window

import (
	"swiper/internal/domain"
	"swiper/internal/paging"
)

// Role identifies a descriptor's slot in the window
type Role int

const (
	RolePrevious Role = iota
	RoleCurrent
	RoleNext
)

func (r Role) String() string {
	switch r {
	case RolePrevious:
		return "previous"
	case RoleCurrent:
		return "current"
	case RoleNext:
		return "next"
	default:
		return "unknown"
	}
}

// Slot is the descriptor's resting distance from the current page, in extents
func (r Role) Slot() int {
	return int(r) - 1
}

// Descriptor places one page in the window. All descriptors share the live
// offset; the layout puts neighbours one extent away from current.
type Descriptor struct {
	Role     Role
	Index    int
	Page     domain.Page
	Position float64
}

// Render returns previous, current and next descriptors in that order.
// Missing pages produce no descriptor.
func Render(index int, offset float64, provider domain.Provider) []Descriptor {
	if provider == nil {
		return nil
	}
	out := make([]Descriptor, 0, 3)
	for _, role := range []Role{RolePrevious, RoleCurrent, RoleNext} {
		i := index + role.Slot()
		page, ok := provider.PageAt(i)
		if !ok {
			continue
		}
		out = append(out, Descriptor{Role: role, Index: i, Page: page, Position: offset})
	}
	return out
}

// Renderer keeps descriptors current by subscribing to a controller
type Renderer struct {
	controller  paging.Controller
	provider    domain.Provider
	descriptors []Descriptor
	version     uint64
	unsubscribe func()
}

// NewRenderer renders the controller's current state and follows its changes
func NewRenderer(c paging.Controller, provider domain.Provider) *Renderer {
	r := &Renderer{controller: c, provider: provider}
	r.update(c.Snapshot())
	r.unsubscribe = c.Subscribe(r.update)
	return r
}

func (r *Renderer) update(s paging.Snapshot) {
	r.descriptors = Render(s.Index, s.Offset, r.provider)
	r.version++
}

// Refresh recomputes from the controller's current state. Used when the
// page set itself changed, which publishes no snapshot.
func (r *Renderer) Refresh() {
	r.update(r.controller.Snapshot())
}

// Descriptors returns the latest rendered window
func (r *Renderer) Descriptors() []Descriptor {
	return r.descriptors
}

// Version increases on every recompute
func (r *Renderer) Version() uint64 {
	return r.version
}

// Close stops following the controller
func (r *Renderer) Close() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}
