package directory

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Selection is an ordered set of selected client IDs.
type Selection struct {
	mu     sync.Mutex
	ids    []uuid.UUID
	set    map[uuid.UUID]struct{}
	anchor uuid.UUID
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{set: make(map[uuid.UUID]struct{})}
}

// Toggle selects id if absent or deselects it if present, and reports
// whether it is selected afterwards. The toggled id becomes the range anchor.
func (s *Selection) Toggle(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.anchor = id
	if _, ok := s.set[id]; ok {
		delete(s.set, id)
		s.ids = slices.DeleteFunc(s.ids, func(x uuid.UUID) bool { return x == id })
		return false
	}
	s.add(id)
	return true
}

// RangeSelect selects every id of order between the anchor and id, both
// included. Without an anchor present in order only id is selected.
func (s *Selection) RangeSelect(order []uuid.UUID, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	to := slices.Index(order, id)
	from := slices.Index(order, s.anchor)
	s.anchor = id

	if to < 0 {
		return
	}
	if from < 0 {
		s.add(id)
		return
	}
	if from > to {
		from, to = to, from
	}
	for _, x := range order[from : to+1] {
		s.add(x)
	}
}

// IsSelected reports whether id is selected.
func (s *Selection) IsSelected(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.set[id]
	return ok
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// Snapshot returns the selected ids in selection order. Later changes to
// the selection do not affect the returned slice.
func (s *Selection) Snapshot() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.ids)
}

// Clear deselects everything.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
	s.set = make(map[uuid.UUID]struct{})
	s.anchor = uuid.Nil
}

func (s *Selection) add(id uuid.UUID) {
	if _, ok := s.set[id]; ok {
		return
	}
	s.set[id] = struct{}{}
	s.ids = append(s.ids, id)
}
