package inventory

import (
	"context"
	"sync"
)

// MemoryRepo is the in-memory repository backing the service when no database
// is configured. The fixture dataset is loaded into it at startup.
//
// Unlike a per-test scratch repo, this one is shared by HTTP handlers, so it
// is guarded by a mutex even though the editor protocol allows only one
// writer per line at a time.
type MemoryRepo struct {
	mu     sync.RWMutex
	lines  []Line
	groups []Group
}

func NewMemoryRepo(lines []Line, groups []Group) *MemoryRepo {
	r := &MemoryRepo{
		lines:  make([]Line, 0, len(lines)),
		groups: append([]Group(nil), groups...),
	}
	for _, l := range lines {
		r.lines = append(r.lines, l.Clone())
	}
	return r
}

func (r *MemoryRepo) List(ctx context.Context) ([]Line, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Line, 0, len(r.lines))
	for _, l := range r.lines {
		out = append(out, l.Clone())
	}
	return out, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (Line, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.lines {
		if l.ID == id {
			return l.Clone(), nil
		}
	}
	return Line{}, ErrNotFound
}

// Put replaces the line with the same id in place, or appends when the id is
// new. The stored copy is detached from the caller's value.
func (r *MemoryRepo) Put(ctx context.Context, l Line) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := l.Clone()
	for i := range r.lines {
		if r.lines[i].ID == l.ID {
			r.lines[i] = stored
			return nil
		}
	}
	r.lines = append(r.lines, stored)
	return nil
}

func (r *MemoryRepo) Groups(ctx context.Context) ([]Group, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Group, len(r.groups))
	copy(out, r.groups)
	for i := range out {
		out[i].LineIDs = append([]string(nil), r.groups[i].LineIDs...)
	}
	return out, nil
}
