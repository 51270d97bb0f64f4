package reorderable

type stateEntry[T any] struct {
	value    T
	lastSeen uint64
}

// FrameStore keeps per-control state keyed by ID. Entries that were not
// touched during the previous frame are dropped by Advance, so a control
// that stops being drawn loses its state.
//
// A FrameStore belongs to one Context and, like the Context, is not safe
// for concurrent use.
type FrameStore[T any] struct {
	entries map[ID]*stateEntry[T]
	frame   uint64
}

func NewFrameStore[T any]() *FrameStore[T] {
	return &FrameStore[T]{entries: make(map[ID]*stateEntry[T])}
}

// Get returns the state for id, creating it from init on first use, and
// marks it as seen this frame. The pointer stays valid until the entry is
// dropped.
func (s *FrameStore[T]) Get(id ID, init T) *T {
	e, ok := s.entries[id]
	if !ok {
		e = &stateEntry[T]{value: init}
		s.entries[id] = e
	}
	e.lastSeen = s.frame
	return &e.value
}

// GetIfExists returns the state for id without marking it as seen, or nil.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	if e, ok := s.entries[id]; ok {
		return &e.value
	}
	return nil
}

// Advance moves the store to frame and drops entries last seen before the
// previous frame.
func (s *FrameStore[T]) Advance(frame uint64) {
	s.frame = frame
	if frame == 0 {
		return
	}
	for id, e := range s.entries {
		if e.lastSeen+1 < frame {
			delete(s.entries, id)
		}
	}
}

func (s *FrameStore[T]) Len() int {
	return len(s.entries)
}
