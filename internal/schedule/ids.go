package schedule

// IDSequence hands out event ids in strictly increasing order.
//
// The zero value is not ready for use; construct with NewIDSequence or
// NewIDSequenceAt.
type IDSequence struct {
	next int
}

// NewIDSequence creates a sequence whose first id is 1.
func NewIDSequence() *IDSequence {
	return &IDSequence{next: 1}
}

// NewIDSequenceAt creates a sequence whose first id is next.
// Used when restoring a persisted schedule. Values below 1 are raised to 1.
func NewIDSequenceAt(next int) *IDSequence {
	if next < 1 {
		next = 1
	}
	return &IDSequence{next: next}
}

// Next returns the current id and advances the sequence.
func (s *IDSequence) Next() int {
	id := s.next
	s.next++
	return id
}

// Peek returns the id the next call to Next will return.
func (s *IDSequence) Peek() int {
	return s.next
}

// AtLeast raises the sequence so that Next returns at least n.
// It never lowers the sequence.
func (s *IDSequence) AtLeast(n int) {
	if n > s.next {
		s.next = n
	}
}
