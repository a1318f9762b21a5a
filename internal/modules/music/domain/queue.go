package domain

// Queue is a guild-scoped ordered sequence of playables with a
// current-position cursor. The resolution pipeline's only write on it is
// Replace; advancement happens as tracks end.
type Queue struct {
	playables    []Playable
	currentIndex int
}

// NewQueue creates a new empty Queue.
func NewQueue() Queue {
	return Queue{playables: make([]Playable, 0)}
}

// IsEmpty returns true if the queue has no playables.
func (q *Queue) IsEmpty() bool {
	return len(q.playables) == 0
}

// Len returns the total number of playables in the queue.
func (q *Queue) Len() int {
	return len(q.playables)
}

// Replace swaps the entire queue contents for the given batch and resets the
// cursor to the first element. Source ordering is preserved.
func (q *Queue) Replace(batch Batch) {
	q.playables = make([]Playable, len(batch))
	copy(q.playables, batch)
	q.currentIndex = 0
}

// Current returns the playable at the cursor, or nil if the queue is empty.
func (q *Queue) Current() *Playable {
	if q.IsEmpty() {
		return nil
	}
	return &q.playables[q.currentIndex]
}

// Advance moves the cursor to the next playable and returns it, or nil when
// the queue has ended.
func (q *Queue) Advance() *Playable {
	if q.IsEmpty() || q.currentIndex+1 >= len(q.playables) {
		return nil
	}
	q.currentIndex++
	return &q.playables[q.currentIndex]
}

// List returns a copy of all playables in queue order.
func (q *Queue) List() []Playable {
	result := make([]Playable, len(q.playables))
	copy(result, q.playables)
	return result
}

// Clear removes all playables and resets the cursor.
func (q *Queue) Clear() {
	q.playables = make([]Playable, 0)
	q.currentIndex = 0
}
