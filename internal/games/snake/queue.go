package snake

// DirectionQueue buffers directional intents between movement ticks.
// It has no capacity bound and keeps duplicates.
type DirectionQueue struct {
	pending []Direction
}

// Enqueue appends an intent to the back of the queue.
func (q *DirectionQueue) Enqueue(d Direction) {
	q.pending = append(q.pending, d)
}

// ConsumeOne pops intents from the front until one is a legal turn from
// current, i.e. neither current itself nor its opposite, and returns it.
// Rejected intents are dropped. Intents behind the accepted one stay queued.
// If nothing is acceptable the queue ends up empty and current is returned.
func (q *DirectionQueue) ConsumeOne(current Direction) Direction {
	for len(q.pending) > 0 {
		d := q.pending[0]
		q.pending = q.pending[1:]
		if d != current && d != current.Opposite() {
			return d
		}
	}
	q.pending = nil
	return current
}

// Len returns the number of pending intents.
func (q *DirectionQueue) Len() int {
	return len(q.pending)
}

// Clear drops all pending intents.
func (q *DirectionQueue) Clear() {
	q.pending = nil
}
