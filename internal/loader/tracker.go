package loader

// Token identifies one request issued through Tracker.Begin.
type Token uint64

// Tracker holds a State and remembers which request is the latest. The zero
// value is ready to use and starts in StatusInitial.
//
// Tracker is not safe for concurrent use; callers serialize access the way a
// Bubble Tea Update loop does.
type Tracker[T any] struct {
	state State[T]
	gen   Token
}

// State returns the current state.
func (t *Tracker[T]) State() State[T] {
	return t.state
}

// Dispatch applies in unconditionally.
func (t *Tracker[T]) Dispatch(in Intent[T]) {
	t.state = Reduce(t.state, in)
}

// Begin starts a new request: it invalidates every earlier token, moves to
// StatusLoading and returns the token the response must present.
func (t *Tracker[T]) Begin() Token {
	t.gen++
	t.Dispatch(Loading[T]())
	return t.gen
}

// Resolve applies in only when token belongs to the latest Begin. It reports
// whether the intent was applied.
func (t *Tracker[T]) Resolve(token Token, in Intent[T]) bool {
	if token == 0 || token != t.gen {
		return false
	}
	t.Dispatch(in)
	return true
}

// Current reports whether token is still the latest request.
func (t *Tracker[T]) Current(token Token) bool {
	return token != 0 && token == t.gen
}

// Reset returns to StatusInitial and invalidates outstanding tokens.
func (t *Tracker[T]) Reset() {
	t.gen++
	t.state = State[T]{}
}
