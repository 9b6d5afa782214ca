package domain

// CompletionKey identifies one exercise of one workout for "done" tracking.
// Exercise names are assumed unique within a workout; duplicates share a key.
type CompletionKey struct {
	WorkoutID    string
	ExerciseName string
}

// String renders the key as workoutId-exerciseName. Only for display; two
// different keys may render the same string when the name contains "-".
func (k CompletionKey) String() string {
	return k.WorkoutID + "-" + k.ExerciseName
}

// CompletionSet holds the exercises a user marked as done during a session.
type CompletionSet map[CompletionKey]struct{}

// Mark records k as done. Marking twice is a no-op.
func (s CompletionSet) Mark(k CompletionKey) {
	s[k] = struct{}{}
}

// Done reports whether k was marked.
func (s CompletionSet) Done(k CompletionKey) bool {
	_, ok := s[k]
	return ok
}

// Clone returns an independent copy of s.
func (s CompletionSet) Clone() CompletionSet {
	out := make(CompletionSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}
