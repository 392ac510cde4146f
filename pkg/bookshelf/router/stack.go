package router

// StackEntry is the list state saved when navigating forward to a detail
// screen.
type StackEntry struct {
	From   string
	Resume *BookListResume
}

// Stack keeps resume state for back navigation.
type Stack struct {
	entries []StackEntry
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push saves resume state when navigating forward.
func (s *Stack) Push(from string, resume *BookListResume) {
	s.entries = append(s.entries, StackEntry{
		From:   from,
		Resume: resume,
	})
}

// Pop removes and returns the top entry, or nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it, or nil if the stack is
// empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty reports whether the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
