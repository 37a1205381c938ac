package marks

// Next returns the mark after current in ascending-number order, wrapping
// from the last mark to the first. When current is not in the set the first
// mark is returned. ok is false only for an empty set.
func Next(s *Set, current string) (Mark, bool) {
	ordered := s.Ordered()
	n := len(ordered)
	if n == 0 {
		return Mark{}, false
	}

	idx := indexOf(ordered, current)
	return ordered[(idx+1)%n], true
}

// Prev returns the mark before current in ascending-number order, wrapping
// from the first mark to the last. When current is not in the set the last
// mark is returned. ok is false only for an empty set.
func Prev(s *Set, current string) (Mark, bool) {
	ordered := s.Ordered()
	n := len(ordered)
	if n == 0 {
		return Mark{}, false
	}

	idx := indexOf(ordered, current)
	if idx < 0 {
		// Unknown position: step "back" onto the highest-numbered mark.
		return ordered[n-1], true
	}
	return ordered[(idx-1+n)%n], true
}

// indexOf finds current among the ordered paths by exact string equality.
func indexOf(ordered []Mark, current string) int {
	for i, m := range ordered {
		if m.Path == current {
			return i
		}
	}
	return -1
}
