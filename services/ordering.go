package services

// nextOrder places a newly created sibling after every existing one:
// max(existing orders) + 1, or 0 when the parent has no children yet.
// Orders are not renumbered afterwards, so direct edits may leave duplicates
// or gaps.
func nextOrder(maxOrder *int) int {
	if maxOrder == nil {
		return 0
	}
	return *maxOrder + 1
}
