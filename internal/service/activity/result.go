package activity

// ReconcileResult reports an unread counter check.
type ReconcileResult struct {
	Previous int
	Actual   int
}

// Changed reports whether the stored counter had drifted.
func (r ReconcileResult) Changed() bool {
	return r.Previous != r.Actual
}
