package scfs

// Predicate decides whether a row is included by [Matrix.Features].
type Predicate func(*Row) bool

// All accepts every row. It is the default predicate.
func All(*Row) bool {
	return true
}

// AllActive reports whether no status of the row is inactive.
// Pending counts as "not inactive", so a row that is pending on one
// cluster and active on the rest still satisfies AllActive.
func AllActive(r *Row) bool {
	for _, s := range r.statuses {
		if s.State == Inactive {
			return false
		}
	}
	return true
}

// AnyActive reports whether at least one status of the row differs
// from inactive.
func AnyActive(r *Row) bool {
	for _, s := range r.statuses {
		if s.State != Inactive {
			return true
		}
	}
	return false
}

// AllInactive reports whether every status of the row is inactive.
func AllInactive(r *Row) bool {
	for _, s := range r.statuses {
		if s.State != Inactive {
			return false
		}
	}
	return true
}

// AnyInactive reports whether at least one status of the row is
// inactive.
func AnyInactive(r *Row) bool {
	for _, s := range r.statuses {
		if s.State == Inactive {
			return true
		}
	}
	return false
}

// Features returns the ids of rows satisfying the predicate, in stored
// row order. A nil predicate accepts every row.
func (m *Matrix) Features(pred Predicate) []FeatureID {
	if pred == nil {
		pred = All
	}
	ids := make([]FeatureID, 0, len(m.rows))
	for _, row := range m.rows {
		if pred(row) {
			ids = append(ids, row.id)
		}
	}
	return ids
}
