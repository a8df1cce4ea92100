package scfs

import "testing"

func rowWith(statuses ...Status) *Row {
	r := &Row{id: featureRegistry[0].id}
	for _, s := range statuses {
		r.push(s)
	}
	return r
}

func TestPredicates_TriState(t *testing.T) {
	inactive := Status{State: Inactive}
	pending := Status{State: Pending}

	tests := []struct {
		name        string
		row         *Row
		allActive   bool
		anyActive   bool
		allInactive bool
		anyInactive bool
	}{
		// Pending counts as "not inactive": AllActive and AnyActive hold
		// while neither inactive predicate does.
		{"pending and active", rowWith(pending, ActiveAt(5)), true, true, false, false},
		{"inactive and active", rowWith(inactive, ActiveAt(5)), false, true, false, true},
		{"all inactive", rowWith(inactive, inactive), false, false, true, true},
		{"all active", rowWith(ActiveAt(1), ActiveAt(2)), true, true, false, false},
		{"all pending", rowWith(pending, pending), true, true, false, false},
		{"active at slot zero", rowWith(ActiveAt(0)), true, true, false, false},
		// Vacuous truth on empty status lists, per the literal
		// definitions.
		{"empty statuses", rowWith(), true, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllActive(tt.row); got != tt.allActive {
				t.Errorf("AllActive() = %v, want %v", got, tt.allActive)
			}
			if got := AnyActive(tt.row); got != tt.anyActive {
				t.Errorf("AnyActive() = %v, want %v", got, tt.anyActive)
			}
			if got := AllInactive(tt.row); got != tt.allInactive {
				t.Errorf("AllInactive() = %v, want %v", got, tt.allInactive)
			}
			if got := AnyInactive(tt.row); got != tt.anyInactive {
				t.Errorf("AnyInactive() = %v, want %v", got, tt.anyInactive)
			}
		})
	}
}

func TestFeatures_NilPredicateReturnsAllInOrder(t *testing.T) {
	m, err := New(nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ids := m.Features(nil)
	if len(ids) != len(featureRegistry) {
		t.Fatalf("len(Features(nil)) = %d, want %d", len(ids), len(featureRegistry))
	}
	for i, e := range featureRegistry {
		if ids[i] != e.id {
			t.Errorf("Features(nil)[%d] = %v, want %v (row order)", i, ids[i], e.id)
		}
	}
}

func TestFeatures_FiltersByPredicate(t *testing.T) {
	m := syntheticMatrix(4, nil, nil)
	m.rows[0].push(Status{State: Inactive})
	m.rows[1].push(ActiveAt(9))
	m.rows[2].push(Status{State: Pending})
	m.rows[3].push(Status{State: Inactive})

	got := m.Features(AnyInactive)
	want := []FeatureID{m.rows[0].id, m.rows[3].id}
	if len(got) != len(want) {
		t.Fatalf("Features(AnyInactive) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Features(AnyInactive)[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if n := len(m.Features(AllActive)); n != 2 {
		t.Errorf("len(Features(AllActive)) = %d, want 2 (active and pending rows)", n)
	}
}
