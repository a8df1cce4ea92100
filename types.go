package scfs

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// FeatureID is the 32-byte identifier of a runtime feature gate.
// Its text form is the usual base58 rendering of the raw bytes.
type FeatureID [32]byte

// ParseFeatureID parses the base58 text form of a feature id.
// Values shorter than 32 bytes are left-padded with zeros; values
// longer than 32 bytes are rejected.
func ParseFeatureID(s string) (FeatureID, error) {
	var id FeatureID
	raw, err := base58.Decode(s)
	if err != nil {
		return id, fmt.Errorf("feature id %q: %w", s, err)
	}
	if len(raw) > len(id) {
		return id, fmt.Errorf("feature id %q: decodes to %d bytes, want at most %d", s, len(raw), len(id))
	}
	copy(id[len(id)-len(raw):], raw)
	return id, nil
}

func (id FeatureID) String() string {
	return base58.Encode(id[:])
}

// MarshalText implements encoding.TextMarshaler, so feature ids render
// as base58 strings in JSON output.
func (id FeatureID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *FeatureID) UnmarshalText(text []byte) error {
	parsed, err := ParseFeatureID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// State is the activation state of a feature on one cluster.
type State int

const (
	// Inactive means no feature account exists on the cluster, or the
	// account does not carry a recognizable feature layout.
	Inactive State = iota
	// Pending means the feature account exists but no activation slot
	// has been set yet.
	Pending
	// Active means the feature activated at a specific slot.
	Active
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Pending:
		return "pending"
	case Active:
		return "active"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Status is the activation status of a feature on one cluster.
// Two statuses are equal when their states match and, for [Active],
// their slots match; plain == comparison implements exactly that.
type Status struct {
	// State is the activation state.
	State State
	// Slot is the activation slot. Meaningful only when State is [Active].
	Slot uint64
}

// ActiveAt returns an [Active] status for the given slot.
func ActiveAt(slot uint64) Status {
	return Status{State: Active, Slot: slot}
}

func (s Status) String() string {
	if s.State == Active {
		return fmt.Sprintf("active(%d)", s.Slot)
	}
	return s.State.String()
}

// Criteria selects which features and clusters a [Matrix] covers.
// A nil Features slice is invalid (a matrix without features is
// meaningless); a nil Clusters slice is valid and makes [Matrix.Run]
// a no-op. [DefaultCriteria] covers the whole registry on all four
// canonical clusters.
type Criteria struct {
	// Features limits which feature gates to query.
	Features []FeatureID
	// Clusters limits which clusters to query, in pass order.
	Clusters []string
}

// DefaultCriteria returns criteria covering the entire feature registry
// on all canonical clusters, in registry and canonical cluster order.
func DefaultCriteria() Criteria {
	return Criteria{
		Features: FeatureIDs(),
		Clusters: ClusterNames(),
	}
}

// Row is one feature's line in a [Matrix]: the feature id, its registry
// description, and one status per completed cluster pass, in criteria
// cluster order. Rows are owned by their matrix; they are read through
// accessors and mutated only by [Matrix.Run].
type Row struct {
	id          FeatureID
	description string
	statuses    []Status
}

// ID returns the feature id of the row.
func (r *Row) ID() FeatureID {
	return r.id
}

// Description returns the registry description of the row's feature.
func (r *Row) Description() string {
	return r.description
}

// Statuses returns a copy of the row's per-cluster statuses, in the
// order the clusters were processed.
func (r *Row) Statuses() []Status {
	out := make([]Status, len(r.statuses))
	copy(out, r.statuses)
	return out
}

func (r *Row) push(s Status) {
	r.statuses = append(r.statuses, s)
}
