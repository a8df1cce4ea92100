package scfs

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateCriteria_MissingFeatures(t *testing.T) {
	_, err := validateCriteria(Criteria{Clusters: ClusterNames()})
	if !errors.Is(err, ErrNoCriteriaFeatures) {
		t.Fatalf("validateCriteria() error = %v, want ErrNoCriteriaFeatures", err)
	}
}

func TestValidateCriteria_CollectsAllBadFeatures(t *testing.T) {
	var fake1, fake2 FeatureID
	fake1[31] = 1
	fake2[31] = 2

	_, err := validateCriteria(Criteria{
		Features: []FeatureID{featureRegistry[0].id, fake1, fake2},
	})

	var ce *CriteriaError
	if !errors.As(err, &ce) {
		t.Fatalf("validateCriteria() error = %v, want *CriteriaError", err)
	}
	if ce.Category != "feature" {
		t.Errorf("Category = %q, want %q", ce.Category, "feature")
	}
	if len(ce.Elements) != 2 {
		t.Fatalf("len(Elements) = %d, want 2 (all offenders collected)", len(ce.Elements))
	}
	if ce.Elements[0] != fake1.String() || ce.Elements[1] != fake2.String() {
		t.Errorf("Elements = %v, want offenders in criteria order", ce.Elements)
	}
}

func TestValidateCriteria_CollectsAllBadClusters(t *testing.T) {
	_, err := validateCriteria(Criteria{
		Features: FeatureIDs(),
		Clusters: []string{"devnet", "funny_business", "mainnet-beta"},
	})

	var ce *CriteriaError
	if !errors.As(err, &ce) {
		t.Fatalf("validateCriteria() error = %v, want *CriteriaError", err)
	}
	if ce.Category != "cluster" {
		t.Errorf("Category = %q, want %q", ce.Category, "cluster")
	}
	want := []string{"funny_business", "mainnet-beta"}
	if len(ce.Elements) != len(want) {
		t.Fatalf("Elements = %v, want %v", ce.Elements, want)
	}
	for i := range want {
		if ce.Elements[i] != want[i] {
			t.Errorf("Elements[%d] = %q, want %q", i, ce.Elements[i], want[i])
		}
	}

	msg := err.Error()
	if !strings.Contains(msg, "funny_business") || !strings.Contains(msg, "mainnet-beta") {
		t.Errorf("error %q does not name every offender", msg)
	}
}

func TestValidateCriteria_AbsentClustersIsValid(t *testing.T) {
	out, err := validateCriteria(Criteria{Features: FeatureIDs()})
	if err != nil {
		t.Fatalf("validateCriteria() error = %v", err)
	}
	if out.Clusters != nil {
		t.Errorf("Clusters = %v, want nil preserved", out.Clusters)
	}
}

func TestValidateCriteria_NormalizedCopy(t *testing.T) {
	in := Criteria{
		Features: []FeatureID{featureRegistry[0].id, featureRegistry[1].id},
		Clusters: []string{ClusterLocal, ClusterDevnet},
	}
	out, err := validateCriteria(in)
	if err != nil {
		t.Fatalf("validateCriteria() error = %v", err)
	}

	// The copy must not alias the caller's slices.
	in.Features[0] = FeatureID{}
	in.Clusters[0] = "mutated"
	if out.Features[0] != featureRegistry[0].id {
		t.Error("validated features alias the input slice")
	}
	if out.Clusters[0] != ClusterLocal {
		t.Error("validated clusters alias the input slice")
	}
}

func TestDefaultCriteria(t *testing.T) {
	c := DefaultCriteria()
	if len(c.Features) != len(featureRegistry) {
		t.Errorf("len(Features) = %d, want %d (entire registry)", len(c.Features), len(featureRegistry))
	}
	if len(c.Clusters) != 4 {
		t.Fatalf("len(Clusters) = %d, want 4", len(c.Clusters))
	}
	want := []string{ClusterLocal, ClusterDevnet, ClusterTestnet, ClusterMainnet}
	for i := range want {
		if c.Clusters[i] != want[i] {
			t.Errorf("Clusters[%d] = %q, want %q", i, c.Clusters[i], want[i])
		}
	}
}
