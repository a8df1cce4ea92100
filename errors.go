package scfs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoCriteriaFeatures is returned by [New] when the criteria carry no
// feature set at all.
var ErrNoCriteriaFeatures = errors.New("criteria features missing")

// CriteriaError reports criteria elements outside the canonical sets.
// All offending elements of a category are collected before reporting;
// validation is not fail-fast.
type CriteriaError struct {
	// Category is "feature" or "cluster".
	Category string
	// Elements are the offending ids or names, in criteria order.
	Elements []string
}

func (e *CriteriaError) Error() string {
	return fmt.Sprintf("unrecognized %s criteria: %s", e.Category, strings.Join(e.Elements, ", "))
}

// TransportError reports a failed batched account fetch during
// [Matrix.Run]. The run aborts immediately; columns appended by fully
// completed earlier cluster passes remain, so rows end up with unequal
// status counts and the matrix must be treated as incomplete.
type TransportError struct {
	Cluster  string
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cluster %s (%s): account fetch failed: %v", e.Cluster, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
