package scfs

// validateCriteria checks user-supplied criteria against the canonical
// sets and returns a normalized copy. It has no side effects.
//
// Features must be present and every id must be in the registry;
// clusters may be absent, but present names must be canonical. All
// offenders of a category are collected into one [CriteriaError]
// rather than failing on the first.
func validateCriteria(in Criteria) (Criteria, error) {
	if in.Features == nil {
		return Criteria{}, ErrNoCriteriaFeatures
	}

	if in.Clusters != nil {
		var bad []string
		for _, name := range in.Clusters {
			if _, ok := clusterEndpoints[name]; !ok {
				bad = append(bad, name)
			}
		}
		if len(bad) > 0 {
			return Criteria{}, &CriteriaError{Category: "cluster", Elements: bad}
		}
	}

	var bad []string
	for _, id := range in.Features {
		if _, ok := featureDescriptions[id]; !ok {
			bad = append(bad, id.String())
		}
	}
	if len(bad) > 0 {
		return Criteria{}, &CriteriaError{Category: "feature", Elements: bad}
	}

	out := Criteria{
		Features: make([]FeatureID, len(in.Features)),
	}
	copy(out.Features, in.Features)
	if in.Clusters != nil {
		out.Clusters = make([]string, len(in.Clusters))
		copy(out.Clusters, in.Clusters)
	}
	return out, nil
}
