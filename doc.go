// Package scfs reports the activation status of runtime feature gates
// across Solana clusters.
//
// A [Matrix] is a feature by cluster grid: one [Row] per requested
// feature, one [Status] column per processed cluster. Construction
// validates the selection [Criteria] against the canonical feature
// registry and cluster table; a single [Matrix.Run] then populates the
// grid, one sequential pass per cluster, batching remote account
// lookups in chunks of at most [MaxBatchAccounts] ids.
//
// # Building and running a matrix
//
//	m, err := scfs.New(nil) // default criteria: whole registry, all clusters
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := m.Run(ctx); err != nil {
//	    log.Fatal(err) // matrix is incomplete, see *TransportError
//	}
//	fmt.Println(m)
//
// # Selecting features and clusters
//
//	criteria := scfs.DefaultCriteria()
//	criteria.Clusters = []string{scfs.ClusterDevnet, scfs.ClusterTestnet}
//	m, err := scfs.New(&criteria)
//
// Criteria validation collects every unrecognized feature id or cluster
// name into one [CriteriaError] instead of stopping at the first.
//
// # Filtering
//
// [Matrix.Features] selects feature ids by a [Predicate] over each
// row's status list:
//
//	stale := m.Features(scfs.AnyInactive)
//	everywhere := m.Features(scfs.AllActive)
//
// The canonical predicates are tri-state aware: [AllActive] treats
// pending as "not inactive", so with pending statuses present the
// predicates are not complements of each other.
//
// # Statuses
//
// [Status] is one of inactive (no feature account on the cluster, or
// an unrecognizable payload), pending (account exists, activation slot
// unset), or active at a slot. The local cluster is synthetic and
// reports every feature active at slot 0 without any network call.
package scfs
