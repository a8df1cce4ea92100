package scfs

import "context"

// Matrix is the feature by cluster status grid. It is built once from
// validated criteria, populated by a single [Matrix.Run], and read
// through accessors afterwards. A matrix is owned by its creator and
// is not safe for concurrent use.
type Matrix struct {
	criteria Criteria
	rows     []*Row
	querySet []FeatureID

	newFetcher func(endpoint string) AccountFetcher
}

// Option configures a [Matrix] at construction time.
type Option func(*Matrix)

// WithFetcherFactory replaces the default RPC fetcher. The factory is
// invoked once per non-local cluster pass, so every pass gets a fresh
// client binding. Primarily for testing.
func WithFetcherFactory(factory func(endpoint string) AccountFetcher) Option {
	return func(m *Matrix) {
		m.newFetcher = factory
	}
}

// New builds a matrix for the given criteria, or for [DefaultCriteria]
// when criteria is nil. Supplied criteria are validated first: missing
// features fail with [ErrNoCriteriaFeatures], unrecognized ids or
// cluster names with a [CriteriaError] listing every offender.
//
// The returned matrix has one row per requested feature, in criteria
// order, with empty status lists until [Matrix.Run] populates them.
func New(criteria *Criteria, opts ...Option) (*Matrix, error) {
	var c Criteria
	if criteria == nil {
		c = DefaultCriteria()
	} else {
		validated, err := validateCriteria(*criteria)
		if err != nil {
			return nil, err
		}
		c = validated
	}

	rows, querySet := buildRows(c)
	m := &Matrix{
		criteria: c,
		rows:     rows,
		querySet: querySet,
		newFetcher: func(endpoint string) AccountFetcher {
			return NewRPCFetcher(endpoint)
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// buildRows expands validated criteria into row skeletons and the
// positionally aligned query set. Pure given the registry:
// len(rows) == len(querySet) == len(criteria.Features) always holds.
func buildRows(c Criteria) ([]*Row, []FeatureID) {
	rows := make([]*Row, len(c.Features))
	querySet := make([]FeatureID, len(c.Features))
	for i, id := range c.Features {
		desc, _ := Description(id)
		rows[i] = &Row{id: id, description: desc}
		querySet[i] = id
	}
	return rows, querySet
}

// Run populates the matrix, processing the criteria clusters strictly
// sequentially in order. Each completed pass appends exactly one status
// to every row, so column order matches criteria cluster order. The
// local cluster is synthetic: no network call, every row gets active
// at slot 0. Other clusters are queried through a fresh fetcher in
// chunks of at most [MaxBatchAccounts] ids.
//
// A transport failure aborts the run immediately with a
// [*TransportError]: no retry, no backoff. Columns from earlier
// completed passes remain, leaving rows with unequal status counts;
// callers must treat such a matrix as incomplete.
//
// Run is single-shot. Running an already populated matrix appends
// duplicate columns; guarding against that is the caller's
// responsibility.
func (m *Matrix) Run(ctx context.Context) error {
	for _, cluster := range m.criteria.Clusters {
		if cluster == ClusterLocal {
			for _, row := range m.rows {
				row.push(ActiveAt(0))
			}
			continue
		}

		endpoint := clusterEndpoints[cluster]
		fetcher := m.newFetcher(endpoint)
		chunks := 0
		for start := 0; start < len(m.querySet); start += MaxBatchAccounts {
			end := min(start+MaxBatchAccounts, len(m.querySet))
			accounts, err := fetcher.MultipleAccounts(ctx, m.querySet[start:end])
			if err != nil {
				return &TransportError{Cluster: cluster, Endpoint: endpoint, Err: err}
			}
			// Row index bookkeeping spans chunk boundaries: the global
			// index is chunks processed so far times the chunk size,
			// plus the position within the current chunk.
			base := chunks * MaxBatchAccounts
			for i, account := range accounts {
				m.rows[base+i].push(statusFromAccount(account))
			}
			chunks++
		}
	}
	return nil
}

// Criteria returns a copy of the validated criteria the matrix was
// built from.
func (m *Matrix) Criteria() Criteria {
	c := Criteria{Features: make([]FeatureID, len(m.criteria.Features))}
	copy(c.Features, m.criteria.Features)
	if m.criteria.Clusters != nil {
		c.Clusters = make([]string, len(m.criteria.Clusters))
		copy(c.Clusters, m.criteria.Clusters)
	}
	return c
}

// Rows returns the matrix rows in criteria feature order. The slice is
// shared with the matrix; rows expose no mutation entry point besides
// [Matrix.Run].
func (m *Matrix) Rows() []*Row {
	return m.rows
}
