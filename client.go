package scfs

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MaxBatchAccounts is the hard ceiling on ids per batched account
// fetch, imposed by the remote getMultipleAccounts contract. Splitting
// larger query sets is the engine's responsibility, not the fetcher's.
const MaxBatchAccounts = 100

// Account is the opaque payload of one on-chain account, as returned
// by a batched fetch.
type Account struct {
	// Lamports is the account balance.
	Lamports uint64
	// Owner is the base58 id of the owning program.
	Owner string
	// Data is the raw account data.
	Data []byte
	// Executable marks program accounts.
	Executable bool
	// RentEpoch is the next epoch the account owes rent.
	RentEpoch uint64
}

// AccountFetcher retrieves account payloads for a batch of ids.
//
// Implementations must return one entry per requested id, positionally
// aligned with the request; a nil entry means the account does not
// exist on the cluster.
type AccountFetcher interface {
	MultipleAccounts(ctx context.Context, ids []FeatureID) ([]*Account, error)
}

// RPCFetcher fetches accounts from one cluster endpoint via the
// JSON-RPC getMultipleAccounts method. It performs no retries, no
// backoff, and sets no timeout; callers needing time bounds pass a
// deadline through the context.
type RPCFetcher struct {
	endpoint string
	client   *http.Client
}

// NewRPCFetcher returns a fetcher bound to one RPC endpoint.
func NewRPCFetcher(endpoint string) *RPCFetcher {
	return &RPCFetcher{
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcAccount struct {
	Lamports   uint64   `json:"lamports"`
	Owner      string   `json:"owner"`
	Data       []string `json:"data"`
	Executable bool     `json:"executable"`
	RentEpoch  uint64   `json:"rentEpoch"`
}

type rpcResponse struct {
	Result struct {
		Value []*rpcAccount `json:"value"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// MultipleAccounts implements [AccountFetcher] with one
// getMultipleAccounts call. At most [MaxBatchAccounts] ids are accepted
// per call.
func (f *RPCFetcher) MultipleAccounts(ctx context.Context, ids []FeatureID) ([]*Account, error) {
	if len(ids) > MaxBatchAccounts {
		return nil, fmt.Errorf("batch of %d ids exceeds the %d-account ceiling", len(ids), MaxBatchAccounts)
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "getMultipleAccounts",
		Params: []any{
			keys,
			map[string]string{"encoding": "base64"},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rpc status %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var parsed rpcResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode rpc response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("rpc error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if len(parsed.Result.Value) != len(ids) {
		return nil, fmt.Errorf("rpc returned %d accounts for %d ids", len(parsed.Result.Value), len(ids))
	}

	accounts := make([]*Account, len(ids))
	for i, ra := range parsed.Result.Value {
		if ra == nil {
			continue
		}
		acct := &Account{
			Lamports:   ra.Lamports,
			Owner:      ra.Owner,
			Executable: ra.Executable,
			RentEpoch:  ra.RentEpoch,
		}
		if len(ra.Data) > 0 {
			data, err := base64.StdEncoding.DecodeString(ra.Data[0])
			if err != nil {
				return nil, fmt.Errorf("decode account data for %s: %w", keys[i], err)
			}
			acct.Data = data
		}
		accounts[i] = acct
	}
	return accounts, nil
}
