package scfs

// Canonical cluster names, in pass order.
const (
	ClusterLocal   = "local"
	ClusterDevnet  = "devnet"
	ClusterTestnet = "testnet"
	ClusterMainnet = "mainnet"
)

// clusterEndpoints maps each canonical cluster name to its RPC endpoint.
// The local cluster is synthetic: it is never dialed, every feature is
// reported as active at slot 0.
var clusterEndpoints = map[string]string{
	ClusterLocal:   "",
	ClusterDevnet:  "https://api.devnet.solana.com",
	ClusterTestnet: "https://api.testnet.solana.com",
	ClusterMainnet: "https://api.mainnet-beta.solana.com",
}

// ClusterNames returns the canonical cluster names in pass order.
func ClusterNames() []string {
	return []string{ClusterLocal, ClusterDevnet, ClusterTestnet, ClusterMainnet}
}

// ClusterEndpoint returns the RPC endpoint for a canonical cluster name.
// The second return value is false for unknown names. The local cluster
// returns an empty endpoint.
func ClusterEndpoint(name string) (string, bool) {
	url, ok := clusterEndpoints[name]
	return url, ok
}

type registryEntry struct {
	id          FeatureID
	description string
}

func mustFeatureID(s string) FeatureID {
	id, err := ParseFeatureID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// featureRegistry is the canonical universe of runtime feature gates,
// in fixed order. Default criteria and registry helpers derive from it.
var featureRegistry = []registryEntry{
	{mustFeatureID("GaBtBJvmS4Arjj5W1NmFcyvPjsHN38UGYDq2MDwbs9Qu"), "deprecate unused rewards sysvar"},
	{mustFeatureID("4RWNif6C2WCNiKVW7otP4G7dkmkHGyKQWRpuZ1pxKU5m"), "pico inflation"},
	{mustFeatureID("DT4n6ABDqs6w4bnfwrXT9rsprcPf6cdDga1egctaPkLC"), "full inflation on devnet and testnet"},
	{mustFeatureID("E3PHP7w8kB7np3CTQ1qQ2tW3KCtjRSXBQgW9vM2mWv2Y"), "secp256k1 program enabled"},
	{mustFeatureID("E5JiFDQCwyC6QfT9REFyMpfK2mHcmv1GUDySU1Ue7TYv"), "spl-token multisig fix"},
	{mustFeatureID("4kpdyrcj5jS47CZb2oJGfVxjYbsMm2Kx97gFyZrxxwXz"), "no overflow rent distribution"},
	{mustFeatureID("GE7fRxmW46K6EmCD9AMZSbnaJ2e3LfqCZzdHi9hmYAgi"), "filter stake delegation accounts"},
	{mustFeatureID("D4jsDcXaqdW8tDAWn8H4R25Cdns2YwLneujSL1zvjW6R"), "require custodian for locked stake authorize"},
	{mustFeatureID("BL99GYhdjjcv6ys22C9wPgn2aTVERDbPHHo4NbS3hgp7"), "spl-token self-transfer fix"},
	{mustFeatureID("GvDsGDkH5gyzwpDhxNixx8vtx1kwYHH13ziT8SuPCCea"), "warp timestamp again"},
	{mustFeatureID("3ccR6QpxGYsAbWyfevEtBNGfWV4xBffxRj2tD6A9i39F"), "check initialized vote data"},
	{mustFeatureID("6RvdSWHh8oh72Dp7wMTS2DBkf3fRPtChfNrAo3cZZoXJ"), "secp256k1 recover syscall"},
	{mustFeatureID("BrTR9hzw4WBGFP65AJMbpAo64DcA3U6jdPSga9fMV5cS"), "perform all checks for transfers of 0 lamports"},
	{mustFeatureID("HTW2pSyErTj4BV6KBM9NZ9VBUJVxt7sacNWcf76wtzb3"), "blake3 syscall"},
	{mustFeatureID("8kEuAshXLsgkUEdcFVLqrjCGGHVWFW99ZZpxvAzzMtBp"), "dedupe config program signers"},
	{mustFeatureID("EVW9B5xD9FFK7vw1SBARwMA4s5eRo5eKJdKpsBikzKBz"), "verify transaction signatures length"},
	{mustFeatureID("BcWknVcgvonN8sL4HE4XFuEVgfcee5MwxWPAgP6ZV89X"), "vote/stake checked instructions"},
	{mustFeatureID("BKCPBQQBZqggVnFso5nQ8rQ4RwwogYwjuUt9biBjxwNF"), "collect rent from accounts owned by sysvars"},
	{mustFeatureID("DhsYfRjxfnh2g7HKJYSzT79r74Afa1wbHkAgHndrA1oy"), "upgrade libsecp256k1 to v0.5.0"},
	{mustFeatureID("5ekBxc8itEnPv4NzGJtr8BVVQLNMQuLMNQQj7pHoLNZ9"), "transaction-wide compute cap"},
	{mustFeatureID("FToKNBYyiF4ky9s8WsmLBXHCht17Ek7RXaLZGHzzQhJ1"), "spl-token set-authority fix"},
	{mustFeatureID("21AWDosvp3pBamFW91KB35pNoaoZVTM7ess8nr2nt53B"), "merge nonce error into system error"},
	{mustFeatureID("JAN1trEUEtZjgXYzNBYHU9DYd7GnThhXfFP7SzPXkPsG"), "disable fees sysvar"},
	{mustFeatureID("meRgp4ArRPhD3KtCY9c5yAf2med7mBLsjKTPeVUHqBL"), "stake merge with unmatched credits observed"},
}

// featureDescriptions indexes the registry by id for validation and
// row construction.
var featureDescriptions = func() map[FeatureID]string {
	m := make(map[FeatureID]string, len(featureRegistry))
	for _, e := range featureRegistry {
		m[e.id] = e.description
	}
	return m
}()

// FeatureIDs returns the ids of every registered feature gate, in
// canonical registry order.
func FeatureIDs() []FeatureID {
	ids := make([]FeatureID, len(featureRegistry))
	for i, e := range featureRegistry {
		ids[i] = e.id
	}
	return ids
}

// Description returns the registry description for a feature id.
// The second return value is false for ids outside the registry.
func Description(id FeatureID) (string, bool) {
	d, ok := featureDescriptions[id]
	return d, ok
}

// Descriptions returns a copy of the full id to description mapping.
func Descriptions() map[FeatureID]string {
	m := make(map[FeatureID]string, len(featureDescriptions))
	for k, v := range featureDescriptions {
		m[k] = v
	}
	return m
}
