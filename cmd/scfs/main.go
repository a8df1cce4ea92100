package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/leodido/structcli"
	"github.com/solstat/scfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thediveo/enumflag/v2"
)

// Build metadata injected via ldflags. When built without ldflags these
// remain at their zero values and the version command omits them.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	root := &cobra.Command{
		Use:   "scfs",
		Short: "Solana cluster feature status",
		Long: `scfs reports the activation status of runtime feature gates across
Solana clusters.

It builds a feature-by-cluster status matrix from the canonical feature
registry, querying each selected cluster in turn. Use it to compare
feature rollout between devnet, testnet, and mainnet, or to list the
features a program can rely on everywhere it deploys.`,
		SilenceUsage: true,
	}

	root.AddCommand(statusCmd())
	root.AddCommand(featuresCmd())
	root.AddCommand(clustersCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// StatusOptions defines flags for the status subcommand.
type StatusOptions struct {
	Clusters clusterList `flag:"clusters" flagshort:"c" flagdescr:"Clusters to query (local, devnet, testnet, mainnet); defaults to all" flagcustom:"true"`
	Features []string    `flag:"features" flagshort:"f" flagdescr:"Feature ids to query (base58); defaults to the whole registry"`
	JSON     bool        `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *StatusOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func (o *StatusOptions) DefineClusters(name, short, descr string, structField reflect.StructField, fieldValue reflect.Value) (pflag.Value, string) {
	fieldPtr := fieldValue.Addr().Interface().(*clusterList)
	*fieldPtr = nil
	return fieldPtr, descr
}

func (o *StatusOptions) DecodeClusters(input any) (any, error) {
	s, ok := input.(string)
	if !ok {
		return input, nil
	}

	return parseClusterList(s)
}

func statusCmd() *cobra.Command {
	opts := &StatusOptions{}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the feature-by-cluster status matrix",
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			m, err := buildMatrix(opts.Features, opts.Clusters)
			if err != nil {
				return err
			}
			if err := m.Run(c.Context()); err != nil {
				return err
			}

			if opts.JSON {
				return printJSON(matrixOutput(m))
			}
			fmt.Print(m)
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

// FeaturesOptions defines flags for the features subcommand.
type FeaturesOptions struct {
	Clusters clusterList  `flag:"clusters" flagshort:"c" flagdescr:"Clusters to query (local, devnet, testnet, mainnet); defaults to all" flagcustom:"true"`
	Filter   statusFilter `flag:"filter" flagdescr:"Status filter (all, all-active, any-active, all-inactive, any-inactive)" flagcustom:"true"`
	JSON     bool         `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *FeaturesOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func (o *FeaturesOptions) DefineClusters(name, short, descr string, structField reflect.StructField, fieldValue reflect.Value) (pflag.Value, string) {
	fieldPtr := fieldValue.Addr().Interface().(*clusterList)
	*fieldPtr = nil
	return fieldPtr, descr
}

func (o *FeaturesOptions) DecodeClusters(input any) (any, error) {
	s, ok := input.(string)
	if !ok {
		return input, nil
	}

	return parseClusterList(s)
}

func (o *FeaturesOptions) DefineFilter(name, short, descr string, structField reflect.StructField, fieldValue reflect.Value) (pflag.Value, string) {
	fieldPtr := fieldValue.Addr().Interface().(*statusFilter)
	*fieldPtr = filterAll
	return enumflag.New(fieldPtr, "filter", filterIdentifiers, enumflag.EnumCaseInsensitive), descr
}

func (o *FeaturesOptions) DecodeFilter(input any) (any, error) {
	s, ok := input.(string)
	if !ok {
		return input, nil
	}

	return parseStatusFilter(s)
}

func featuresCmd() *cobra.Command {
	opts := &FeaturesOptions{}

	cmd := &cobra.Command{
		Use:   "features",
		Short: "List feature ids matching a status filter",
		Long: `List feature ids whose per-cluster statuses match the given filter.

Filters evaluate each feature's whole status list. Note that pending
counts as "not inactive": a feature that is pending everywhere still
matches all-active.`,
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			m, err := buildMatrix(nil, opts.Clusters)
			if err != nil {
				return err
			}
			if err := m.Run(c.Context()); err != nil {
				return err
			}

			ids := m.Features(opts.Filter.predicate())
			if opts.JSON {
				return printJSON(map[string]any{"features": ids})
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

func clustersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clusters",
		Short: "Show the canonical cluster table",
		RunE: func(c *cobra.Command, args []string) error {
			for _, name := range scfs.ClusterNames() {
				endpoint, _ := scfs.ClusterEndpoint(name)
				if endpoint == "" {
					endpoint = "(synthetic, not dialed)"
				}
				fmt.Printf("%-8s %s\n", name, endpoint)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show tool version",
		RunE: func(c *cobra.Command, args []string) error {
			if version != "" {
				fmt.Printf("scfs %s", version)
				if commit != "" {
					fmt.Printf(" (%s)", commit)
				}
				if date != "" {
					fmt.Printf(" built %s", date)
				}
				fmt.Println()
			} else {
				fmt.Println("scfs (dev)")
			}
			return nil
		},
	}
}

// buildMatrix assembles criteria from the flag values, starting from
// the defaults and narrowing by whatever was provided.
func buildMatrix(features []string, clusters clusterList) (*scfs.Matrix, error) {
	criteria := scfs.DefaultCriteria()

	if len(features) > 0 {
		ids := make([]scfs.FeatureID, 0, len(features))
		for _, f := range features {
			id, err := scfs.ParseFeatureID(strings.TrimSpace(f))
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		criteria.Features = ids
	}
	if len(clusters) > 0 {
		criteria.Clusters = clusters.Names()
	}

	return scfs.New(&criteria)
}

type rowOutput struct {
	Feature     scfs.FeatureID    `json:"feature"`
	Description string            `json:"description"`
	Statuses    map[string]string `json:"statuses"`
}

func matrixOutput(m *scfs.Matrix) []rowOutput {
	clusters := m.Criteria().Clusters
	rows := m.Rows()
	out := make([]rowOutput, 0, len(rows))
	for _, row := range rows {
		statuses := row.Statuses()
		byCluster := make(map[string]string, len(statuses))
		for i, s := range statuses {
			byCluster[clusters[i]] = s.String()
		}
		out = append(out, rowOutput{
			Feature:     row.ID(),
			Description: row.Description(),
			Statuses:    byCluster,
		})
	}
	return out
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// cluster is the enum backing the --clusters flag.
type cluster enumflag.Flag

const (
	clusterLocal cluster = iota
	clusterDevnet
	clusterTestnet
	clusterMainnet
)

var clusterIdentifiers = map[cluster][]string{
	clusterLocal:   {scfs.ClusterLocal},
	clusterDevnet:  {scfs.ClusterDevnet},
	clusterTestnet: {scfs.ClusterTestnet},
	clusterMainnet: {scfs.ClusterMainnet},
}

func (c cluster) Name() string {
	if ids, ok := clusterIdentifiers[c]; ok {
		return ids[0]
	}
	return fmt.Sprintf("cluster(%d)", c)
}

type clusterList []cluster

func (l *clusterList) String() string {
	names := make([]string, 0, len(*l))
	for _, c := range *l {
		names = append(names, c.Name())
	}

	return strings.Join(names, ",")
}

func (l *clusterList) Set(input string) error {
	clusters, err := parseClusterList(input)
	if err != nil {
		return err
	}

	*l = append(*l, clusters...)
	return nil
}

func (l *clusterList) Type() string {
	return "cluster"
}

// Names returns the selected cluster names in flag order.
func (l clusterList) Names() []string {
	names := make([]string, 0, len(l))
	for _, c := range l {
		names = append(names, c.Name())
	}
	return names
}

func parseClusterList(input string) (clusterList, error) {
	if strings.TrimSpace(input) == "" {
		return clusterList{}, nil
	}

	parts := strings.Split(input, ",")
	clusters := make(clusterList, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}

		var c cluster
		enumValue := enumflag.New(&c, "cluster", clusterIdentifiers, enumflag.EnumCaseInsensitive)
		if err := enumValue.Set(name); err != nil {
			return nil, fmt.Errorf("unknown cluster: %q (available: %s)", name, strings.Join(scfs.ClusterNames(), ", "))
		}

		clusters = append(clusters, c)
	}

	return clusters, nil
}

// statusFilter is the enum backing the --filter flag.
type statusFilter enumflag.Flag

const (
	filterAll statusFilter = iota
	filterAllActive
	filterAnyActive
	filterAllInactive
	filterAnyInactive
)

var filterIdentifiers = map[statusFilter][]string{
	filterAll:         {"all"},
	filterAllActive:   {"all-active"},
	filterAnyActive:   {"any-active"},
	filterAllInactive: {"all-inactive"},
	filterAnyInactive: {"any-inactive"},
}

// predicate maps the flag value to the library predicate; the default
// "all" filter maps to nil, which accepts every row.
func (f statusFilter) predicate() scfs.Predicate {
	switch f {
	case filterAllActive:
		return scfs.AllActive
	case filterAnyActive:
		return scfs.AnyActive
	case filterAllInactive:
		return scfs.AllInactive
	case filterAnyInactive:
		return scfs.AnyInactive
	default:
		return nil
	}
}

func parseStatusFilter(input string) (statusFilter, error) {
	var f statusFilter
	enumValue := enumflag.New(&f, "filter", filterIdentifiers, enumflag.EnumCaseInsensitive)
	if err := enumValue.Set(strings.TrimSpace(input)); err != nil {
		return filterAll, errors.New(`unknown filter (available: all, all-active, any-active, all-inactive, any-inactive)`)
	}
	return f, nil
}
