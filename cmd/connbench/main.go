// Command connbench drives a DynamicConnectivity instance with a randomized
// add/delete/query workload and reports wall-clock latency summaries per
// operation class.
//
// Example:
//
//	connbench --vertices 100000 --edges 200000 --ops 500000 --seed 42
package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/dynconn/connectivity"
	"github.com/katalvlaran/dynconn/core"
)

var (
	flagVertices   int64
	flagEdges      int
	flagOps        int
	flagSeed       int64
	flagQueryRatio float64
)

var rootCmd = &cobra.Command{
	Use:   "connbench",
	Short: "Benchmark the dynamic connectivity structure",
	Long: "connbench preloads a random graph and then drives it with an interleaved\n" +
		"stream of edge insertions, edge deletions, and connectivity queries,\n" +
		"reporting latency statistics per operation class.",
	RunE: runBench,
}

func init() {
	rootCmd.Flags().Int64Var(&flagVertices, "vertices", 1<<16, "number of vertices")
	rootCmd.Flags().IntVar(&flagEdges, "edges", 1<<17, "number of preloaded edges")
	rootCmd.Flags().IntVar(&flagOps, "ops", 1<<18, "number of benchmark operations")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 42, "seed for the workload and the structure")
	rootCmd.Flags().Float64Var(&flagQueryRatio, "query-ratio", 0.5, "fraction of operations that are queries")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// sample accumulates per-operation latencies in seconds.
type sample struct {
	name      string
	latencies []float64
}

func (s *sample) record(d time.Duration) {
	s.latencies = append(s.latencies, d.Seconds())
}

// report prints count, mean, stddev, and tail quantiles for each class.
func report(w *tabwriter.Writer, samples []*sample) {
	fmt.Fprintln(w, "op\tcount\tmean\tstddev\tp50\tp99")
	for _, s := range samples {
		if len(s.latencies) == 0 {
			fmt.Fprintf(w, "%s\t0\t-\t-\t-\t-\n", s.name)
			continue
		}
		sort.Float64s(s.latencies)
		mean := stat.Mean(s.latencies, nil)
		stddev := stat.StdDev(s.latencies, nil)
		p50 := stat.Quantile(0.5, stat.Empirical, s.latencies, nil)
		p99 := stat.Quantile(0.99, stat.Empirical, s.latencies, nil)
		fmt.Fprintf(w, "%s\t%d\t%v\t%v\t%v\t%v\n",
			s.name, len(s.latencies),
			time.Duration(mean*float64(time.Second)),
			time.Duration(stddev*float64(time.Second)),
			time.Duration(p50*float64(time.Second)),
			time.Duration(p99*float64(time.Second)))
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(flagSeed))

	build := time.Now()
	d, err := connectivity.New(flagVertices, connectivity.WithSeed(flagSeed))
	if err != nil {
		return err
	}
	fmt.Printf("construction: n=%d in %v\n", flagVertices, time.Since(build))

	// Preload.
	present := make(map[core.UndirectedEdge]struct{}, flagEdges)
	live := make([]core.UndirectedEdge, 0, flagEdges)
	preload := time.Now()
	for len(live) < flagEdges {
		e := randomEdge(rng, flagVertices)
		if _, ok := present[e]; ok || e.First == e.Second {
			continue
		}
		if err = d.AddEdge(e); err != nil {
			return err
		}
		present[e] = struct{}{}
		live = append(live, e)
	}
	fmt.Printf("preload: m=%d in %v\n", flagEdges, time.Since(preload))

	adds := &sample{name: "AddEdge"}
	deletes := &sample{name: "DeleteEdge"}
	queries := &sample{name: "IsConnected"}

	total := time.Now()
	for op := 0; op < flagOps; op++ {
		if rng.Float64() < flagQueryRatio {
			u := core.Vertex(rng.Int63n(flagVertices))
			v := core.Vertex(rng.Int63n(flagVertices))
			start := time.Now()
			if _, err = d.IsConnected(u, v); err != nil {
				return err
			}
			queries.record(time.Since(start))
			continue
		}

		// Mutation: delete a live edge or insert a fresh one, 50/50.
		if len(live) > 0 && rng.Intn(2) == 0 {
			i := rng.Intn(len(live))
			e := live[i]
			start := time.Now()
			if err = d.DeleteEdge(e); err != nil {
				return err
			}
			deletes.record(time.Since(start))
			delete(present, e)
			live[i] = live[len(live)-1]
			live = live[:len(live)-1]
		} else {
			e := randomEdge(rng, flagVertices)
			if _, ok := present[e]; ok || e.First == e.Second {
				continue
			}
			start := time.Now()
			if err = d.AddEdge(e); err != nil {
				return err
			}
			adds.record(time.Since(start))
			present[e] = struct{}{}
			live = append(live, e)
		}
	}
	elapsed := time.Since(total)

	fmt.Printf("workload: %d ops in %v (%.0f ops/s)\n\n",
		flagOps, elapsed, float64(flagOps)/elapsed.Seconds())
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	report(w, []*sample{adds, deletes, queries})

	return w.Flush()
}

func randomEdge(rng *rand.Rand, n int64) core.UndirectedEdge {
	return core.NewUndirectedEdge(core.Vertex(rng.Int63n(n)), core.Vertex(rng.Int63n(n)))
}
