// Command odometerplot runs a stream of discrete-Laplace releases
// through make_odometer and renders the running privacy bound as a
// line chart, the way cmd/analysis renders sampled coefficient
// histograms: accumulate real data from a run, then hand it to
// go-echarts for an HTML report.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"vsis-dpcore/arith"
	"vsis-dpcore/combinators/adaptive"
	"vsis-dpcore/combinators/odometer"
	"vsis-dpcore/domain"
	"vsis-dpcore/internal/telemetry"
	"vsis-dpcore/measure"
	"vsis-dpcore/measurements"
	"vsis-dpcore/metric"
	"vsis-dpcore/queryable"
	"vsis-dpcore/samplers"
)

func main() {
	queries := flag.Int("queries", 25, "number of discrete-Laplace releases to run through the odometer")
	scaleNum := flag.Int64("scale-num", 1, "discrete Laplace scale numerator")
	scaleDen := flag.Int64("scale-den", 1, "discrete Laplace scale denominator")
	seed := flag.Int64("seed", 1, "RNG seed")
	dIn := flag.Int64("din", 1, "input distance to evaluate the running bound at")
	outDir := flag.String("out", "odometer_reports", "output directory for the report")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	scale := arith.FiniteRat(big.NewRat(*scaleNum, *scaleDen))
	src := samplers.NewRNG(*seed)

	inputDomain := domain.NewAtomDomain[int64]()
	inputMetric := metric.AbsoluteDistance[int64]{}
	mu := measure.MaxDivergence{}

	odo, err := odometer.MakeOdometer[int64](inputDomain, inputMetric, mu, false)
	if err != nil {
		log.Fatalf("make odometer: %v", err)
	}
	q, err := odo.Invoke(0)
	if err != nil {
		log.Fatalf("invoke odometer: %v", err)
	}

	var indices []string
	var running []float64
	var callDurationsUs []float64
	dInRat := arith.IntRat(*dIn)

	for i := 0; i < *queries; i++ {
		mech, err := measurements.DiscreteLaplaceMechanism(src, scale)
		if err != nil {
			log.Fatalf("discrete laplace mechanism: %v", err)
		}
		start := time.Now()
		if _, err := q.Eval(odometer.InvokeQuery[int64]{Meas: adaptive.Wrap[int64, int64](mech)}); err != nil {
			log.Fatalf("invoke query %d: %v", i, err)
		}
		callDurationsUs = append(callDurationsUs, float64(time.Since(start).Microseconds()))

		bound, err := queryable.EvalPoly[arith.Rat](q, odometer.MapQuery{DIn: dInRat})
		if err != nil {
			log.Fatalf("map query %d: %v", i, err)
		}
		indices = append(indices, fmt.Sprintf("%d", i+1))
		running = append(running, bound.Float64())
	}

	digest, err := queryable.EvalPoly[[32]byte](q, odometer.DigestQuery{})
	if err != nil {
		log.Fatalf("digest query: %v", err)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Odometer running privacy bound",
			Subtitle: fmt.Sprintf("queries=%d, d_in=%d, digest=%x", *queries, *dIn, digest[:8]),
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "odometerplot", Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	lineItems := make([]opts.LineData, len(running))
	for i, v := range running {
		lineItems[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(indices).AddSeries("epsilon bound", lineItems)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Per-query wall time", Subtitle: "microseconds"}),
	)
	barItems := make([]opts.BarData, len(callDurationsUs))
	for i, v := range callDurationsUs {
		barItems[i] = opts.BarData{Value: v}
	}
	bar.SetXAxis(indices).AddSeries("duration_us", barItems)

	counts := telemetry.SnapshotCounts()
	fmt.Printf("sampler draw counts: %v\n", counts)

	page := components.NewPage()
	page.AddCharts(line, bar)

	ts := time.Now().Format("20060102_150405")
	htmlPath := filepath.Join(*outDir, fmt.Sprintf("odometer_trace_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Odometer trace report:", htmlPath)
}
