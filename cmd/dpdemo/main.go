// Command dpdemo runs the bounded-sum-under-pure-DP chain end to end
// against a CLI-supplied dataset file: clamp, bounded sum,
// discrete-Laplace noise, reporting the release and the exact privacy
// map the chain proves, the way cmd/ntru_sign is a thin CLI wrapper
// around a signing call.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"
	"strings"

	"vsis-dpcore/arith"
	"vsis-dpcore/combinators"
	"vsis-dpcore/measurements"
	"vsis-dpcore/samplers"
	"vsis-dpcore/transforms"
)

func main() {
	dataPath := flag.String("data", "", "path to a newline-separated integer dataset file")
	lower := flag.Int64("lower", 0, "lower clamp bound")
	upper := flag.Int64("upper", 10, "upper clamp bound")
	scaleNum := flag.Int64("scale-num", 10, "discrete Laplace scale numerator")
	scaleDen := flag.Int64("scale-den", 1, "discrete Laplace scale denominator")
	seed := flag.Int64("seed", 1, "RNG seed")
	dIn := flag.Int64("din", 1, "input distance to evaluate the chain's privacy map at")
	flag.Parse()

	var data []int64
	if *dataPath != "" {
		xs, err := readDataset(*dataPath)
		if err != nil {
			log.Fatal(err)
		}
		data = xs
	} else {
		data = []int64{1, 2, 3, 4, 5}
	}

	clamp, err := transforms.NewClamp(*lower, *upper)
	if err != nil {
		log.Fatal(err)
	}
	sum, err := transforms.NewBoundedSum(*lower, *upper)
	if err != nil {
		log.Fatal(err)
	}
	clampThenSum, err := combinators.ChainTT(sum, clamp)
	if err != nil {
		log.Fatal(err)
	}

	scale := arith.FiniteRat(big.NewRat(*scaleNum, *scaleDen))
	noise, err := measurements.DiscreteLaplaceMechanism(samplers.NewRNG(*seed), scale)
	if err != nil {
		log.Fatal(err)
	}

	chain, err := combinators.ChainMT(noise, clampThenSum)
	if err != nil {
		log.Fatal(err)
	}

	release, err := chain.Invoke(data)
	if err != nil {
		log.Fatal(err)
	}
	bound, err := chain.Map(arith.IntRat(*dIn))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("release: %d\n", release)
	fmt.Printf("privacy map at d_in=%d: %s\n", *dIn, bound.String())
}

func readDataset(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	var xs []int64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse dataset line %q: %w", line, err)
		}
		xs = append(xs, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return xs, nil
}
