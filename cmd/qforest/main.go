// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qforest solves a budget-constrained node selection over
// benefit/cost grids loaded from CSV files.
//
// The CSV files carry one grid row per line, no header. Multiple budgets
// may be given as a comma-separated list; each budget is an independent
// solve and they run concurrently.
//
//	qforest -benefits benefits.csv -costs costs.csv -budget 150,200,300
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/qforest/optimizer/knapsack"
)

func main() {
	var (
		benefitsPath = flag.String("benefits", "", "path to the benefits CSV matrix (required)")
		costsPath    = flag.String("costs", "", "path to the costs CSV matrix (required)")
		budgets      = flag.String("budget", "", "comma-separated budget value(s) (required)")
		repair       = flag.Bool("repair", false, "greedily drop selections until the budget holds")
		solutionOut  = flag.String("solution", "", "write the fractional solution matrix CSV here (single budget only)")
		binaryOut    = flag.String("binary", "", "write the binary solution matrix CSV here (single budget only)")
	)
	flag.Parse()

	if *benefitsPath == "" || *costsPath == "" || *budgets == "" {
		flag.Usage()
		os.Exit(2)
	}

	benefits, err := readMatrix(*benefitsPath)
	if err != nil {
		log.Fatalf("benefits: %v", err)
	}
	costs, err := readMatrix(*costsPath)
	if err != nil {
		log.Fatalf("costs: %v", err)
	}

	var values []float64
	for _, f := range strings.Split(*budgets, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			log.Fatalf("budget %q: %v", f, err)
		}
		values = append(values, v)
	}
	if len(values) > 1 && (*solutionOut != "" || *binaryOut != "") {
		log.Fatal("-solution/-binary require a single -budget value")
	}

	solver := &knapsack.Solver{RepairBudget: *repair}

	// Budget solves share no state, so the sweep parallelizes trivially.
	results := make([]*knapsack.Result, len(values))
	g := new(errgroup.Group)
	for i, budget := range values {
		i, budget := i, budget
		g.Go(func() error {
			res, err := solver.Solve(&knapsack.Problem{
				Benefits: benefits,
				Costs:    costs,
				Budget:   budget,
			})
			if err != nil {
				return fmt.Errorf("budget %g: %w", budget, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	for i, res := range results {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("=== budget %g ===\n", values[i])
		res.WriteSummary(os.Stdout)
	}

	if *solutionOut != "" {
		if err := writeMatrix(*solutionOut, results[0].Solution); err != nil {
			log.Fatalf("solution: %v", err)
		}
	}
	if *binaryOut != "" {
		if err := writeBinary(*binaryOut, results[0].Binary); err != nil {
			log.Fatalf("binary: %v", err)
		}
	}
}

func readMatrix(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	m := make([][]float64, len(records))
	for i, rec := range records {
		m[i] = make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			m[i][j] = v
		}
	}
	return m, nil
}

func writeMatrix(path string, m [][]float64) error {
	rows := make([][]string, len(m))
	for i, row := range m {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = strconv.FormatFloat(v, 'f', 3, 64)
		}
	}
	return writeCSV(path, rows)
}

func writeBinary(path string, m [][]int) error {
	rows := make([][]string, len(m))
	for i, row := range m {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = strconv.Itoa(v)
		}
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
