package main

//----------------------------------------------------------------------
// This file is part of Diophantus.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Diophantus is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Diophantus is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/bfix/diophantus/equation"
	"github.com/bfix/diophantus/ioformat"
	"github.com/bfix/diophantus/logger"
	"github.com/bfix/diophantus/solver"
	"github.com/bfix/diophantus/validator"
)

func main() {
	var verbosity int
	var validate, progress, batch bool
	flag.IntVar(&verbosity, "v", logger.INFO, "log verbosity (0=fatal..5=trace)")
	flag.IntVar(&verbosity, "verbosity", logger.INFO, "log verbosity (0=fatal..5=trace)")
	flag.BoolVar(&validate, "validate", false, "independently re-check the solution before reporting it")
	flag.BoolVar(&progress, "progress", false, "log elimination progress at debug level")
	flag.BoolVar(&batch, "batch", false, "solve multiple input files concurrently")
	flag.Parse()

	logger.SetLogLevel(verbosity)

	filenames := flag.Args()
	if len(filenames) == 0 {
		fmt.Fprintln(os.Stderr, "usage: diophantus [flags] filename...")
		os.Exit(1)
	}
	if !batch && len(filenames) > 1 {
		fmt.Fprintln(os.Stderr, "multiple input files require --batch")
		os.Exit(1)
	}

	if len(filenames) == 1 {
		os.Exit(runOne(filenames[0], validate, progress))
	}
	os.Exit(runBatch(filenames, validate, progress))
}

// runOne solves a single file and prints its outcome, returning the
// process exit code for that outcome.
func runOne(filename string, validate, progress bool) int {
	sys, err := loadSystem(filename)
	if err != nil {
		logger.Printf(logger.ERROR, "[%s] %v", filename, err)
		return 1
	}

	var onProgress solver.Progress
	if progress {
		onProgress = func(iteration, remaining int) {
			logger.Printf(logger.DEBUG, "[%s] iteration %d: %s", filename, iteration, logger.EquationsRemaining(remaining))
		}
	}

	original := sys.Clone()
	sol, err := solver.Solve(sys, onProgress)
	if err != nil {
		fmt.Println("no solution")
		return 0
	}
	sol = solver.FilterOriginal(sol, original.VariableCount())

	if validate && !validator.IsValidSolution(original, sol) {
		logger.Printf(logger.FATAL, "[%s] solver produced a witness that fails validation", filename)
		return 1
	}

	logger.Printf(logger.INFO, "[%s] %s", filename, logger.AssignmentsFound(len(sol.Assignments)))
	fmt.Println(sol)
	return 0
}

// runBatch solves each file concurrently via errgroup, one independent
// System per file (spec.md §5's independence guarantee between solver
// instances). The overall exit code is 1 if any file failed.
func runBatch(filenames []string, validate, progress bool) int {
	results := make([]int, len(filenames))
	var g errgroup.Group
	for i, filename := range filenames {
		i, filename := i, filename
		g.Go(func() error {
			results[i] = runOne(filename, validate, progress)
			return nil
		})
	}
	_ = g.Wait()

	for _, code := range results {
		if code != 0 {
			return 1
		}
	}
	return 0
}

func loadSystem(filename string) (*equation.System, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ioformat.Parse(f)
}
