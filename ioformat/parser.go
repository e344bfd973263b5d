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

// Package ioformat reads the line-based equation-system file format
// (spec.md §6): a header line of nEquations/nVariables followed by one
// line per equation, each a flat list of (coefficient, variable-id)
// pairs where variable-id 0 names the right-hand constant.
package ioformat

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/bfix/diophantus/bigint"
	"github.com/bfix/diophantus/equation"
	"github.com/bfix/diophantus/errors"
	"github.com/bfix/diophantus/logger"
)

// Parse reads a system from rdr. Empty lines are skipped (with a
// warning); equations beyond the declared count are warned about and
// ignored; a line whose term count disagrees with its declared nTerms
// is still consumed, with a warning.
func Parse(rdr io.Reader) (*equation.System, error) {
	scanner := bufio.NewScanner(rdr)
	line := 0

	nextLine := func() ([]string, bool) {
		for scanner.Scan() {
			line++
			fields := strings.Fields(scanner.Text())
			if len(fields) == 0 {
				logger.Printf(logger.WARN, "[ioformat] line %d: empty line skipped", line)
				continue
			}
			return fields, true
		}
		return nil, false
	}

	header, ok := nextLine()
	if !ok {
		return nil, errors.New(errors.ErrInput, "missing header line")
	}
	if len(header) != 2 {
		return nil, errors.New(errors.ErrInput, "line %d: expected 'nEquations nVariables'", line)
	}
	nEquations, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, errors.New(errors.ErrInput, "line %d: invalid nEquations %q", line, header[0])
	}
	nVariables, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, errors.New(errors.ErrInput, "line %d: invalid nVariables %q", line, header[1])
	}
	if nEquations < 0 || nVariables < 0 {
		return nil, errors.New(errors.ErrInput, "line %d: counts must be nonnegative", line)
	}

	equations := make([]equation.Equation, 0, nEquations)
	for len(equations) < nEquations {
		fields, ok := nextLine()
		if !ok {
			return nil, errors.New(errors.ErrInput, "line %d: expected %d equations, found %d",
				line, nEquations, len(equations))
		}
		eq, err := parseEquationLine(fields, line)
		if err != nil {
			return nil, err
		}
		equations = append(equations, eq)
	}

	// Any further non-empty lines are extra equations: warn and ignore.
	for {
		fields, ok := nextLine()
		if !ok {
			break
		}
		logger.Printf(logger.WARN, "[ioformat] line %d: extra equation beyond declared count %d ignored",
			line, nEquations)
		_ = fields
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.New(errors.ErrInput, "read error: %v", err)
	}

	return equation.NewSystem(nVariables, equations), nil
}

// parseEquationLine decodes "nTerms c1 v1 c2 v2 ...". Variable-id 0
// contributes its coefficient to the right side; ids 1..nVariables map
// to left-hand variables 0..nVariables-1.
func parseEquationLine(fields []string, line int) (equation.Equation, error) {
	declaredTerms, err := strconv.Atoi(fields[0])
	if err != nil {
		return equation.Equation{}, errors.New(errors.ErrInput, "line %d: invalid nTerms %q", line, fields[0])
	}

	pairs := fields[1:]
	if len(pairs)%2 != 0 {
		return equation.Equation{}, errors.New(errors.ErrInput,
			"line %d: dangling coefficient/variable pair", line)
	}
	actualTerms := len(pairs) / 2
	if actualTerms != declaredTerms {
		logger.Printf(logger.WARN, "[ioformat] line %d: declared %d terms but found %d",
			line, declaredTerms, actualTerms)
	}

	coefficients := make(map[equation.VarID]*bigint.Int)
	rightSide := bigint.ZERO
	for i := 0; i < actualTerms; i++ {
		coeffStr, varStr := pairs[2*i], pairs[2*i+1]
		coeff, err := parseBigInt(coeffStr, line)
		if err != nil {
			return equation.Equation{}, err
		}
		varID, err := strconv.Atoi(varStr)
		if err != nil {
			return equation.Equation{}, errors.New(errors.ErrInput, "line %d: invalid variable-id %q", line, varStr)
		}
		if varID < 0 {
			return equation.Equation{}, errors.New(errors.ErrInput, "line %d: negative variable-id %d", line, varID)
		}
		if varID == 0 {
			rightSide = rightSide.Add(coeff)
			continue
		}
		v := equation.VarID(varID - 1)
		if prev, ok := coefficients[v]; ok {
			coefficients[v] = prev.Add(coeff)
		} else {
			coefficients[v] = coeff
		}
	}

	ids := make([]equation.VarID, 0, len(coefficients))
	for v := range coefficients {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	terms := make([]equation.Term, 0, len(ids))
	for _, v := range ids {
		terms = append(terms, equation.NewTerm(coefficients[v], v))
	}

	return equation.NewEquation(equation.NewSum(terms), rightSide), nil
}

func parseBigInt(s string, line int) (*bigint.Int, error) {
	v, err := safeParse(s)
	if err != nil {
		return nil, errors.New(errors.ErrInput, "line %d: invalid coefficient %q", line, s)
	}
	return v, nil
}

func safeParse(s string) (v *bigint.Int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(errors.ErrInput, "%v", r)
		}
	}()
	return bigint.NewIntFromString(s), nil
}
