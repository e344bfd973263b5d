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

package equation

import "strings"

// Solution is a list of Assignments restricted to original variables
// (id < N). Order is unspecified.
type Solution struct {
	Assignments []Assignment
}

// String renders one assignment per line.
func (s Solution) String() string {
	lines := make([]string, len(s.Assignments))
	for i, a := range s.Assignments {
		lines[i] = a.String()
	}
	return strings.Join(lines, "\n")
}
