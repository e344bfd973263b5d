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

// SimplificationResult is the outcome of simplifying an Equation or an
// EquationSystem.
type SimplificationResult int

const (
	// Ok means the equation was simplified and is still live.
	Ok SimplificationResult = iota
	// IsEmpty means the equation reduced to 0=0 and can be dropped.
	IsEmpty
	// Conflict means the equation has no integer solution.
	Conflict
)

func (r SimplificationResult) String() string {
	switch r {
	case Ok:
		return "Ok"
	case IsEmpty:
		return "IsEmpty"
	case Conflict:
		return "Conflict"
	default:
		return "Unknown"
	}
}
