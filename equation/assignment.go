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

import (
	"fmt"

	"github.com/bfix/diophantus/bigint"
)

// Assignment is the terminal form of a DeducedEquation whose
// right-hand terms reduce to empty: a concrete value for one variable.
type Assignment struct {
	Variable VarID
	Value    *bigint.Int
}

// String renders an assignment as "x<id> = <value>".
func (a Assignment) String() string {
	return fmt.Sprintf("x%d = %s", a.Variable, a.Value)
}
