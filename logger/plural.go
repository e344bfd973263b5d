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

package logger

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func init() {
	message.Set(language.English, "equations-remaining",
		plural.Selectf(1, "%d",
			"=1", "%[1]d equation remaining",
			"other", "%[1]d equations remaining",
		),
	)
	message.Set(language.English, "assignments-found",
		plural.Selectf(1, "%d",
			"=1", "found %[1]d assignment",
			"other", "found %[1]d assignments",
		),
	)
}

// EquationsRemaining renders a pluralized "N equation(s) remaining"
// status line, used by the solver's --progress hook.
func EquationsRemaining(n int) string {
	return printer.Sprintf("equations-remaining", n)
}

// AssignmentsFound renders a pluralized "found N assignment(s)" status
// line, used when a Solution is reported.
func AssignmentsFound(n int) string {
	return printer.Sprintf("assignments-found", n)
}
