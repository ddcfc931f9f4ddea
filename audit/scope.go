// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package audit

import (
	"strings"

	"github.com/thundercloud/site-audit-service/exception"
	"github.com/thundercloud/site-audit-service/view"
)

// ParseScope accepts the canonical scope names and the legacy
// "high-level"/"low-level" aliases. An empty value means quick.
func ParseScope(value string) (view.Scope, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(view.ScopeQuick), "high-level":
		return view.ScopeQuick, nil
	case string(view.ScopeComprehensive), "low-level":
		return view.ScopeComprehensive, nil
	}
	return "", &exception.InvalidInputError{Reason: "unknown audit scope '" + value + "'"}
}

var quickBudgets = []categoryBudget{
	{view.CategoryTechnical, 30},
	{view.CategoryOnPage, 25},
	{view.CategoryContent, 20},
	{view.CategoryMobile, 15},
	{view.CategoryPerformance, 10},
}

var comprehensiveBudgets = append(append([]categoryBudget{}, quickBudgets...),
	categoryBudget{view.CategoryAccessibility, 20},
	categoryBudget{view.CategoryStructuredData, 15},
)

type categoryBudget struct {
	category view.Category
	budget   int
}

func budgetsFor(scope view.Scope) []categoryBudget {
	if scope == view.ScopeComprehensive {
		return comprehensiveBudgets
	}
	return quickBudgets
}

// Budgets returns the maximum score of every category scored in scope.
func Budgets(scope view.Scope) map[view.Category]int {
	res := map[view.Category]int{}
	for _, b := range budgetsFor(scope) {
		res[b.category] = b.budget
	}
	return res
}

// MaxScore is 100 for quick scope and 135 for comprehensive scope.
func MaxScore(scope view.Scope) int {
	total := 0
	for _, b := range budgetsFor(scope) {
		total += b.budget
	}
	return total
}

// Categories lists the categories scored in scope in report order.
func Categories(scope view.Scope) []view.Category {
	budgets := budgetsFor(scope)
	res := make([]view.Category, 0, len(budgets))
	for _, b := range budgets {
		res = append(res, b.category)
	}
	return res
}
