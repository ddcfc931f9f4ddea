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

import "github.com/thundercloud/site-audit-service/view"

// Score subtracts finding points from each category budget. A category never
// goes below zero; findings of categories not scored in scope are ignored.
func Score(scope view.Scope, findings []view.Finding) (map[view.Category]int, int) {
	lost := map[view.Category]int{}
	for _, f := range findings {
		lost[f.Category] += f.Points
	}
	scores := map[view.Category]int{}
	total := 0
	for _, b := range budgetsFor(scope) {
		score := b.budget - lost[b.category]
		if score < 0 {
			score = 0
		}
		scores[b.category] = score
		total += score
	}
	return scores, total
}
