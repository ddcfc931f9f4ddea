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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thundercloud/site-audit-service/view"
)

func TestScore_ClampsAtZero(t *testing.T) {
	findings := []view.Finding{
		newFinding(TitleMissing, ""),
		newFinding(MetaDescriptionMissing, ""),
		newFinding(H1Missing, ""),
		newFinding(ImagesMissingAlt, ""),
		newFinding(MetaDescriptionTooLong, ""),
	}
	scores, total := Score(view.ScopeQuick, findings)
	assert.Equal(t, 0, scores[view.CategoryOnPage])
	assert.Equal(t, 75, total)
}

func TestScore_IgnoresCategoriesOutsideScope(t *testing.T) {
	findings := []view.Finding{newFinding(NoMainLandmark, "")}

	scores, total := Score(view.ScopeQuick, findings)
	assert.Equal(t, 100, total)
	_, ok := scores[view.CategoryAccessibility]
	assert.False(t, ok)

	scores, total = Score(view.ScopeComprehensive, findings)
	assert.Equal(t, 130, total)
	assert.Equal(t, 15, scores[view.CategoryAccessibility])
}

func TestScore_AddingFindingNeverIncreasesScore(t *testing.T) {
	var findings []view.Finding
	_, previous := Score(view.ScopeComprehensive, findings)
	for _, r := range catalog {
		for id, def := range definitions {
			if def.category != r.category {
				continue
			}
			findings = append(findings, newFinding(id, ""))
			_, total := Score(view.ScopeComprehensive, findings)
			assert.LessOrEqual(t, total, previous)
			previous = total
		}
	}
	assert.GreaterOrEqual(t, previous, 0)
}

func TestBudgets(t *testing.T) {
	assert.Equal(t, 100, MaxScore(view.ScopeQuick))
	assert.Equal(t, 135, MaxScore(view.ScopeComprehensive))
	assert.Equal(t, map[view.Category]int{
		view.CategoryTechnical:      30,
		view.CategoryOnPage:         25,
		view.CategoryContent:        20,
		view.CategoryMobile:         15,
		view.CategoryPerformance:    10,
		view.CategoryAccessibility:  20,
		view.CategoryStructuredData: 15,
	}, Budgets(view.ScopeComprehensive))
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []view.Category{
		view.CategoryTechnical, view.CategoryOnPage, view.CategoryContent, view.CategoryMobile, view.CategoryPerformance,
	}, Categories(view.ScopeQuick))
	assert.Len(t, Categories(view.ScopeComprehensive), 7)
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		in      string
		want    view.Scope
		wantErr bool
	}{
		{"", view.ScopeQuick, false},
		{"quick", view.ScopeQuick, false},
		{"high-level", view.ScopeQuick, false},
		{"Comprehensive", view.ScopeComprehensive, false},
		{"low-level", view.ScopeComprehensive, false},
		{"full", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScope(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
