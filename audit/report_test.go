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

func TestRecommendations_Empty(t *testing.T) {
	assert.Equal(t, []string{}, Recommendations(nil))
}

func TestRecommendations_Order(t *testing.T) {
	findings := []view.Finding{
		newFinding(HttpsMissing, ""),
		newFinding(SitemapMissing, ""),
		newFinding(RobotsMissing, ""),
		newFinding(DoctypeMissing, ""),
		newFinding(NoCanonicalUrl, ""),
		newFinding(LowWordCount, ""),
		newFinding(HeadingHierarchyBroken, ""),
		newFinding(NoMainLandmark, ""),
		newFinding(NoSkipLink, ""),
		newFinding(FormsMissingLabels, ""),
		newFinding(MissingLangAttribute, ""),
	}
	assert.Equal(t, []string{
		"Fix 5 critical issues immediately to improve search rankings",
		"Focus on technical SEO improvements for better crawlability",
		"Improve accessibility to reach wider audience and meet WCAG standards",
		"8 issues can be automatically fixed - use the Auto-Fix feature",
	}, Recommendations(findings))
}

func TestRecommendations_Thresholds(t *testing.T) {
	content := []view.Finding{
		newFinding(LowWordCount, ""),
		newFinding(HeadingHierarchyBroken, ""),
	}
	assert.Empty(t, Recommendations(content))

	content = append(content, newFinding(HeadingHierarchyBroken, ""))
	assert.Equal(t, []string{"Enhance content quality and structure for user engagement"}, Recommendations(content))

	onpage := []view.Finding{
		newFinding(TitleTooLong, ""),
		newFinding(MetaDescriptionTooShort, ""),
		newFinding(MultipleH1, ""),
		newFinding(MetaDescriptionTooLong, ""),
	}
	assert.Equal(t, []string{
		"Optimize meta tags and on-page elements for better visibility",
		"4 issues can be automatically fixed - use the Auto-Fix feature",
	}, Recommendations(onpage))
}

func TestCountChecks(t *testing.T) {
	findings := []view.Finding{
		newFinding(TitleMissing, ""),
		newFinding(RobotsMissing, ""),
		newFinding(NoTwitterCards, ""),
	}
	c := countChecks(12, findings)
	assert.Equal(t, checkCounts{passed: 10, failed: 1, warned: 1}, c)

	assert.Equal(t, 0, countChecks(1, findings).passed)
}
