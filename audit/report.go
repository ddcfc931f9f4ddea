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
	"fmt"

	"github.com/thundercloud/site-audit-service/view"
)

type checkCounts struct {
	passed int
	failed int
	warned int
}

// countChecks treats every evaluated rule without an error or warning
// finding as passed. The numbers are informational only.
func countChecks(rulesEvaluated int, findings []view.Finding) checkCounts {
	c := checkCounts{}
	for _, f := range findings {
		switch f.Severity {
		case view.SeverityError:
			c.failed++
		case view.SeverityWarning:
			c.warned++
		}
	}
	c.passed = rulesEvaluated - c.failed - c.warned
	if c.passed < 0 {
		c.passed = 0
	}
	return c
}

var categoryAdvice = []struct {
	category  view.Category
	threshold int
	message   string
}{
	{view.CategoryTechnical, 3, "Focus on technical SEO improvements for better crawlability"},
	{view.CategoryOnPage, 3, "Optimize meta tags and on-page elements for better visibility"},
	{view.CategoryContent, 2, "Enhance content quality and structure for user engagement"},
	{view.CategoryAccessibility, 2, "Improve accessibility to reach wider audience and meet WCAG standards"},
}

// Recommendations derives advice from findings only, in a fixed order.
func Recommendations(findings []view.Finding) []string {
	res := []string{}

	critical := 0
	autoFixable := 0
	perCategory := map[view.Category]int{}
	for _, f := range findings {
		if f.Severity == view.SeverityError && f.Impact == view.ImpactHigh {
			critical++
		}
		if f.AutoFixAvailable {
			autoFixable++
		}
		perCategory[f.Category]++
	}

	if critical > 0 {
		res = append(res, fmt.Sprintf("Fix %d critical issues immediately to improve search rankings", critical))
	}
	for _, a := range categoryAdvice {
		if perCategory[a.category] > a.threshold {
			res = append(res, a.message)
		}
	}
	if autoFixable > 0 {
		res = append(res, fmt.Sprintf("%d issues can be automatically fixed - use the Auto-Fix feature", autoFixable))
	}
	return res
}
