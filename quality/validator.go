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

package quality

import (
	"fmt"
	"math"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/thundercloud/site-audit-service/document"
	"github.com/thundercloud/site-audit-service/exception"
	"github.com/thundercloud/site-audit-service/view"
)

const DefaultMinScore = 75

const recommendationThreshold = 80

// ScanMode selects what the design, content and blocking-script checks read.
type ScanMode int

const (
	// ScanRawHtml matches against the whole markup: design keywords anywhere
	// in the page, placeholder and call-to-action phrases in attributes and
	// urls too, and every <script> tag without async or defer as blocking,
	// JSON-LD included.
	ScanRawHtml ScanMode = iota
	// ScanRenderedPage matches design keywords in CSS only, phrases in visible
	// body text only, and counts only classic scripts as blocking.
	ScanRenderedPage
)

type Options struct {
	// MinScore is the lowest average category score that still passes.
	MinScore int
	Scan     ScanMode
}

func DefaultOptions() Options {
	return Options{MinScore: DefaultMinScore}
}

// ValidateQuality validates html with the default passing score.
func ValidateQuality(html string) (*view.ValidationResult, error) {
	return Validate(html, DefaultOptions())
}

// Validate scores html in five categories that each start at 100. The page
// passes when the average of the category scores reaches opts.MinScore.
func Validate(html string, opts Options) (*view.ValidationResult, error) {
	if opts.MinScore < 0 || opts.MinScore > 100 {
		return nil, &exception.InvalidInputError{Reason: fmt.Sprintf("min score %d is out of range [0, 100]", opts.MinScore)}
	}
	doc, err := document.Parse(html)
	if err != nil {
		return nil, err
	}
	page := newPage(doc, opts.Scan)
	checks := view.ValidationChecks{
		SEO:           validateSEO(page),
		Performance:   validatePerformance(page),
		Accessibility: validateAccessibility(page),
		Design:        validateDesign(page),
		Content:       validateContent(page),
	}
	res := summarize(checks, opts.MinScore)
	log.Debugf("Quality validation finished: score=%d, passed=%v, issues=%d", res.Score, res.Passed, len(res.Issues))
	return res, nil
}

// summarize compares the unrounded mean with minScore, so a mean of 74.8 is
// reported as 75 but does not pass.
func summarize(checks view.ValidationChecks, minScore int) *view.ValidationResult {
	sum := 0
	issues := []string{}
	for _, category := range view.QualityCategories {
		check := checks.Get(category)
		sum += check.Score
		for _, issue := range check.Issues {
			issues = append(issues, fmt.Sprintf("[%s] %s", strings.ToUpper(string(category)), issue))
		}
	}
	count := len(view.QualityCategories)
	return &view.ValidationResult{
		Passed:          sum >= minScore*count,
		Score:           int(math.Round(float64(sum) / float64(count))),
		MinScore:        minScore,
		Checks:          checks,
		Issues:          issues,
		Recommendations: recommendations(checks),
	}
}

var categoryAdvice = map[view.QualityCategory]string{
	view.QualitySEO:           "Improve SEO: Add comprehensive meta tags and structured data",
	view.QualityPerformance:   "Optimize performance: Reduce CSS size and enable lazy loading",
	view.QualityAccessibility: "Enhance accessibility: Add ARIA labels and form labels",
	view.QualityDesign:        "Modernize design: Use CSS Grid, Flexbox, and custom properties",
	view.QualityContent:       "Improve content: Add more substantial copy and clear CTAs",
}

func recommendations(checks view.ValidationChecks) []string {
	res := []string{}
	for _, category := range view.QualityCategories {
		if checks.Get(category).Score < recommendationThreshold {
			res = append(res, categoryAdvice[category])
		}
	}
	return res
}

// scorer accumulates the issues and penalties of one category.
type scorer struct {
	score  int
	issues []string
}

func newScorer() *scorer {
	return &scorer{score: 100, issues: []string{}}
}

func (s *scorer) penalize(points int, issue string) {
	s.score -= points
	s.issues = append(s.issues, issue)
}

func (s *scorer) result() view.ValidationCheck {
	score := s.score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return view.ValidationCheck{Score: score, Issues: s.issues}
}
