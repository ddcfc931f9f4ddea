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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thundercloud/site-audit-service/exception"
	"github.com/thundercloud/site-audit-service/view"
)

func ids(findings []view.Finding) []string {
	res := make([]string, 0, len(findings))
	for _, f := range findings {
		res = append(res, f.Id)
	}
	return res
}

func byId(findings []view.Finding, id string) []view.Finding {
	var res []view.Finding
	for _, f := range findings {
		if f.Id == id {
			res = append(res, f)
		}
	}
	return res
}

func TestRunAudit_EmptyDocument(t *testing.T) {
	res, err := RunAudit("<html><head></head><body></body></html>", "", view.ScopeQuick)
	require.NoError(t, err)

	assert.Equal(t, []string{
		SitemapMissing, RobotsMissing, DoctypeMissing, TitleMissing,
		MetaDescriptionMissing, H1Missing, LowWordCount, ViewportMissing,
	}, ids(res.Findings))
	assert.Equal(t, 53, res.TotalScore)
	assert.Equal(t, 100, res.MaxScore)
	assert.Equal(t, map[view.Category]int{
		view.CategoryTechnical:   17,
		view.CategoryOnPage:      4,
		view.CategoryContent:     15,
		view.CategoryMobile:      7,
		view.CategoryPerformance: 10,
	}, res.CategoryScores)
	assert.Equal(t, []string{
		"Fix 5 critical issues immediately to improve search rankings",
		"7 issues can be automatically fixed - use the Auto-Fix feature",
	}, res.Recommendations)
	assert.Nil(t, res.Details)
}

func TestRunAudit_WellFormedPage(t *testing.T) {
	res, err := RunAudit(wellFormedPage(), "", view.ScopeQuick)
	require.NoError(t, err)

	assert.Equal(t, []string{SitemapMissing, RobotsMissing}, ids(res.Findings))
	assert.Equal(t, 92, res.TotalScore)
	assert.Equal(t, 10, res.ChecksPassed)
	assert.Equal(t, 1, res.ChecksFailed)
	assert.Equal(t, 1, res.ChecksWarned)
}

func TestRunAudit_ImagesWithoutAltAreFlat(t *testing.T) {
	html := "<!DOCTYPE html><html><body>" + strings.Repeat(`<img src="/photo.jpg?w=640">`, 12) + "</body></html>"
	res, err := RunAudit(html, "", view.ScopeQuick)
	require.NoError(t, err)

	missing := byId(res.Findings, ImagesMissingAlt)
	require.Len(t, missing, 1)
	assert.Equal(t, 4, missing[0].Points)
	assert.Equal(t, "12 images missing alt text", missing[0].Message)
	assert.Empty(t, byId(res.Findings, UnoptimizedImages))
}

func TestRunAudit_ComprehensiveAccessibility(t *testing.T) {
	html := `<!DOCTYPE html><html><head><title>` + wellFormedTitle + `</title></head><body>
<a href="#content">Skip to content</a>
<div id="content"><form><input type="text" name="q"></form></div>
</body></html>`
	res, err := RunAudit(html, "", view.ScopeComprehensive)
	require.NoError(t, err)

	assert.Equal(t, 2, res.CategoryScores[view.CategoryAccessibility])
	assert.Len(t, byId(res.Findings, MissingLangAttribute), 1)
	assert.Len(t, byId(res.Findings, NoMainLandmark), 1)
	assert.Len(t, byId(res.Findings, FormsMissingLabels), 1)
	assert.Empty(t, byId(res.Findings, NoSkipLink))
	assert.Equal(t, 135, res.MaxScore)
	assert.NotNil(t, res.Details)
}

func TestRunAudit_Https(t *testing.T) {
	res, err := RunAudit(wellFormedPage(), "http://acme.example", view.ScopeQuick)
	require.NoError(t, err)
	assert.Len(t, byId(res.Findings, HttpsMissing), 1)

	res, err = RunAudit(wellFormedPage(), "https://acme.example", view.ScopeQuick)
	require.NoError(t, err)
	assert.Empty(t, byId(res.Findings, HttpsMissing))
}

func TestRunAudit_InvalidInput(t *testing.T) {
	_, err := RunAudit("  \n ", "", view.ScopeQuick)
	var invalid *exception.InvalidInputError
	assert.True(t, errors.As(err, &invalid))

	_, err = RunAudit(wellFormedPage(), "", view.Scope("deep"))
	assert.True(t, errors.As(err, &invalid))
}

func TestRunAudit_ScopeAliases(t *testing.T) {
	quick, err := RunAudit(wellFormedPage(), "", view.Scope("high-level"))
	require.NoError(t, err)
	assert.Equal(t, view.ScopeQuick, quick.Scope)

	full, err := RunAudit(wellFormedPage(), "", view.Scope("low-level"))
	require.NoError(t, err)
	assert.Equal(t, view.ScopeComprehensive, full.Scope)
}

func TestRunAudit_Deterministic(t *testing.T) {
	html := `<html><body><h1>a</h1><h3>b</h3><a href="#missing">x</a><img src="a.png"></body></html>`
	first, err := RunAudit(html, "https://acme.example", view.ScopeComprehensive)
	require.NoError(t, err)
	second, err := RunAudit(html, "https://acme.example", view.ScopeComprehensive)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunAudit_QuickFindingsAreSubsetOfComprehensive(t *testing.T) {
	pages := []string{
		"<html><head></head><body></body></html>",
		wellFormedPage(),
		`<p>translate this page<img src="x.png"></p>`,
	}
	for _, html := range pages {
		quick, err := RunAudit(html, "http://acme.example", view.ScopeQuick)
		require.NoError(t, err)
		full, err := RunAudit(html, "http://acme.example", view.ScopeComprehensive)
		require.NoError(t, err)

		fullIds := map[string]bool{}
		for _, id := range ids(full.Findings) {
			fullIds[id] = true
		}
		for _, id := range ids(quick.Findings) {
			assert.True(t, fullIds[id], "finding %s missing from comprehensive audit", id)
		}
		assert.Equal(t, quick.Findings, full.Findings[:len(quick.Findings)])
	}
}

func TestRunAudit_MalformedMarkupNeverFails(t *testing.T) {
	for _, html := range []string{
		"<div><p>unclosed",
		"</body></html>",
		"<<<>>>",
		"plain text without tags",
		`<script type="application/ld+json">{"@type":</script>`,
	} {
		for _, scope := range []view.Scope{view.ScopeQuick, view.ScopeComprehensive} {
			res, err := RunAudit(html, "", scope)
			require.NoError(t, err, html)
			assert.GreaterOrEqual(t, res.TotalScore, 0)
			assert.LessOrEqual(t, res.TotalScore, res.MaxScore)
		}
	}
}

func TestRun_PanickingRuleIsIsolated(t *testing.T) {
	saved := catalog
	defer func() { catalog = saved }()
	catalog = append([]rule{{"exploding", view.CategoryTechnical, baseline, func(*Input) []view.Finding {
		panic("boom")
	}}}, saved...)

	res, err := RunAudit(wellFormedPage(), "", view.ScopeQuick)
	require.NoError(t, err)

	require.NotEmpty(t, res.Findings)
	failed := res.Findings[0]
	assert.Equal(t, RuleEvaluationFailed, failed.Id)
	assert.Equal(t, view.SeverityInfo, failed.Severity)
	assert.Equal(t, 0, failed.Points)
	assert.Contains(t, failed.Details, "exploding")
	assert.Equal(t, []string{RuleEvaluationFailed, SitemapMissing, RobotsMissing}, ids(res.Findings))
	assert.Equal(t, 92, res.TotalScore)
}

func TestRun_HreflangCondition(t *testing.T) {
	html := `<html><head><link rel="alternate" hreflang="de" href="/de"></head><body>Click to translate</body></html>`

	res, err := Run(html, Options{Scope: view.ScopeComprehensive})
	require.NoError(t, err)
	assert.Len(t, byId(res.Findings, NoHreflang), 1)

	res, err = Run(html, Options{Scope: view.ScopeComprehensive, Hreflang: HreflangGrouped})
	require.NoError(t, err)
	assert.Empty(t, byId(res.Findings, NoHreflang))

	noTags := `<html><body>Choose your language</body></html>`
	for _, cond := range []HreflangCondition{HreflangAsShipped, HreflangGrouped} {
		res, err = Run(noTags, Options{Scope: view.ScopeComprehensive, Hreflang: cond})
		require.NoError(t, err)
		assert.Len(t, byId(res.Findings, NoHreflang), 1)
	}
}

func TestRuleNames(t *testing.T) {
	quick := RuleNames(view.ScopeQuick)
	full := RuleNames(view.ScopeComprehensive)
	assert.Len(t, quick, 12)
	assert.Len(t, full, 25)
	assert.Equal(t, quick, full[:len(quick)])
}
