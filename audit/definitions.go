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

// definition holds the fixed metadata of a finding id. Checks only decide
// whether a finding is raised and with what message.
type definition struct {
	category view.Category
	severity view.Severity
	impact   view.Impact
	points   int
	fixable  bool
	autoFix  bool
	details  string
}

const (
	HttpsMissing            = "https_missing"
	SitemapMissing          = "sitemap_missing"
	RobotsMissing           = "robots_missing"
	DoctypeMissing          = "doctype_missing"
	HtmlTooLarge            = "html_too_large"
	TitleMissing            = "title_missing"
	TitleTooShort           = "title_too_short"
	TitleTooLong            = "title_too_long"
	MetaDescriptionMissing  = "meta_description_missing"
	MetaDescriptionTooShort = "meta_description_too_short"
	H1Missing               = "h1_missing"
	MultipleH1              = "multiple_h1"
	ImagesMissingAlt        = "images_missing_alt"
	LowWordCount            = "low_word_count"
	ViewportMissing         = "viewport_missing"
	UnoptimizedImages       = "unoptimized_images"
	NoMainLandmark          = "no_main_landmark"
	NoSkipLink              = "no_skip_link"
	FormsMissingLabels      = "forms_missing_labels"
	MissingLangAttribute    = "missing_lang_attribute"
	NoStructuredData        = "no_structured_data"
	InvalidStructuredData   = "invalid_structured_data"
	NoOpenGraph             = "no_open_graph"
	NoTwitterCards          = "no_twitter_cards"
	NoCanonicalUrl          = "no_canonical_url"
	NoHreflang              = "no_hreflang"
	BrokenInternalLinks     = "broken_internal_links"
	HeadingHierarchyBroken  = "heading_hierarchy_broken"
	MetaDescriptionTooLong  = "meta_description_too_long"
	ExternalLinksMissingRel = "external_links_missing_rel"
	RuleEvaluationFailed    = "rule_evaluation_failed"
)

var definitions = map[string]definition{
	HttpsMissing:            {view.CategoryTechnical, view.SeverityError, view.ImpactHigh, 5, false, false, ""},
	SitemapMissing:          {view.CategoryTechnical, view.SeverityError, view.ImpactHigh, 5, true, true, ""},
	RobotsMissing:           {view.CategoryTechnical, view.SeverityWarning, view.ImpactMedium, 3, true, true, ""},
	DoctypeMissing:          {view.CategoryTechnical, view.SeverityError, view.ImpactMedium, 5, true, true, ""},
	HtmlTooLarge:            {view.CategoryPerformance, view.SeverityWarning, view.ImpactMedium, 4, true, false, ""},
	TitleMissing:            {view.CategoryOnPage, view.SeverityError, view.ImpactHigh, 8, true, true, ""},
	TitleTooShort:           {view.CategoryOnPage, view.SeverityWarning, view.ImpactMedium, 3, true, true, ""},
	TitleTooLong:            {view.CategoryOnPage, view.SeverityWarning, view.ImpactLow, 2, true, true, ""},
	MetaDescriptionMissing:  {view.CategoryOnPage, view.SeverityError, view.ImpactHigh, 8, true, true, ""},
	MetaDescriptionTooShort: {view.CategoryOnPage, view.SeverityWarning, view.ImpactMedium, 3, true, true, ""},
	H1Missing:               {view.CategoryOnPage, view.SeverityError, view.ImpactHigh, 5, true, true, ""},
	MultipleH1:              {view.CategoryOnPage, view.SeverityWarning, view.ImpactLow, 2, true, true, ""},
	ImagesMissingAlt:        {view.CategoryOnPage, view.SeverityWarning, view.ImpactMedium, 4, true, true, ""},
	LowWordCount:            {view.CategoryContent, view.SeverityWarning, view.ImpactMedium, 5, true, false, ""},
	ViewportMissing:         {view.CategoryMobile, view.SeverityError, view.ImpactHigh, 8, true, true, ""},
	UnoptimizedImages:       {view.CategoryPerformance, view.SeverityWarning, view.ImpactMedium, 3, true, false, ""},

	NoMainLandmark: {view.CategoryAccessibility, view.SeverityError, view.ImpactHigh, 5, true, true,
		`Add <main> or role="main" to primary content area`},
	NoSkipLink: {view.CategoryAccessibility, view.SeverityWarning, view.ImpactMedium, 3, true, true,
		"Add skip-to-content link as first focusable element"},
	FormsMissingLabels: {view.CategoryAccessibility, view.SeverityError, view.ImpactHigh, 8, true, true,
		"All form inputs must have associated labels for screen readers"},
	MissingLangAttribute: {view.CategoryAccessibility, view.SeverityError, view.ImpactHigh, 5, true, true,
		`Add lang="en" or appropriate language code to <html> tag`},
	NoStructuredData: {view.CategoryStructuredData, view.SeverityWarning, view.ImpactMedium, 5, true, true,
		"Add Schema.org markup for better search engine understanding"},
	InvalidStructuredData: {view.CategoryStructuredData, view.SeverityError, view.ImpactHigh, 8, true, false,
		"Fix JSON syntax errors in structured data"},
	NoOpenGraph: {view.CategoryStructuredData, view.SeverityWarning, view.ImpactMedium, 4, true, true,
		"Add og:title, og:description, og:image for better social media sharing"},
	NoTwitterCards: {view.CategoryStructuredData, view.SeverityInfo, view.ImpactLow, 2, true, true,
		"Add twitter:card, twitter:title, twitter:description for Twitter sharing"},
	NoCanonicalUrl: {view.CategoryTechnical, view.SeverityWarning, view.ImpactMedium, 4, true, true,
		"Add canonical link to prevent duplicate content issues"},
	NoHreflang: {view.CategoryTechnical, view.SeverityInfo, view.ImpactLow, 2, true, false,
		"If targeting multiple countries/languages, add hreflang tags"},
	BrokenInternalLinks: {view.CategoryTechnical, view.SeverityWarning, view.ImpactMedium, 3, true, false,
		"Fix or remove links pointing to non-existent page sections"},
	HeadingHierarchyBroken: {view.CategoryContent, view.SeverityWarning, view.ImpactMedium, 3, true, false,
		"Ensure headings follow proper hierarchy (H1 → H2 → H3, etc.)"},
	MetaDescriptionTooLong: {view.CategoryOnPage, view.SeverityWarning, view.ImpactLow, 2, true, true,
		"Shorten meta description to ensure it displays fully in search results"},
	ExternalLinksMissingRel: {view.CategoryTechnical, view.SeverityInfo, view.ImpactLow, 2, true, true,
		`Consider adding rel="noopener" or rel="nofollow" to external links`},
}

// newFinding builds a finding from its definition. Unknown ids panic: the
// definition table and the checks are maintained together.
func newFinding(id string, message string) view.Finding {
	def, ok := definitions[id]
	if !ok {
		panic("audit: no definition for finding " + id)
	}
	return view.Finding{
		Id:               id,
		Category:         def.category,
		Severity:         def.severity,
		Impact:           def.impact,
		Message:          message,
		Points:           def.points,
		Fixable:          def.fixable,
		AutoFixAvailable: def.autoFix,
		Details:          def.details,
	}
}

func failedFinding(rule rule, cause interface{}) view.Finding {
	return view.Finding{
		Id:       RuleEvaluationFailed,
		Category: rule.category,
		Severity: view.SeverityInfo,
		Impact:   view.ImpactLow,
		Message:  "Rule " + rule.name + " could not be evaluated",
		Points:   0,
		Details:  fmtCause(rule.name, cause),
	}
}
