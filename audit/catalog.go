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
	"github.com/thundercloud/site-audit-service/document"
	"github.com/thundercloud/site-audit-service/view"
)

type tier int

const (
	baseline tier = iota
	extended
)

// Input is what every check sees. It is shared read-only between checks.
type Input struct {
	Doc      *document.Document
	URL      string
	Hreflang HreflangCondition
}

type check func(in *Input) []view.Finding

type rule struct {
	name     string
	category view.Category
	tier     tier
	check    check
}

// HreflangCondition selects how no_hreflang is gated.
type HreflangCondition int

const (
	// HreflangAsShipped fires when the page has no hreflang links and mentions
	// "language", or whenever the page mentions "translate" at all.
	HreflangAsShipped HreflangCondition = iota
	// HreflangGrouped fires only when the page has no hreflang links and
	// mentions "language" or "translate".
	HreflangGrouped
)

// catalog is evaluated in order. New rules are appended to keep the finding
// order of existing reports stable.
var catalog = []rule{
	{"https", view.CategoryTechnical, baseline, checkHttps},
	{"sitemap", view.CategoryTechnical, baseline, checkSitemap},
	{"robots", view.CategoryTechnical, baseline, checkRobots},
	{"doctype", view.CategoryTechnical, baseline, checkDoctype},
	{"html-size", view.CategoryPerformance, baseline, checkHtmlSize},
	{"title", view.CategoryOnPage, baseline, checkTitle},
	{"meta-description", view.CategoryOnPage, baseline, checkMetaDescription},
	{"h1", view.CategoryOnPage, baseline, checkH1},
	{"image-alt", view.CategoryOnPage, baseline, checkImageAlt},
	{"word-count", view.CategoryContent, baseline, checkWordCount},
	{"viewport", view.CategoryMobile, baseline, checkViewport},
	{"image-optimization", view.CategoryPerformance, baseline, checkImageOptimization},

	{"main-landmark", view.CategoryAccessibility, extended, checkMainLandmark},
	{"skip-link", view.CategoryAccessibility, extended, checkSkipLink},
	{"form-labels", view.CategoryAccessibility, extended, checkFormLabels},
	{"lang-attribute", view.CategoryAccessibility, extended, checkLangAttribute},
	{"structured-data", view.CategoryStructuredData, extended, checkStructuredData},
	{"open-graph", view.CategoryStructuredData, extended, checkOpenGraph},
	{"twitter-cards", view.CategoryStructuredData, extended, checkTwitterCards},
	{"canonical-url", view.CategoryTechnical, extended, checkCanonicalUrl},
	{"hreflang", view.CategoryTechnical, extended, checkHreflang},
	{"internal-anchors", view.CategoryTechnical, extended, checkInternalAnchors},
	{"heading-hierarchy", view.CategoryContent, extended, checkHeadingHierarchy},
	{"meta-description-length", view.CategoryOnPage, extended, checkMetaDescriptionLength},
	{"external-link-rel", view.CategoryTechnical, extended, checkExternalLinkRel},
}

// rulesFor returns the descriptors active in scope, baseline first.
func rulesFor(scope view.Scope) []rule {
	res := make([]rule, 0, len(catalog))
	for _, r := range catalog {
		if r.tier == baseline || scope == view.ScopeComprehensive {
			res = append(res, r)
		}
	}
	return res
}

// RuleNames lists the rules evaluated for scope in evaluation order.
func RuleNames(scope view.Scope) []string {
	rules := rulesFor(scope)
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.name)
	}
	return names
}
