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
	"encoding/json"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/thundercloud/site-audit-service/document"
	"github.com/thundercloud/site-audit-service/view"
	"golang.org/x/text/cases"
)

// The parser always synthesizes html, head and body, so their presence is
// read from the markup as written.
var (
	htmlTagRe     = regexp.MustCompile(`(?i)<html[\s>/]`)
	headTagRe     = regexp.MustCompile(`(?i)<head[\s>/]`)
	bodyTagRe     = regexp.MustCompile(`(?i)<body[\s>/]`)
	sentenceEndRe = regexp.MustCompile(`[.!?]+`)
)

const (
	topKeywordCount   = 5
	minKeywordLength  = 4
	syllablesPerWord  = 1.5
	colorContrastNote = "Requires visual analysis"
)

func buildDetails(doc *document.Document) *view.AuditDetails {
	return &view.AuditDetails{
		Technical: view.TechnicalDetails{
			HtmlValidation: analyzeHtmlStructure(doc),
			LinkAnalysis:   analyzeLinks(doc),
			SchemaMarkup:   analyzeSchemaMarkup(doc),
		},
		Content: view.ContentDetails{
			ReadabilityScore: readabilityScore(doc),
			KeywordDensity:   keywordDensity(doc),
			HeadingStructure: headingStructure(doc),
		},
		Accessibility: view.AccessibilityDetails{
			AriaLabels:         ariaCoverage(doc),
			ColorContrast:      view.UncheckedAnalysis{Checked: false, Note: colorContrastNote},
			KeyboardNavigation: keyboardNavigation(doc),
		},
	}
}

func analyzeHtmlStructure(doc *document.Document) view.HtmlStructure {
	raw := doc.Raw()
	return view.HtmlStructure{
		HasDoctype:    hasDoctype(raw),
		HasHtmlTag:    htmlTagRe.MatchString(raw),
		HasHeadTag:    headTagRe.MatchString(raw),
		HasBodyTag:    bodyTagRe.MatchString(raw),
		TotalElements: doc.ElementCount(),
	}
}

func analyzeLinks(doc *document.Document) view.LinkStructure {
	res := view.LinkStructure{}
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		res.TotalLinks++
		href, _ := s.Attr("href")
		if strings.HasPrefix(href, "/") || strings.HasPrefix(href, "#") {
			res.InternalLinks++
		}
		if strings.TrimSpace(s.Text()) == "" {
			res.LinksWithoutText++
		}
	})
	res.ExternalLinks = res.TotalLinks - res.InternalLinks
	return res
}

// analyzeSchemaMarkup inventories the @type of every parsable JSON-LD block.
// Blocks without a usable @type are reported as "Unknown".
func analyzeSchemaMarkup(doc *document.Document) view.SchemaOverview {
	res := view.SchemaOverview{Types: []string{}}
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var block interface{}
		if err := json.Unmarshal([]byte(strings.TrimSpace(s.Text())), &block); err != nil {
			return
		}
		res.Count++
		res.Types = append(res.Types, schemaTypes(block)...)
	})
	for _, t := range res.Types {
		switch t {
		case "Organization":
			res.HasOrganization = true
		case "WebSite":
			res.HasWebSite = true
		case "WebPage":
			res.HasWebPage = true
		}
	}
	return res
}

func schemaTypes(block interface{}) []string {
	obj, ok := block.(map[string]interface{})
	if !ok {
		return []string{"Unknown"}
	}
	switch t := obj["@type"].(type) {
	case string:
		if t != "" {
			return []string{t}
		}
	case []interface{}:
		var res []string
		for _, v := range t {
			if s, ok := v.(string); ok && s != "" {
				res = append(res, s)
			}
		}
		if len(res) > 0 {
			return res
		}
	}
	return []string{"Unknown"}
}

// readabilityScore approximates Flesch Reading Ease with a fixed syllable
// estimate per word. The result is clamped to [0, 100].
func readabilityScore(doc *document.Document) float64 {
	words := len(doc.BodyWords())
	sentences := 0
	for _, part := range sentenceEndRe.Split(doc.BodyText(), -1) {
		if strings.TrimSpace(part) != "" {
			sentences++
		}
	}
	if words == 0 || sentences == 0 {
		return 0
	}
	score := 206.835 - 1.015*(float64(words)/float64(sentences)) - 84.6*syllablesPerWord
	return round(math.Max(0, math.Min(100, score)), 2)
}

func keywordDensity(doc *document.Document) view.KeywordDensity {
	words := doc.BodyWords()
	fold := cases.Fold()
	counts := map[string]int{}
	for _, w := range words {
		clean := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
				return r
			}
			return -1
		}, fold.String(w))
		if utf8.RuneCountInString(clean) >= minKeywordLength {
			counts[clean]++
		}
	}

	keywords := make([]view.Keyword, 0, len(counts))
	for w, c := range counts {
		keywords = append(keywords, view.Keyword{Word: w, Count: c})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Word < keywords[j].Word
	})
	if len(keywords) > topKeywordCount {
		keywords = keywords[:topKeywordCount]
	}
	for i := range keywords {
		keywords[i].Density = round(float64(keywords[i].Count)/float64(len(words))*100, 2)
	}

	return view.KeywordDensity{
		TotalWords:  len(words),
		UniqueWords: len(counts),
		TopKeywords: keywords,
	}
}

func headingStructure(doc *document.Document) view.HeadingStructure {
	res := view.HeadingStructure{}
	for _, level := range doc.HeadingLevels() {
		switch level {
		case 1:
			res.H1++
		case 2:
			res.H2++
		case 3:
			res.H3++
		case 4:
			res.H4++
		case 5:
			res.H5++
		case 6:
			res.H6++
		}
		res.Total++
	}
	return res
}

func ariaCoverage(doc *document.Document) view.AriaCoverage {
	res := view.AriaCoverage{
		ElementsWithAria:    doc.Count("[aria-label], [aria-labelledby], [aria-describedby]"),
		InteractiveElements: doc.Count("button, a, input, select, textarea"),
	}
	if res.InteractiveElements > 0 {
		res.Coverage = round(float64(res.ElementsWithAria)/float64(res.InteractiveElements)*100, 1)
	}
	return res
}

func keyboardNavigation(doc *document.Document) view.KeyboardNavigation {
	return view.KeyboardNavigation{
		FocusableElements:            doc.Count("a, button, input, select, textarea, [tabindex]"),
		ElementsWithNegativeTabindex: doc.Count(`[tabindex="-1"]`),
		HasTabindexZero:              doc.Exists(`[tabindex="0"]`),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
