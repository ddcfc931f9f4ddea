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
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/thundercloud/site-audit-service/document"
	"github.com/thundercloud/site-audit-service/view"
)

const (
	minTitleLength       = 30
	minDescriptionLength = 120
	maxInlineCssSize     = 50000
	minWords             = 300
)

var (
	openGraphTags  = []string{"og:title", "og:description", "og:image", "og:url"}
	semanticTags   = []string{"header", "nav", "main", "footer"}
	modernFeatures = []string{"grid", "flex", "transform", "transition"}
	placeholders   = []string{"lorem ipsum", "placeholder", "add your content here"}
	ctaPhrases     = []string{"sign up", "get started", "learn more", "contact", "buy now"}
)

var scriptTagRe = regexp.MustCompile(`(?i)<script[^>]*>`)

// page caches the derived texts every category looks at.
type page struct {
	doc  *document.Document
	scan ScanMode
	css  string
	// design is matched case-sensitively, except for modernFeatures.
	design string
	// content is lowercased.
	content string
}

func newPage(doc *document.Document, scan ScanMode) *page {
	p := &page{doc: doc, scan: scan}
	var css []string
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		css = append(css, s.Text())
	})
	p.css = strings.Join(css, "\n")

	if scan == ScanRenderedPage {
		inline := []string{p.css}
		doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
			v, _ := s.Attr("style")
			inline = append(inline, v)
		})
		p.design = strings.ToLower(strings.Join(inline, "\n"))
		p.content = strings.ToLower(doc.BodyText())
		return p
	}
	p.design = doc.Raw()
	p.content = strings.ToLower(doc.Raw())
	return p
}

func validateSEO(p *page) view.ValidationCheck {
	s := newScorer()
	doc := p.doc

	if title := doc.Text("title"); utf8.RuneCountInString(title) < minTitleLength {
		s.penalize(10, fmt.Sprintf("Title tag missing or too short (min %d chars)", minTitleLength))
	}
	desc, _ := doc.Attr(`meta[name="description"]`, "content")
	if utf8.RuneCountInString(strings.TrimSpace(desc)) < minDescriptionLength {
		s.penalize(10, fmt.Sprintf("Meta description missing or too short (min %d chars)", minDescriptionLength))
	}
	for _, tag := range openGraphTags {
		if !doc.Exists(`meta[property="` + tag + `"]`) {
			s.penalize(5, "Missing Open Graph tag: "+tag)
		}
	}
	switch h1 := doc.Count("h1"); {
	case h1 == 0:
		s.penalize(15, "No H1 heading found")
	case h1 > 1:
		s.penalize(5, "Multiple H1 headings found (should have exactly one)")
	}
	for _, tag := range semanticTags {
		if !doc.Exists(tag) {
			s.penalize(5, "Missing semantic tag: <"+tag+">")
		}
	}
	withoutAlt := doc.Find("img").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		alt, _ := sel.Attr("alt")
		return strings.TrimSpace(alt) == ""
	}).Length()
	if withoutAlt > 0 {
		s.penalize(min(withoutAlt*3, 15), fmt.Sprintf("%d images missing alt text", withoutAlt))
	}
	if !strings.Contains(doc.Raw(), "application/ld+json") {
		s.penalize(10, "No Schema.org structured data found")
	}
	return s.result()
}

func validatePerformance(p *page) view.ValidationCheck {
	s := newScorer()
	doc := p.doc

	if !doc.Exists("style") {
		s.penalize(20, "No embedded CSS found")
	} else if utf8.RuneCountInString(p.css) > maxInlineCssSize {
		s.penalize(10, "CSS size excessive (>50KB). Consider optimization.")
	}
	if doc.Exists(`link[rel~="stylesheet"]`) {
		s.penalize(5, "External CSS detected. Prefer critical CSS inline.")
	}
	if doc.Exists("img") && !doc.Exists(`img[loading="lazy"]`) {
		s.penalize(10, "No lazy loading detected for images")
	}
	if p.blockingScripts() > 0 {
		s.penalize(5, "Blocking scripts detected. Use async/defer.")
	}
	return s.result()
}

func (p *page) blockingScripts() int {
	if p.scan == ScanRenderedPage {
		return p.doc.Find("script").FilterFunction(func(_ int, sel *goquery.Selection) bool {
			if _, ok := sel.Attr("async"); ok {
				return false
			}
			if _, ok := sel.Attr("defer"); ok {
				return false
			}
			return isClassicScript(sel)
		}).Length()
	}
	// any mention of async or defer inside the opening tag counts
	blocking := 0
	for _, tag := range scriptTagRe.FindAllString(p.doc.Raw(), -1) {
		if !strings.Contains(tag, "async") && !strings.Contains(tag, "defer") {
			blocking++
		}
	}
	return blocking
}

// isClassicScript reports whether the browser would execute the script
// synchronously. Data blocks such as JSON-LD and module scripts never block.
func isClassicScript(sel *goquery.Selection) bool {
	t, _ := sel.Attr("type")
	t = strings.ToLower(strings.TrimSpace(t))
	return t == "" || strings.Contains(t, "javascript") || strings.Contains(t, "ecmascript")
}

func validateAccessibility(p *page) view.ValidationCheck {
	s := newScorer()
	doc := p.doc

	unlabelled := doc.Find("button, a").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		label, _ := sel.Attr("aria-label")
		return strings.TrimSpace(sel.Text()) == "" && strings.TrimSpace(label) == ""
	}).Length()
	if unlabelled > 0 {
		s.penalize(10, fmt.Sprintf("%d buttons/links without text or aria-label", unlabelled))
	}

	labelled := map[string]bool{}
	doc.Find("label[for]").Each(func(_ int, sel *goquery.Selection) {
		forId, _ := sel.Attr("for")
		labelled[forId] = true
	})
	withoutLabel := doc.Find("input, textarea, select").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		id, _ := sel.Attr("id")
		return id == "" || !labelled[id]
	}).Length()
	if withoutLabel > 0 {
		s.penalize(min(withoutLabel*5, 15), fmt.Sprintf("%d form inputs without associated labels", withoutLabel))
	}

	if doc.Lang() == "" {
		s.penalize(10, "Missing lang attribute on <html>")
	}
	if !doc.Exists(`meta[name="viewport"]`) {
		s.penalize(15, "Missing viewport meta tag")
	}
	return s.result()
}

func validateDesign(p *page) view.ValidationCheck {
	s := newScorer()
	css := p.design

	if !strings.Contains(css, ":root") && !strings.Contains(css, "--") {
		s.penalize(10, "No CSS custom properties (variables) detected")
	}
	if !strings.Contains(css, "@media") {
		s.penalize(20, "No media queries found. Site may not be responsive.")
	}
	lower := strings.ToLower(css)
	for _, feature := range modernFeatures {
		if !strings.Contains(lower, feature) {
			s.penalize(5, fmt.Sprintf("No %s usage detected", feature))
		}
	}
	if !strings.Contains(css, "animation") && !strings.Contains(css, "transition") {
		s.penalize(10, "No animations or transitions detected")
	}
	return s.result()
}

func validateContent(p *page) view.ValidationCheck {
	s := newScorer()

	if words := len(p.doc.BodyWords()); words < minWords {
		s.penalize(20, fmt.Sprintf("Content too short (%d words, min %d)", words, minWords))
	}
	for _, placeholder := range placeholders {
		if strings.Contains(p.content, placeholder) {
			s.penalize(10, fmt.Sprintf("Placeholder content detected: %q", placeholder))
		}
	}
	hasCTA := false
	for _, cta := range ctaPhrases {
		if strings.Contains(p.content, cta) {
			hasCTA = true
			break
		}
	}
	if !hasCTA {
		s.penalize(10, "No clear call-to-action detected")
	}
	return s.result()
}
