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
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/thundercloud/site-audit-service/view"
)

func checkMainLandmark(in *Input) []view.Finding {
	if !in.Doc.Exists(`main, [role="main"]`) {
		return one(newFinding(NoMainLandmark, "Missing main landmark for screen readers"))
	}
	return nil
}

// Only the first same-document anchor is inspected: a skip link has to come
// before the rest of the navigation to be useful.
func checkSkipLink(in *Input) []view.Finding {
	first := in.Doc.Find(`a[href^="#"]`).First()
	if first.Length() == 0 || !strings.Contains(strings.ToLower(first.Text()), "skip") {
		return one(newFinding(NoSkipLink, "Missing skip navigation link"))
	}
	return nil
}

func checkFormLabels(in *Input) []view.Finding {
	labelled := map[string]struct{}{}
	in.Doc.Find("label[for]").Each(func(_ int, s *goquery.Selection) {
		if forId, _ := s.Attr("for"); forId != "" {
			labelled[forId] = struct{}{}
		}
	})
	missing := in.Doc.Find("input, textarea, select").FilterFunction(func(_ int, s *goquery.Selection) bool {
		if id, _ := s.Attr("id"); id != "" {
			if _, ok := labelled[id]; ok {
				return false
			}
		}
		return nonEmptyAttr(s, "aria-label") == "" && nonEmptyAttr(s, "aria-labelledby") == ""
	}).Length()
	if missing > 0 {
		return one(newFinding(FormsMissingLabels, fmt.Sprintf("%d form inputs missing labels", missing)))
	}
	return nil
}

func checkLangAttribute(in *Input) []view.Finding {
	if in.Doc.Lang() == "" {
		return one(newFinding(MissingLangAttribute, "HTML lang attribute is missing"))
	}
	return nil
}

func checkStructuredData(in *Input) []view.Finding {
	scripts := in.Doc.Find(`script[type="application/ld+json"]`)
	if scripts.Length() == 0 {
		return one(newFinding(NoStructuredData, "No structured data (Schema.org) found"))
	}
	invalid := scripts.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return !json.Valid([]byte(strings.TrimSpace(s.Text())))
	}).Length()
	if invalid > 0 {
		return one(newFinding(InvalidStructuredData, "Invalid JSON-LD structured data syntax"))
	}
	return nil
}

func checkOpenGraph(in *Input) []view.Finding {
	if !in.Doc.Exists(`meta[property^="og:"]`) {
		return one(newFinding(NoOpenGraph, "Missing Open Graph tags for social sharing"))
	}
	return nil
}

func checkTwitterCards(in *Input) []view.Finding {
	if !in.Doc.Exists(`meta[name^="twitter:"]`) {
		return one(newFinding(NoTwitterCards, "Missing Twitter Card tags"))
	}
	return nil
}

func checkCanonicalUrl(in *Input) []view.Finding {
	if href, _ := in.Doc.Attr(`link[rel="canonical"]`, "href"); strings.TrimSpace(href) == "" {
		return one(newFinding(NoCanonicalUrl, "Missing canonical URL"))
	}
	return nil
}

func checkHreflang(in *Input) []view.Finding {
	noTags := in.Doc.Count(`link[rel="alternate"][hreflang]`) == 0
	raw := in.Doc.Raw()
	mentionsLanguage := strings.Contains(raw, "language")
	mentionsTranslate := strings.Contains(raw, "translate")

	var fire bool
	switch in.Hreflang {
	case HreflangGrouped:
		fire = noTags && (mentionsLanguage || mentionsTranslate)
	default:
		fire = (noTags && mentionsLanguage) || mentionsTranslate
	}
	if fire {
		return one(newFinding(NoHreflang, "Consider adding hreflang tags for international targeting"))
	}
	return nil
}

func checkInternalAnchors(in *Input) []view.Finding {
	broken := in.Doc.Find("a[href]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		return len(href) > 1 && strings.HasPrefix(href, "#") && !in.Doc.HasID(href[1:])
	}).Length()
	if broken > 0 {
		return one(newFinding(BrokenInternalLinks, fmt.Sprintf("%d broken internal anchor links found", broken)))
	}
	return nil
}

func checkHeadingHierarchy(in *Input) []view.Finding {
	previous := 0
	for _, level := range in.Doc.HeadingLevels() {
		if previous > 0 && level > previous+1 {
			return one(newFinding(HeadingHierarchyBroken, "Heading hierarchy is not sequential (e.g., H1 → H3 without H2)"))
		}
		previous = level
	}
	return nil
}

func checkMetaDescriptionLength(in *Input) []view.Finding {
	length := utf8.RuneCountInString(metaDescription(in))
	if length > maxDescriptionLen {
		return one(newFinding(MetaDescriptionTooLong, fmt.Sprintf("Meta description is too long (%d chars, recommend 150-160)", length)))
	}
	return nil
}

func checkExternalLinkRel(in *Input) []view.Finding {
	siteHost := hostOf(in.URL)
	count := in.Doc.Find(`a[href^="http"]`).FilterFunction(func(_ int, s *goquery.Selection) bool {
		if nonEmptyAttr(s, "rel") != "" {
			return false
		}
		if siteHost == "" {
			return true
		}
		href, _ := s.Attr("href")
		return !strings.EqualFold(hostOf(href), siteHost)
	}).Length()
	if count > 0 {
		return one(newFinding(ExternalLinksMissingRel, fmt.Sprintf("%d external links without rel attribute", count)))
	}
	return nil
}

// hostOf returns "" when raw is not an absolute URL.
func hostOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func nonEmptyAttr(s *goquery.Selection, name string) string {
	v, _ := s.Attr(name)
	return strings.TrimSpace(v)
}
