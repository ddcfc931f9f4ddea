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
	"math"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/thundercloud/site-audit-service/view"
)

const (
	maxHtmlBytes      = 200000
	minTitleLength    = 30
	maxTitleLength    = 60
	minDescriptionLen = 120
	maxDescriptionLen = 160
	minBodyWords      = 300
)

func one(f view.Finding) []view.Finding {
	return []view.Finding{f}
}

func checkHttps(in *Input) []view.Finding {
	if in.URL != "" && !strings.HasPrefix(in.URL, "https://") {
		return one(newFinding(HttpsMissing, "Website is not using HTTPS"))
	}
	return nil
}

func checkSitemap(in *Input) []view.Finding {
	if href, _ := in.Doc.Attr(`link[rel="sitemap"]`, "href"); strings.TrimSpace(href) == "" {
		return one(newFinding(SitemapMissing, "Sitemap.xml is missing"))
	}
	return nil
}

// robots.txt lives outside the page, so it can not be observed from markup.
func checkRobots(in *Input) []view.Finding {
	return one(newFinding(RobotsMissing, "Robots.txt is missing"))
}

func checkDoctype(in *Input) []view.Finding {
	if !hasDoctype(in.Doc.Raw()) {
		return one(newFinding(DoctypeMissing, "HTML5 doctype is missing"))
	}
	return nil
}

func hasDoctype(raw string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(raw)), "<!doctype html>")
}

func checkHtmlSize(in *Input) []view.Finding {
	size := in.Doc.ByteSize()
	if size > maxHtmlBytes {
		kb := int(math.Round(float64(size) / 1000))
		return one(newFinding(HtmlTooLarge, fmt.Sprintf("HTML size is %dKB (recommend < 200KB)", kb)))
	}
	return nil
}

func checkTitle(in *Input) []view.Finding {
	title := in.Doc.Text("title")
	length := utf8.RuneCountInString(title)
	switch {
	case title == "":
		return one(newFinding(TitleMissing, "Title tag is missing"))
	case length < minTitleLength:
		return one(newFinding(TitleTooShort, fmt.Sprintf("Title is too short (%d chars, recommend 50-60)", length)))
	case length > maxTitleLength:
		return one(newFinding(TitleTooLong, fmt.Sprintf("Title is too long (%d chars, recommend 50-60)", length)))
	}
	return nil
}

func metaDescription(in *Input) string {
	content, _ := in.Doc.Attr(`meta[name="description"]`, "content")
	return strings.TrimSpace(content)
}

func checkMetaDescription(in *Input) []view.Finding {
	desc := metaDescription(in)
	length := utf8.RuneCountInString(desc)
	switch {
	case desc == "":
		return one(newFinding(MetaDescriptionMissing, "Meta description is missing"))
	case length < minDescriptionLen:
		return one(newFinding(MetaDescriptionTooShort, fmt.Sprintf("Meta description is too short (%d chars, recommend 150-160)", length)))
	}
	return nil
}

func checkH1(in *Input) []view.Finding {
	count := in.Doc.Count("h1")
	switch {
	case count == 0:
		return one(newFinding(H1Missing, "H1 heading is missing"))
	case count > 1:
		return one(newFinding(MultipleH1, fmt.Sprintf("Multiple H1 tags found (%d, recommend 1)", count)))
	}
	return nil
}

func checkImageAlt(in *Input) []view.Finding {
	missing := in.Doc.Find("img").FilterFunction(func(_ int, s *goquery.Selection) bool {
		alt, _ := s.Attr("alt")
		return strings.TrimSpace(alt) == ""
	}).Length()
	if missing > 0 {
		return one(newFinding(ImagesMissingAlt, fmt.Sprintf("%d images missing alt text", missing)))
	}
	return nil
}

// Only rendered body text counts: words inside script, style, noscript and
// template elements are not part of the page copy.
func checkWordCount(in *Input) []view.Finding {
	words := len(in.Doc.BodyWords())
	if words < minBodyWords {
		return one(newFinding(LowWordCount, fmt.Sprintf("Low word count (%d words, recommend 300+)", words)))
	}
	return nil
}

func checkViewport(in *Input) []view.Finding {
	if !in.Doc.Exists(`meta[name="viewport"]`) {
		return one(newFinding(ViewportMissing, "Viewport meta tag is missing"))
	}
	return nil
}

// An image is considered optimized when its src carries a width or quality
// parameter of an image CDN.
func checkImageOptimization(in *Input) []view.Finding {
	count := in.Doc.Find("img").FilterFunction(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		return src != "" && !strings.Contains(src, "w=") && !strings.Contains(src, "q=")
	}).Length()
	if count > 0 {
		return one(newFinding(UnoptimizedImages, fmt.Sprintf("%d images may not be optimized", count)))
	}
	return nil
}
