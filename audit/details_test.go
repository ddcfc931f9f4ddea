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
	"github.com/stretchr/testify/require"
	"github.com/thundercloud/site-audit-service/document"
	"github.com/thundercloud/site-audit-service/view"
)

const detailsPage = `<!DOCTYPE html>
<html lang="en"><head><title>Acme</title>
<script type="application/ld+json">{"@context":"https://schema.org","@type":"Organization","name":"Acme"}</script>
<script type="application/ld+json">{"@type":["WebSite","WebPage"]}</script>
<script type="application/ld+json">{not json</script>
</head><body>
<h1>Bakery</h1><h2>Bread</h2><h2>Cakes</h2><h3>Rye</h3>
<p>Bread bread BREAD. Cakes cakes! Fresh rolls?</p>
<a href="/menu">Menu</a><a href="#top">Top</a><a href="https://other.example"></a>
<button aria-label="Open menu"></button>
<input id="q" tabindex="0"><div tabindex="-1"></div>
</body></html>`

func TestBuildDetails(t *testing.T) {
	doc, err := document.Parse(detailsPage)
	require.NoError(t, err)
	d := buildDetails(doc)

	html := d.Technical.HtmlValidation
	assert.True(t, html.HasDoctype)
	assert.True(t, html.HasHtmlTag)
	assert.True(t, html.HasHeadTag)
	assert.True(t, html.HasBodyTag)
	assert.Greater(t, html.TotalElements, 15)

	assert.Equal(t, view.LinkStructure{TotalLinks: 3, InternalLinks: 2, ExternalLinks: 1, LinksWithoutText: 1}, d.Technical.LinkAnalysis)

	schema := d.Technical.SchemaMarkup
	assert.Equal(t, 2, schema.Count)
	assert.Equal(t, []string{"Organization", "WebSite", "WebPage"}, schema.Types)
	assert.True(t, schema.HasOrganization)
	assert.True(t, schema.HasWebSite)
	assert.True(t, schema.HasWebPage)

	assert.Equal(t, view.HeadingStructure{H1: 1, H2: 2, H3: 1, Total: 4}, d.Content.HeadingStructure)
	assert.InDelta(t, 76.64, d.Content.ReadabilityScore, 0.011)

	kw := d.Content.KeywordDensity
	assert.Equal(t, 13, kw.TotalWords)
	assert.Equal(t, 6, kw.UniqueWords)
	require.Len(t, kw.TopKeywords, 5)
	assert.Equal(t, view.Keyword{Word: "bread", Count: 4, Density: 30.77}, kw.TopKeywords[0])
	assert.Equal(t, view.Keyword{Word: "cakes", Count: 3, Density: 23.08}, kw.TopKeywords[1])
	assert.Equal(t, "bakery", kw.TopKeywords[2].Word)
	assert.Equal(t, "fresh", kw.TopKeywords[3].Word)
	assert.Equal(t, "menu", kw.TopKeywords[4].Word)

	assert.Equal(t, view.AriaCoverage{ElementsWithAria: 1, InteractiveElements: 5, Coverage: 20}, d.Accessibility.AriaLabels)
	assert.False(t, d.Accessibility.ColorContrast.Checked)
	assert.Equal(t, view.KeyboardNavigation{FocusableElements: 6, ElementsWithNegativeTabindex: 1, HasTabindexZero: true}, d.Accessibility.KeyboardNavigation)
}

func TestBuildDetails_Fragment(t *testing.T) {
	doc, err := document.Parse("<p>no structure here</p>")
	require.NoError(t, err)
	d := buildDetails(doc)

	assert.False(t, d.Technical.HtmlValidation.HasDoctype)
	assert.False(t, d.Technical.HtmlValidation.HasHtmlTag)
	assert.False(t, d.Technical.HtmlValidation.HasHeadTag)
	assert.False(t, d.Technical.HtmlValidation.HasBodyTag)
	assert.Equal(t, 0, d.Technical.SchemaMarkup.Count)
	assert.Empty(t, d.Technical.SchemaMarkup.Types)
	assert.Equal(t, 0.0, d.Accessibility.AriaLabels.Coverage)
}

func TestReadabilityScore_Empty(t *testing.T) {
	doc, err := document.Parse("<html><body></body></html>")
	require.NoError(t, err)
	assert.Equal(t, 0.0, readabilityScore(doc))
	assert.Empty(t, keywordDensity(doc).TopKeywords)
}

func TestHeaderTagIsNotHead(t *testing.T) {
	doc, err := document.Parse("<header>Top</header>")
	require.NoError(t, err)
	assert.False(t, analyzeHtmlStructure(doc).HasHeadTag)
}
