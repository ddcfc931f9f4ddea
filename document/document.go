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

package document

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/thundercloud/site-audit-service/exception"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a read-only, queryable view over a parsed HTML page.
type Document struct {
	raw  string
	doc  *goquery.Document
	text string
	ids  map[string]struct{}
}

// Parse builds a Document from raw markup. Malformed markup is accepted as
// the HTML5 parser would accept it in a browser; only empty input is rejected.
func Parse(raw string) (*Document, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &exception.InvalidInputError{Reason: "html is empty"}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, &exception.InvalidInputError{Reason: fmt.Sprintf("failed to parse html: %v", err)}
	}
	d := &Document{raw: raw, doc: doc}
	d.text = collapse(strings.Join(visibleText(doc.Find("body").Nodes), " "))
	d.ids = collectIds(doc.Nodes)
	return d, nil
}

func (d *Document) Raw() string {
	return d.raw
}

// ByteSize is the UTF-8 length of the raw markup.
func (d *Document) ByteSize() int {
	return len(d.raw)
}

func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

func (d *Document) Exists(selector string) bool {
	return d.doc.Find(selector).Length() > 0
}

func (d *Document) Count(selector string) int {
	return d.doc.Find(selector).Length()
}

// Attr reads an attribute of the first element matching selector.
func (d *Document) Attr(selector string, name string) (string, bool) {
	return d.doc.Find(selector).First().Attr(name)
}

// Text is the trimmed, whitespace-collapsed text of the first element matching selector.
func (d *Document) Text(selector string) string {
	return collapse(d.doc.Find(selector).First().Text())
}

// BodyText is the rendered text of <body>: script, style, noscript and
// template contents are excluded.
func (d *Document) BodyText() string {
	return d.text
}

func (d *Document) BodyWords() []string {
	return strings.Fields(d.text)
}

// Lang is the lang attribute of the root element.
func (d *Document) Lang() string {
	lang, _ := d.doc.Find("html").First().Attr("lang")
	return strings.TrimSpace(lang)
}

func (d *Document) HasID(id string) bool {
	_, ok := d.ids[id]
	return ok
}

func (d *Document) IDs() map[string]struct{} {
	res := make(map[string]struct{}, len(d.ids))
	for id := range d.ids {
		res[id] = struct{}{}
	}
	return res
}

// HeadingLevels lists h1..h6 levels in document order.
func (d *Document) HeadingLevels() []int {
	var levels []int
	walk(d.doc.Nodes, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if level := headingLevel(n.DataAtom); level > 0 {
			levels = append(levels, level)
		}
	})
	return levels
}

// ElementCount is the number of element nodes in the parsed tree, including
// the html, head and body elements the parser synthesizes.
func (d *Document) ElementCount() int {
	count := 0
	walk(d.doc.Nodes, func(n *html.Node) {
		if n.Type == html.ElementNode {
			count++
		}
	})
	return count
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

func isHiddenContainer(a atom.Atom) bool {
	switch a {
	case atom.Script, atom.Style, atom.Noscript, atom.Template:
		return true
	}
	return false
}

func visibleText(roots []*html.Node) []string {
	var parts []string
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		case html.ElementNode:
			if isHiddenContainer(n.DataAtom) {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	for _, r := range roots {
		visit(r)
	}
	return parts
}

func collectIds(roots []*html.Node) map[string]struct{} {
	ids := map[string]struct{}{}
	walk(roots, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		for _, a := range n.Attr {
			if a.Namespace == "" && a.Key == "id" && a.Val != "" {
				ids[a.Val] = struct{}{}
			}
		}
	})
	return ids
}

func walk(roots []*html.Node, f func(n *html.Node)) {
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		f(n)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	for _, r := range roots {
		visit(r)
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
