// Package goquery implements markup normalization and parsing of legal
// documents on top of goquery and golang.org/x/net/html.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lawtree"
)

// regionSelectors lists candidate content containers, most specific first.
// The first one present in a document is its content region.
var regionSelectors = []string{
	"div.content1",
	"div#contentBody",
	"div#toanvancontent",
	"body",
}

// discardSelector matches nodes whose text never counts as content.
const discardSelector = "script, style, iframe, noscript, object, embed"

// selectRegion parses content and returns its cleaned content region.
func selectRegion(content string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, lawtree.Errorf(lawtree.EINVALID, "failed to parse HTML: %v", err)
	}

	region := doc.Selection
	for _, selector := range regionSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			region = sel
			break
		}
	}

	region.Find(discardSelector).Remove()
	return region, nil
}

// ContentHTML returns the inner markup of the content region with
// non-content nodes removed.
func ContentHTML(content string) (string, error) {
	region, err := selectRegion(content)
	if err != nil {
		return "", err
	}
	html, err := region.Html()
	if err != nil {
		return "", lawtree.Errorf(lawtree.EINVALID, "failed to render HTML: %v", err)
	}
	return strings.TrimSpace(html), nil
}
