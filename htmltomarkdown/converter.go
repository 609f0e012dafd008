// Package htmltomarkdown renders legal-document markup as Markdown using
// github.com/JohannesKaufmann/html-to-markdown/v2.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/lawtree"
)

var _ lawtree.Converter = (*Converter)(nil)

// Converter renders a document's content as Markdown for review. Part,
// chapter, section and article lines of the document's variant become
// Markdown headings so the preview shows the outline the parser will see.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter. Tables are kept as Markdown tables
// since signature blocks and appendix forms are laid out with them.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert implements lawtree.Converter.
func (c *Converter) Convert(html string, v lawtree.Variant) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", lawtree.Errorf(lawtree.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", lawtree.Errorf(lawtree.EINVALID, "failed to convert HTML: %v", err)
	}
	return promoteHeadings(md, v), nil
}

// headingMarkers maps structural labels to Markdown heading markers.
var headingMarkers = map[lawtree.Label]string{
	lawtree.LabelPart:    "# ",
	lawtree.LabelChapter: "## ",
	lawtree.LabelSection: "### ",
	lawtree.LabelArticle: "#### ",
}

// promoteHeadings rewrites single-line paragraphs that classify under v as
// part, chapter, section or article headings. A paragraph wrapped entirely
// in strong emphasis counts as bold and loses the emphasis markers.
func promoteHeadings(md string, v lawtree.Variant) string {
	blocks := strings.Split(md, "\n\n")
	for i, block := range blocks {
		if strings.Contains(block, "\n") || strings.HasPrefix(block, "#") {
			continue
		}
		f := lawtree.Fragment{Text: block}
		if inner, ok := strings.CutPrefix(block, "**"); ok {
			if inner, ok = strings.CutSuffix(inner, "**"); ok && !strings.Contains(inner, "**") {
				f.Text, f.Bold = inner, true
			}
		}
		if marker, ok := headingMarkers[lawtree.Classify(f, lawtree.TypeDocument, v)]; ok {
			blocks[i] = marker + f.Text
		}
	}
	return strings.Join(blocks, "\n\n")
}
