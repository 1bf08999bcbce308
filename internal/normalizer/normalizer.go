package normalizer

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	droppedSelector = "script, style, noscript, template"
	blockSelector   = "p, div, li, ul, ol, dd, dt, tr, table, h1, h2, h3, h4, h5, h6, " +
		"blockquote, pre, section, article, header, footer, aside, nav, figure, figcaption, hr"
)

// Normalize strips markup from raw text, keeping structural line breaks as
// "\n". Extraction is repeated until the output stops changing, so
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	text := cleanLines(raw)

	// A pass that changes the text removes at least one rune (a tag or an
	// entity), so the rune count bounds the number of passes.
	for range utf8.RuneCountInString(text) + 1 {
		if !strings.ContainsAny(text, "<&") {
			return text
		}

		next := extractText(text)
		if next == text {
			return text
		}
		text = next
	}

	return text
}

func extractText(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return cleanLines(raw)
	}

	doc.Find(droppedSelector).Remove()
	doc.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithHtml("\n")
	})
	doc.Find(blockSelector).Each(func(_ int, block *goquery.Selection) {
		block.PrependHtml("\n")
		block.AppendHtml("\n")
	})

	return cleanLines(doc.Text())
}

func cleanLines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}
