package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are elements stripped from HTML resume exports before
// text extraction.
var noiseSelectors = []string{
	"script", "style", "noscript", "nav", "header", "footer", "iframe",
}

// ExtractHTMLText extracts readable text from an HTML resume export,
// such as a profile page saved from a job board. Block-level elements are
// separated by newlines; the result is run through CleanText.
func ExtractHTMLText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &HTMLError{Message: "failed to parse HTML", Cause: err}
	}

	for _, selector := range noiseSelectors {
		doc.Find(selector).Remove()
	}

	var sb strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, div").Each(func(_ int, s *goquery.Selection) {
		// Only take leaves; parents would duplicate nested text.
		if s.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Fall back to the whole body for markup that avoids the usual
		// block elements.
		text = doc.Find("body").Text()
	}

	return CleanText(text), nil
}

// IsHTML sniffs whether uploaded content looks like an HTML document.
func IsHTML(content string) bool {
	head := strings.ToLower(strings.TrimSpace(content))
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.HasPrefix(head, "<!doctype html") ||
		strings.HasPrefix(head, "<html") ||
		strings.Contains(head, "<body")
}
