package gdrive

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// docsDocument is the subset of the Docs API document resource needed to
// flatten displayable text.
type docsDocument struct {
	DocumentID string `json:"documentId"`
	Title      string `json:"title"`
	Body       struct {
		Content []structuralElement `json:"content"`
	} `json:"body"`
}

type structuralElement struct {
	Paragraph *struct {
		Elements []struct {
			TextRun *struct {
				Content string `json:"content"`
			} `json:"textRun"`
		} `json:"elements"`
	} `json:"paragraph"`
	Table *struct {
		TableRows []struct {
			TableCells []struct {
				Content []structuralElement `json:"content"`
			} `json:"tableCells"`
		} `json:"tableRows"`
	} `json:"table"`
}

// text flattens the document body into display text, walking paragraphs and
// table cells in order.
func (d docsDocument) text() string {
	var b strings.Builder
	writeElements(&b, d.Body.Content)
	return b.String()
}

func writeElements(b *strings.Builder, elements []structuralElement) {
	for _, el := range elements {
		if el.Paragraph != nil {
			for _, pe := range el.Paragraph.Elements {
				if pe.TextRun != nil {
					b.WriteString(pe.TextRun.Content)
				}
			}
		}
		if el.Table != nil {
			for _, row := range el.Table.TableRows {
				for _, cell := range row.TableCells {
					writeElements(b, cell.Content)
				}
			}
		}
	}
}

// ExtractText converts a downloaded file body into display text based on its
// mime type. HTML is stripped to visible text; JSON is passed through
// indented; everything else is treated as plain text.
func ExtractText(mimeType string, data []byte) (string, error) {
	switch {
	case strings.HasPrefix(mimeType, "text/html"):
		return extractHTMLText(data)
	case strings.HasPrefix(mimeType, "application/json"):
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return string(data), nil
		}
		return buf.String(), nil
	default:
		return string(data), nil
	}
}

func extractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript").Remove()
	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n"), nil
}
