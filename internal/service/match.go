package service

import (
	"regexp"

	"github.com/samandr77/moysklad-autolink/internal/entity"
)

// purposePatterns are tried in order against the payment purpose text. The
// first capture group of the first matching pattern is the document name.
var purposePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:заказ[а-яё]*|order|№)\s*(\d+)`),
	regexp.MustCompile(`\b(\d{5,})\b`),
}

func extractDocumentName(purpose string) (string, bool) {
	for _, pattern := range purposePatterns {
		match := pattern.FindStringSubmatch(purpose)
		if match != nil {
			return match[1], true
		}
	}

	return "", false
}

// firstPayable returns the first candidate that still has something
// outstanding on it.
func firstPayable(docs []entity.Document) (entity.Document, bool) {
	for _, doc := range docs {
		if !doc.IsFullyPaid() {
			return doc, true
		}
	}

	return entity.Document{}, false
}
