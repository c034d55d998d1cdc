package quality

import (
	stdhtml "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
)

// strict removes every element and attribute, leaving only text content
var strict = bluemonday.StrictPolicy()

// StripTags reduces a document to its visible text: markup removed, entities
// decoded, whitespace runs collapsed to single spaces
func StripTags(doc string) string {
	text := stdhtml.UnescapeString(strict.Sanitize(doc))
	return strings.Join(strings.Fields(text), " ")
}

// FoldText case-folds text for keyword and frequency analysis.
// A fresh Caser per call: cases.Caser carries state and is not safe to share
func FoldText(text string) string {
	return cases.Fold().String(text)
}
