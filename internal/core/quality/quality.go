// Package quality applies cheap statistical and structural heuristics to
// separate legitimate documents from spam. It is independent of the security
// validator: both run over the same raw text, and only error-severity
// diagnostics block acceptance; warnings ride along with an accepted record
package quality

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Severity grades a diagnostic; only SeverityError blocks acceptance
type Severity string

const (
	// SeverityError blocks the document
	SeverityError Severity = "error"
	// SeverityWarning is informational and never blocks
	SeverityWarning Severity = "warning"
)

// Kind identifies the heuristic a diagnostic was produced by
type Kind string

const (
	// KindExcessiveLinks flags too many external anchors
	KindExcessiveLinks Kind = "excessive_links"
	// KindKeywordStuffing flags one token dominating the text
	KindKeywordStuffing Kind = "keyword_stuffing"
	// KindSpamKeywords flags known spam phrases
	KindSpamKeywords Kind = "spam_keywords"
	// KindMissingTitle flags the absence of a title and h1
	KindMissingTitle Kind = "missing_title"
	// KindMissingStructure flags the absence of any content block
	KindMissingStructure Kind = "missing_content_structure"
	// KindInsufficientContent flags documents below the word floor
	KindInsufficientContent Kind = "insufficient_content"
)

// Diagnostic is one heuristic finding
type Diagnostic struct {
	Kind     Kind     `json:"kind"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Config tunes the gate thresholds. Zero values fall back to defaults
type Config struct {
	MaxExternalLinks int // default 10
	MinWordCount     int // default 100
}

func (c Config) withDefaults() Config {
	if c.MaxExternalLinks <= 0 {
		c.MaxExternalLinks = 10
	}
	if c.MinWordCount <= 0 {
		c.MinWordCount = 100
	}
	return c
}

// stuffingShare is the fraction of total tokens above which a single token
// counts as keyword stuffing
const stuffingShare = 0.05

// stuffingFloor is the minimum token count before stuffing is considered
const stuffingFloor = 10

// Validator runs the heuristics. Stateless, safe for concurrent use
type Validator struct {
	cfg Config
}

// New constructs a Validator with the given thresholds
func New(cfg Config) *Validator {
	return &Validator{cfg: cfg.withDefaults()}
}

// Validate runs every heuristic over the document.
// accepted is true when no error-severity diagnostic was produced
func (v *Validator) Validate(doc string) (bool, []Diagnostic) {
	var diags []Diagnostic

	root, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		// html.Parse cannot fail on in-memory input; guard anyway
		root = nil
	}

	text := StripTags(doc)
	folded := FoldText(text)
	words := strings.Fields(folded)

	if root != nil {
		if d := checkExternalLinks(root, v.cfg.MaxExternalLinks); d != nil {
			diags = append(diags, *d)
		}
	}
	if d := checkKeywordStuffing(words); d != nil {
		diags = append(diags, *d)
	}
	if d := checkSpamKeywords(folded); d != nil {
		diags = append(diags, *d)
	}
	if root != nil {
		diags = append(diags, checkStructure(root)...)
	}
	if len(words) < v.cfg.MinWordCount {
		diags = append(diags, Diagnostic{
			Kind:     KindInsufficientContent,
			Severity: SeverityError,
			Message: fmt.Sprintf("document contains only %d words, minimum required is %d",
				len(words), v.cfg.MinWordCount),
		})
	}

	accepted := true
	for _, d := range diags {
		if d.Severity == SeverityError {
			accepted = false
			break
		}
	}
	return accepted, diags
}

func checkExternalLinks(root *goquery.Document, max int) *Diagnostic {
	count := 0
	root.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		l := strings.ToLower(strings.TrimSpace(href))
		if strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://") {
			count++
		}
	})
	if count <= max {
		return nil
	}
	return &Diagnostic{
		Kind:     KindExcessiveLinks,
		Severity: SeverityError,
		Message:  fmt.Sprintf("document contains %d external links, maximum allowed is %d", count, max),
	}
}

// checkKeywordStuffing reports the most frequent token longer than three
// characters when it exceeds stuffingShare of all tokens
func checkKeywordStuffing(words []string) *Diagnostic {
	if len(words) < stuffingFloor {
		return nil
	}
	freq := make(map[string]int, len(words))
	for _, w := range words {
		freq[w]++
	}
	var top string
	topCount := 0
	for w, c := range freq {
		if len(w) <= 3 {
			continue
		}
		if c > topCount || (c == topCount && w < top) {
			top, topCount = w, c
		}
	}
	share := float64(topCount) / float64(len(words))
	if top == "" || share <= stuffingShare {
		return nil
	}
	return &Diagnostic{
		Kind:     KindKeywordStuffing,
		Severity: SeverityWarning,
		Message: fmt.Sprintf("potential keyword stuffing: %q appears %d times (%.1f%% of content)",
			top, topCount, share*100),
	}
}

func checkSpamKeywords(folded string) *Diagnostic {
	var found []string
	for _, kw := range spamKeywords {
		if strings.Contains(folded, kw) {
			found = append(found, kw)
		}
	}
	if len(found) == 0 {
		return nil
	}
	return &Diagnostic{
		Kind:     KindSpamKeywords,
		Severity: SeverityWarning,
		Message:  "document contains potential spam keywords: " + strings.Join(found, ", "),
	}
}

func checkStructure(root *goquery.Document) []Diagnostic {
	var diags []Diagnostic

	title := strings.TrimSpace(root.Find("title").Text())
	h1 := strings.TrimSpace(root.Find("h1").Text())
	if title == "" && h1 == "" {
		diags = append(diags, Diagnostic{
			Kind:     KindMissingTitle,
			Severity: SeverityError,
			Message:  "document must have a non-empty <title> or <h1>",
		})
	}

	if root.Find("p, section, article").Length() == 0 {
		diags = append(diags, Diagnostic{
			Kind:     KindMissingStructure,
			Severity: SeverityError,
			Message:  "document must contain structured content (paragraphs, sections, or articles)",
		})
	}
	return diags
}

// spamKeywords are matched as substrings of the folded document text
var spamKeywords = []string{
	"buy now",
	"click here",
	"limited offer",
	"act now",
	"guarantee",
	"risk free",
	"winner",
	"prize",
	"congratulations",
	"urgent",
	"viagra",
	"cialis",
	"casino",
	"lottery",
	"weight loss",
}
