package quality

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Metrics are observational counts over a document. They are computed for
// logging and display only and never influence the accept/reject decision
type Metrics struct {
	WordCount           int     `json:"word_count"`
	CharCount           int     `json:"char_count"`
	ParagraphCount      int     `json:"paragraph_count"`
	HeadingCount        int     `json:"heading_count"`
	LinkCount           int     `json:"link_count"`
	ImageCount          int     `json:"image_count"`
	TableCount          int     `json:"table_count"`
	ListCount           int     `json:"list_count"`
	CodeBlockCount      int     `json:"code_block_count"`
	SentenceCount       int     `json:"sentence_count"`
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// Compute derives Metrics from a document
func Compute(doc string) Metrics {
	text := StripTags(doc)
	words := len(strings.Fields(text))

	sentences := 0
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	avg := 0.0
	if sentences > 0 {
		avg = math.Round(float64(words)/float64(sentences)*100) / 100
	}

	m := Metrics{
		WordCount:           words,
		CharCount:           utf8.RuneCountInString(text),
		SentenceCount:       sentences,
		AvgWordsPerSentence: avg,
	}

	root, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return m
	}
	m.ParagraphCount = root.Find("p").Length()
	m.HeadingCount = root.Find("h1, h2, h3, h4, h5, h6").Length()
	m.LinkCount = root.Find("a").Length()
	m.ImageCount = root.Find("img").Length()
	m.TableCount = root.Find("table").Length()
	m.ListCount = root.Find("ul, ol").Length()
	m.CodeBlockCount = root.Find("pre").Length()
	return m
}
