// scrollpress-check runs the ingestion gates over a single document and
// prints the diagnostics as JSON. Exit status 1 means the document was
// rejected; nothing is stored.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"scrollpress/internal/core/address"
	"scrollpress/internal/core/canonical"
	"scrollpress/internal/core/htmlsec"
	"scrollpress/internal/core/quality"
)

type report struct {
	Accepted    bool                 `json:"accepted"`
	ContentHash string               `json:"content_hash,omitempty"`
	ShortID     string               `json:"short_id,omitempty"`
	Security    []htmlsec.Diagnostic `json:"security_diagnostics,omitempty"`
	Quality     []quality.Diagnostic `json:"quality_diagnostics,omitempty"`
	Metrics     *quality.Metrics     `json:"metrics,omitempty"`
}

func main() {
	var (
		file     = flag.String("file", "", "document to check, - or empty reads stdin")
		maxLinks = flag.Int("max-links", 0, "external link limit (0 = default)")
		minWords = flag.Int("min-words", 0, "word count floor (0 = default)")
	)
	flag.Parse()

	doc, err := readDoc(*file)
	if err != nil {
		log.Fatalf("read document: %v", err)
	}

	rep := check(doc, quality.Config{
		MaxExternalLinks: *maxLinks,
		MinWordCount:     *minWords,
	})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		log.Fatalf("encode report: %v", err)
	}
	if !rep.Accepted {
		os.Exit(1)
	}
}

func readDoc(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func check(doc string, qcfg quality.Config) report {
	out := htmlsec.New().Validate(doc)
	if !out.Accepted {
		return report{Security: out.Diagnostics}
	}

	ok, qdiags := quality.New(qcfg).Validate(doc)
	rep := report{Accepted: ok, Quality: qdiags}
	if !ok {
		return rep
	}

	m := quality.Compute(doc)
	rep.Metrics = &m

	addr, err := address.Resolve(context.Background(), memLookup{}, canonical.Canonicalize(doc))
	if err != nil {
		log.Fatalf("resolve address: %v", err)
	}
	rep.ContentHash = addr.ContentHash
	rep.ShortID = addr.ShortID
	return rep
}

// memLookup is an empty in-process store: offline checks have no prior
// records, so every short id resolves at the starting length
type memLookup map[string]string

func (m memLookup) FindByShortID(_ context.Context, shortID string) (string, bool, error) {
	h, ok := m[shortID]
	return h, ok, nil
}
