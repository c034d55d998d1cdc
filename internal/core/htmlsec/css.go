package htmlsec

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// expression(...) is matched as a call, not a bare substring, so prose
	// like "an expression of intent" inside a content: string does not trip it
	cssExpressionRe = regexp.MustCompile(`(?i)expression\s*\(`)

	// @import with or without url(...), quoted or bare
	cssImportRe = regexp.MustCompile(`(?i)@import\s+(?:url\(\s*)?["']?([^"')\s;]+)`)
)

// checkCSS evaluates the CSS rules against one chunk of style text.
// base is the document byte offset where the chunk begins; match offsets
// inside the chunk are added to it so diagnostics land on the right line
func checkCSS(css string, base int, context string, add addFunc) {
	l := strings.ToLower(css)
	for _, kw := range cssKeywords {
		if idx := strings.Index(l, kw); idx >= 0 {
			add(KindDangerousCSS, base+idx, css,
				fmt.Sprintf("dangerous CSS keyword %q found in %s", kw, context))
		}
	}

	if loc := cssExpressionRe.FindStringIndex(css); loc != nil {
		add(KindCSSExpression, base+loc[0], css, "CSS expression() call found in "+context)
	}

	for _, m := range cssImportRe.FindAllStringSubmatchIndex(css, -1) {
		url := css[m[2]:m[3]]
		if allowlistedCDN(url) {
			continue
		}
		if externalURL(url) || strings.HasPrefix(strings.TrimSpace(url), "//") {
			add(KindCSSImportExternal, base+m[0], css,
				fmt.Sprintf("external CSS @import %q is not on the CDN allowlist", url))
			continue
		}
		add(KindCSSImport, base+m[0], css, "local CSS @import is not allowed in "+context)
	}
}
