package htmlsec

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"scrollpress/internal/core/textpos"
)

// addFunc records a diagnostic located at a document byte offset
type addFunc func(kind Kind, offset int, snip, msg string)

// scan tokenizes the document exactly once, tracking the byte offset of every
// token, and evaluates the full rule set against tags, attributes and style
// text. Offsets come from the tokenizer's raw token bytes, so diagnostics are
// located without re-searching the document
func scan(doc string) []Diagnostic {
	var diags []Diagnostic
	ix := textpos.New(doc)

	add := func(kind Kind, offset int, snip, msg string) {
		d := Diagnostic{Kind: kind, Message: msg, Snippet: snippet(snip)}
		if line, ok := ix.Line(offset); ok {
			d.Line = line
		}
		diags = append(diags, d)
	}

	z := html.NewTokenizer(strings.NewReader(doc))
	offset := 0
	inStyle := false
	for {
		tt := z.Next()
		raw := string(z.Raw())
		switch tt {
		case html.ErrorToken:
			// the tokenizer recovers from malformed markup on its own,
			// so anything but EOF is reported as a violation, not an error
			if err := z.Err(); err != nil && err != io.EOF {
				add(KindMalformed, offset, raw, "document could not be parsed past this point")
			}
			return diags
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			checkTag(tok, raw, offset, add)
			if tok.Data == "style" && tt == html.StartTagToken {
				inStyle = true
			}
		case html.EndTagToken:
			if tok := z.Token(); tok.Data == "style" {
				inStyle = false
			}
		case html.TextToken:
			if inStyle {
				checkCSS(raw, offset, "style block", add)
			}
		}
		offset += len(raw)
	}
}

// checkTag runs every structural rule against one opening tag.
// Attribute values arrive entity-decoded from the tokenizer, so encoded
// payloads like j&#97;vascript: are seen in their effective form
func checkTag(tok html.Token, raw string, offset int, add addFunc) {
	name := tok.Data // lowercased by the tokenizer

	if forbiddenTags[name] {
		add(KindForbiddenTag, offset, raw, fmt.Sprintf("forbidden tag <%s> is not allowed", name))
	}
	if name == "meta" {
		checkMeta(tok, raw, offset, add)
	}

	var src, href, action string
	for _, a := range tok.Attr {
		an := strings.ToLower(a.Key)
		switch {
		case forbiddenAttr(an):
			add(KindForbiddenAttribute, offset, raw,
				fmt.Sprintf("forbidden attribute %q is not allowed (value %q)", an, a.Val))
		case an == "style":
			checkCSS(a.Val, offset+attrOffset(raw, "style"), "inline style", add)
		}
		if urlAttrs[an] {
			checkProtocols(an, a.Val, raw, offset, add)
		}
		switch an {
		case "src":
			src = a.Val
		case "href":
			href = a.Val
		case "action":
			action = a.Val
		}
	}

	// self-containment: external scripts and stylesheets only from the allowlist
	switch name {
	case "script":
		if externalURL(src) && !allowlistedCDN(src) {
			add(KindExternalScript, offset, raw,
				fmt.Sprintf("external script %q is not on the CDN allowlist", strings.TrimSpace(src)))
		}
	case "link":
		if externalURL(href) && !allowlistedCDN(href) {
			add(KindExternalStylesheet, offset, raw,
				fmt.Sprintf("external stylesheet %q is not on the CDN allowlist", strings.TrimSpace(href)))
		}
	case "form":
		checkFormAction(action, raw, offset, add)
	}
}

func checkMeta(tok html.Token, raw string, offset int, add addFunc) {
	var httpEquiv, metaName string
	for _, a := range tok.Attr {
		switch strings.ToLower(a.Key) {
		case "http-equiv":
			httpEquiv = a.Val
		case "name":
			metaName = a.Val
		}
	}
	if strings.EqualFold(strings.TrimSpace(httpEquiv), "refresh") {
		add(KindDangerousMeta, offset, raw, "meta refresh is not allowed")
		return
	}
	if metaName != "" {
		n := strings.ToLower(strings.TrimSpace(metaName))
		if !allowedMetaNames[n] {
			add(KindForbiddenMeta, offset, raw, fmt.Sprintf("meta tag with name %q is not allowed", n))
		}
	}
}

func checkProtocols(attr, val, raw string, offset int, add addFunc) {
	l := strings.ToLower(strings.TrimSpace(val))
	if strings.HasPrefix(l, "javascript:") {
		add(KindJavascriptURL, offset, raw, fmt.Sprintf("javascript: URL in %s is not allowed", attr))
		return
	}
	for _, p := range dangerousProtocols {
		if strings.Contains(l, p) {
			add(KindDangerousProtocol, offset, raw, fmt.Sprintf("dangerous protocol %q in %s is not allowed", p, attr))
		}
	}
}

// checkFormAction rejects forms that would exfiltrate submissions off-origin.
// Relative actions, "#" and empty actions stay on the publishing origin and pass
func checkFormAction(action, raw string, offset int, add addFunc) {
	v := strings.TrimSpace(action)
	if v == "" || v == "#" {
		return
	}
	l := strings.ToLower(v)
	if strings.HasPrefix(l, "javascript:") {
		return // already flagged by the javascript_url rule
	}
	if strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://") || strings.HasPrefix(l, "//") {
		add(KindExternalFormAction, offset, raw, fmt.Sprintf("form action %q posts to an external origin", v))
	}
}

// attrOffset locates an attribute's byte offset inside a raw tag token so
// diagnostics for attribute payloads land on the attribute's own line when
// the tag spans several. Falls back to the tag start when the attribute
// cannot be found in the raw text (entity games around the name itself)
func attrOffset(raw, key string) int {
	l := strings.ToLower(raw)
	for i := 0; ; {
		j := strings.Index(l[i:], key)
		if j < 0 {
			return 0
		}
		j += i
		boundary := j > 0 && (l[j-1] == ' ' || l[j-1] == '\t' || l[j-1] == '\n' || l[j-1] == '\r' || l[j-1] == '/')
		rest := strings.TrimLeft(l[j+len(key):], " \t\r\n")
		if boundary && strings.HasPrefix(rest, "=") {
			return j
		}
		i = j + len(key)
	}
}
