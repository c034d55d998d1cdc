package htmlsec

import "strings"

// Rule tables are fixed at compile time and never mutated.
// Note <script> is absent from the tag denylist: execution is the CSP
// nonce's concern, and blanket-banning it would break MathJax-style
// typesetting that published documents legitimately rely on

// forbiddenTags can embed or navigate to attacker-controlled contexts
var forbiddenTags = map[string]bool{
	"iframe":   true,
	"frame":    true,
	"frameset": true,
	"object":   true,
	"embed":    true,
	"applet":   true,
	"base":     true,
}

// allowedMetaNames is the closed set of meta name= values a document may carry
var allowedMetaNames = map[string]bool{
	"author":       true,
	"description":  true,
	"keywords":     true,
	"title":        true,
	"subject":      true,
	"language":     true,
	"date":         true,
	"revised":      true,
	"generator":    true,
	"viewport":     true,
	"charset":      true,
	"content-type": true,
}

// cssKeywords are property names and script protocols that must not appear
// anywhere inside CSS, whether in style attributes or style blocks
var cssKeywords = []string{
	"behavior",
	"-moz-binding",
	"javascript",
	"vbscript",
	"livescript",
	"mocha",
}

// dangerousProtocols are rejected wherever they occur in an href/src/action
// value. javascript: is handled separately as a prefix match
var dangerousProtocols = []string{
	"vbscript:",
	"livescript:",
	"mocha:",
	"data:text/html",
}

// cdnAllowlist holds the only external hosts a document may reference for
// scripts, stylesheets and CSS imports. Matched by literal substring, never
// fetched: math/typesetting and charting CDNs plus web fonts
var cdnAllowlist = []string{
	"cdn.jsdelivr.net",
	"cdnjs.cloudflare.com",
	"unpkg.com",
	"cdn.mathjax.org",
	"cdn.plot.ly",
	"d3js.org",
	"fonts.googleapis.com",
	"fonts.gstatic.com",
}

// urlAttrs are the attributes protocol rules apply to
var urlAttrs = map[string]bool{
	"href":   true,
	"src":    true,
	"action": true,
}

func forbiddenAttr(name string) bool {
	return strings.HasPrefix(name, "on") || name == "srcdoc" || name == "sandbox"
}

func allowlistedCDN(url string) bool {
	l := strings.ToLower(url)
	for _, host := range cdnAllowlist {
		if strings.Contains(l, host) {
			return true
		}
	}
	return false
}

func externalURL(url string) bool {
	l := strings.ToLower(strings.TrimSpace(url))
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
