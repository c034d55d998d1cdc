// Package htmlsec validates untrusted HTML documents against a fixed security
// rule set. It rejects rather than repairs: a document either passes with zero
// diagnostics or is returned to the caller with one line-located diagnostic per
// violation. Script tags are deliberately permitted; inline script execution is
// governed by the CSP nonce the surrounding application injects, not by this
// validator. The validator never mutates its input and holds no cross-call state
package htmlsec

// Kind identifies the security rule a diagnostic was produced by
type Kind string

const (
	// KindForbiddenTag flags a tag on the fixed denylist
	KindForbiddenTag Kind = "forbidden_tag"
	// KindDangerousMeta flags meta http-equiv refresh
	KindDangerousMeta Kind = "dangerous_meta"
	// KindForbiddenMeta flags a meta name outside the allowlist
	KindForbiddenMeta Kind = "forbidden_meta"
	// KindForbiddenAttribute flags event handlers and srcdoc/sandbox
	KindForbiddenAttribute Kind = "forbidden_attribute"
	// KindDangerousCSS flags a denylisted CSS property or script keyword
	KindDangerousCSS Kind = "dangerous_css"
	// KindCSSExpression flags an expression(...) call in CSS
	KindCSSExpression Kind = "css_expression"
	// KindCSSImport flags a local @import
	KindCSSImport Kind = "css_import"
	// KindCSSImportExternal flags an @import of a non-allowlisted external URL
	KindCSSImportExternal Kind = "css_import_external"
	// KindJavascriptURL flags href/src/action values starting with javascript:
	KindJavascriptURL Kind = "javascript_url"
	// KindDangerousProtocol flags vbscript:, livescript:, mocha: and data:text/html
	KindDangerousProtocol Kind = "dangerous_protocol"
	// KindExternalScript flags script src outside the CDN allowlist
	KindExternalScript Kind = "external_script"
	// KindExternalStylesheet flags link href outside the CDN allowlist
	KindExternalStylesheet Kind = "external_stylesheet"
	// KindExternalFormAction flags form actions posting off-origin
	KindExternalFormAction Kind = "external_form_action"
	// KindMalformed flags a document the tokenizer could not walk to the end
	KindMalformed Kind = "malformed_html"
)

// Diagnostic is a single located rule violation. Immutable once produced
type Diagnostic struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	// Line is 1-based; 0 means the offset could not be resolved and the
	// line is omitted rather than guessed
	Line    int    `json:"line,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

// Outcome is the result of one validation pass over one document
type Outcome struct {
	Accepted    bool         `json:"accepted"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Validator evaluates the security rule set. The zero value is usable;
// it is stateless and safe for concurrent use
type Validator struct{}

// New constructs a Validator
func New() *Validator { return &Validator{} }

// Validate walks the document once and evaluates every rule against it.
// Every rule is blocking: the document is accepted only when the diagnostic
// list is empty. Malformed HTML is a diagnostic, never an error
func (v *Validator) Validate(doc string) Outcome {
	diags := scan(doc)
	return Outcome{Accepted: len(diags) == 0, Diagnostics: diags}
}

// snippetMax caps the element excerpt carried on a diagnostic
const snippetMax = 100

func snippet(s string) string {
	if len(s) <= snippetMax {
		return s
	}
	return s[:snippetMax] + "..."
}
