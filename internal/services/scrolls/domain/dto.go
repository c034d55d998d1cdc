// Package domain holds DTOs for scrolls http and service contracts
package domain

import (
	"scrollpress/internal/core/htmlsec"
	"scrollpress/internal/core/quality"
)

// IngestInput is the input for submitting a document
type IngestInput struct {
	HTML string `json:"html" validate:"required,min=1" example:"<html><head><title>T</title></head><body><p>hello</p></body></html>"`
}

// IngestResult is the outcome of an ingestion attempt.
// Rejection is a value here, not an error; the envelope stays 200
type IngestResult struct {
	Accepted bool   `json:"accepted"`
	ShortID  string `json:"short_id,omitempty"`
	// ContentHash is the full SHA-256 of the canonical archive
	ContentHash string `json:"content_hash,omitempty"`
	// Existing is true when identical content was already stored
	Existing bool `json:"existing,omitempty"`

	Security []htmlsec.Diagnostic `json:"security_diagnostics,omitempty"`
	Quality  []quality.Diagnostic `json:"quality_diagnostics,omitempty"`
	Metrics  *quality.Metrics     `json:"metrics,omitempty"`
}

// Scroll is one stored document
type Scroll struct {
	ID          string           `json:"id"`
	ShortID     string           `json:"short_id"`
	ContentHash string           `json:"content_hash"`
	WordCount   int              `json:"word_count"`
	Metrics     *quality.Metrics `json:"metrics,omitempty"`
	CreatedAt   string           `json:"created_at"`
}
