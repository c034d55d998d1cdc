// Package canonical produces the byte-stable form of a document that
// content addressing hashes over.
//
// Two transformations happen here. Line endings are normalized to LF so
// that the same document authored on different platforms hashes
// identically. The normalized bytes are then packed into a tar archive
// with every nondeterministic header field pinned, so the archive bytes
// are a pure function of the content.
package canonical

import (
	"archive/tar"
	"bytes"
	"strings"
	"time"
)

// EntryName is the single member name inside every canonical archive
const EntryName = "content.html"

// NormalizeLineEndings rewrites CRLF and bare CR sequences to LF.
// CRLF is collapsed first so a Windows ending never yields two newlines
func NormalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// Canonicalize normalizes line endings and returns the deterministic
// tar archive for the result. Equal inputs always yield equal bytes
func Canonicalize(text string) []byte {
	return Package(NormalizeLineEndings(text))
}

// Package writes content into a single-entry tar archive with fixed
// metadata (epoch mtime, zero uid/gid, mode 0644, USTAR format)
func Package(content string) []byte {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	hdr := &tar.Header{
		Name:    EntryName,
		Size:    int64(len(content)),
		Mode:    0o644,
		ModTime: time.Unix(0, 0).UTC(),
		Uid:     0,
		Gid:     0,
		Format:  tar.FormatUSTAR,
	}
	// writes to a bytes.Buffer cannot fail; a header error here would
	// mean the fixed metadata above is invalid
	if err := tw.WriteHeader(hdr); err != nil {
		panic("canonical: write tar header: " + err.Error())
	}
	if _, err := tw.Write([]byte(content)); err != nil {
		panic("canonical: write tar body: " + err.Error())
	}
	if err := tw.Close(); err != nil {
		panic("canonical: close tar: " + err.Error())
	}
	return buf.Bytes()
}
