package canonical

import (
	"archive/tar"
	"bytes"
	"io"
	"testing"
)

func TestNormalizeLineEndings(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb\r\n", "a\nb\n"},
		{"bare cr", "a\rb", "a\nb"},
		{"mixed", "a\r\nb\rc\nd", "a\nb\nc\nd"},
		{"already lf", "a\nb\n", "a\nb\n"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeLineEndings(tc.in); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	in := "line one\r\nline two\rline three\n"
	once := NormalizeLineEndings(in)
	twice := NormalizeLineEndings(once)
	if once != twice {
		t.Fatalf("second pass changed output: %q vs %q", once, twice)
	}
}

func TestCanonicalize_LineEndingEquivalence(t *testing.T) {
	unix := Canonicalize("<p>hello</p>\n<p>world</p>\n")
	win := Canonicalize("<p>hello</p>\r\n<p>world</p>\r\n")
	mac := Canonicalize("<p>hello</p>\r<p>world</p>\r")
	if !bytes.Equal(unix, win) || !bytes.Equal(unix, mac) {
		t.Fatalf("line ending variants produced distinct archives")
	}
}

func TestCanonicalize_Deterministic(t *testing.T) {
	a := Canonicalize("<h1>stable</h1>")
	b := Canonicalize("<h1>stable</h1>")
	if !bytes.Equal(a, b) {
		t.Fatalf("repeated calls produced distinct archives")
	}
	if bytes.Equal(a, Canonicalize("<h1>other</h1>")) {
		t.Fatalf("distinct content produced identical archives")
	}
}

func TestPackage_Headers(t *testing.T) {
	content := "<p>archived</p>"
	tr := tar.NewReader(bytes.NewReader(Package(content)))

	hdr, err := tr.Next()
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if hdr.Name != EntryName {
		t.Fatalf("name = %q, want %q", hdr.Name, EntryName)
	}
	if hdr.Mode != 0o644 {
		t.Fatalf("mode = %o, want 644", hdr.Mode)
	}
	if hdr.Uid != 0 || hdr.Gid != 0 {
		t.Fatalf("uid/gid = %d/%d, want 0/0", hdr.Uid, hdr.Gid)
	}
	if hdr.ModTime.Unix() != 0 {
		t.Fatalf("mtime = %v, want epoch", hdr.ModTime)
	}

	got, err := io.ReadAll(tr)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(got) != content {
		t.Fatalf("body = %q, want %q", got, content)
	}
	if _, err := tr.Next(); err != io.EOF {
		t.Fatalf("expected single entry archive, got %v", err)
	}
}
