package address

import (
	"context"
	"errors"
	"testing"

	perr "scrollpress/internal/platform/errors"
)

// fakeLookup maps short ids to the full hash that owns them
type fakeLookup struct {
	owned map[string]string
	err   error
}

func (f *fakeLookup) FindByShortID(_ context.Context, shortID string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	h, ok := f.owned[shortID]
	return h, ok, nil
}

func TestHash(t *testing.T) {
	// sha256 of the empty input is a fixed vector
	const empty = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Hash(nil); got != empty {
		t.Fatalf("Hash(nil) = %s, want %s", got, empty)
	}
	if Hash([]byte("a")) == Hash([]byte("b")) {
		t.Fatalf("distinct inputs must not share a hash")
	}
}

func TestResolve_FreshContent(t *testing.T) {
	lk := &fakeLookup{owned: map[string]string{}}
	archive := []byte("<p>fresh</p>")

	addr, err := Resolve(context.Background(), lk, archive)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	full := Hash(archive)
	if addr.ContentHash != full {
		t.Fatalf("hash = %s, want %s", addr.ContentHash, full)
	}
	if addr.ShortID != full[:ShortIDLength] {
		t.Fatalf("short id = %s, want %s", addr.ShortID, full[:ShortIDLength])
	}
	if addr.Existing {
		t.Fatalf("fresh content reported as existing")
	}
}

func TestResolve_DedupHit(t *testing.T) {
	archive := []byte("<p>seen before</p>")
	full := Hash(archive)
	lk := &fakeLookup{owned: map[string]string{full[:ShortIDLength]: full}}

	addr, err := Resolve(context.Background(), lk, archive)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !addr.Existing {
		t.Fatalf("identical content must resolve to the existing record")
	}
	if addr.ShortID != full[:ShortIDLength] {
		t.Fatalf("dedup hit changed the short id: %s", addr.ShortID)
	}
}

func TestResolve_CollisionGrowsPrefix(t *testing.T) {
	archive := []byte("<p>colliding</p>")
	full := Hash(archive)
	lk := &fakeLookup{owned: map[string]string{
		full[:ShortIDLength]:   "0000aaaa0000aaaa0000aaaa0000aaaa0000aaaa0000aaaa0000aaaa0000aaaa",
		full[:ShortIDLength+1]: "1111bbbb1111bbbb1111bbbb1111bbbb1111bbbb1111bbbb1111bbbb1111bbbb",
	}}

	addr, err := Resolve(context.Background(), lk, archive)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if addr.Existing {
		t.Fatalf("collision path must mint a new record")
	}
	if want := full[:ShortIDLength+2]; addr.ShortID != want {
		t.Fatalf("short id = %s, want %s", addr.ShortID, want)
	}
	if addr.ContentHash != full {
		t.Fatalf("collision must not alter the content hash")
	}
}

func TestResolve_Exhausted(t *testing.T) {
	archive := []byte("<p>unlucky</p>")
	full := Hash(archive)
	owned := make(map[string]string, len(full)-ShortIDLength+1)
	for n := ShortIDLength; n <= len(full); n++ {
		owned[full[:n]] = "ffff0000ffff0000ffff0000ffff0000ffff0000ffff0000ffff0000ffff0000"
	}
	lk := &fakeLookup{owned: owned}

	_, err := Resolve(context.Background(), lk, archive)
	if err == nil {
		t.Fatalf("expected exhaustion error")
	}
	if !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("want conflict code, got %v", err)
	}
}

func TestResolve_LookupError(t *testing.T) {
	boom := errors.New("socket closed")
	lk := &fakeLookup{err: boom}

	_, err := Resolve(context.Background(), lk, []byte("x"))
	if err == nil || !errors.Is(err, boom) {
		t.Fatalf("lookup failure must surface, got %v", err)
	}
}
