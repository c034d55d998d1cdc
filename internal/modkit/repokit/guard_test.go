package repokit

import (
	"context"
	"strings"
	"testing"
	"time"
)

// guardSpy records the ctx Guard saw and fails with a preset error
type guardSpy struct {
	lastCtx context.Context
	err     error
}

func (g *guardSpy) Guard(ctx context.Context) error {
	g.lastCtx = ctx
	return g.err
}

type errText string

func (e errText) Error() string { return string(e) }

func mustPanic(t *testing.T, wantSub string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		msg := ""
		switch x := r.(type) {
		case string:
			msg = x
		case error:
			msg = x.Error()
		}
		if !strings.Contains(msg, wantSub) {
			t.Fatalf("panic = %q, want substring %q", msg, wantSub)
		}
	}()
	fn()
}

func TestMustGuard_PassesWhenStoreAnswers(t *testing.T) {
	t.Parallel()

	g := &guardSpy{}
	MustGuard(context.Background(), g)

	if g.lastCtx == nil {
		t.Fatal("guard never ran")
	}
	dl, ok := g.lastCtx.Deadline()
	if !ok {
		t.Fatal("expected a default deadline")
	}
	if d := time.Until(dl); d < 4*time.Second || d > 6*time.Second {
		t.Fatalf("default deadline not ~5s out: %v", d)
	}
}

func TestMustGuard_KeepsCallerDeadline(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	g := &guardSpy{}
	MustGuard(parent, g)

	want, _ := parent.Deadline()
	got, ok := g.lastCtx.Deadline()
	if !ok || got.Sub(want) > 2*time.Millisecond || want.Sub(got) > 2*time.Millisecond {
		t.Fatalf("deadline %v drifted from caller's %v", got, want)
	}
}

func TestMustGuard_PanicsWhenSeamIsDown(t *testing.T) {
	t.Parallel()

	mustPanic(t, "dependency guard failed: pg down", func() {
		MustGuard(context.Background(), &guardSpy{err: errText("pg down")})
	})
}

func TestMustGuard_PanicsOnNilStore(t *testing.T) {
	t.Parallel()

	mustPanic(t, "nil store", func() {
		MustGuard(context.Background(), nil)
	})
}
