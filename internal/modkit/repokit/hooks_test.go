package repokit

import (
	"context"
	"errors"
	"testing"

	"scrollpress/internal/platform/store"
)

// sqlRecorder captures every statement a hook or tx body issues
type sqlRecorder struct {
	stmts []string
}

func (r *sqlRecorder) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	r.stmts = append(r.stmts, sql)
	var zero store.CommandTag
	return zero, nil
}

func (r *sqlRecorder) Query(context.Context, string, ...any) (store.Rows, error) {
	var zero store.Rows
	return zero, nil
}

func (r *sqlRecorder) QueryRow(context.Context, string, ...any) store.Row {
	var zero store.Row
	return zero
}

func TestWithBeginHooks_RunBeforeTxBody(t *testing.T) {
	t.Parallel()

	rec := &sqlRecorder{}
	db := WithBeginHooks(&spyTx{q: rec}, func(ctx context.Context, q Queryer) error {
		_, err := q.Exec(ctx, "SET LOCAL statement_timeout = 100")
		return err
	})

	err := db.Tx(context.Background(), func(q Queryer) error {
		_, err := q.Exec(context.Background(), "INSERT INTO scrolls DEFAULT VALUES")
		return err
	})
	if err != nil {
		t.Fatalf("Tx: %v", err)
	}
	if len(rec.stmts) != 2 || rec.stmts[0] != "SET LOCAL statement_timeout = 100" {
		t.Fatalf("statement order wrong: %v", rec.stmts)
	}
}

func TestWithBeginHooks_HookErrorAbortsTx(t *testing.T) {
	t.Parallel()

	hookErr := errors.New("session setup failed")
	bodyRan := false
	db := WithBeginHooks(&spyTx{q: &sqlRecorder{}}, func(context.Context, Queryer) error {
		return hookErr
	})

	err := db.Tx(context.Background(), func(Queryer) error {
		bodyRan = true
		return nil
	})
	if !errors.Is(err, hookErr) {
		t.Fatalf("hook error lost: %v", err)
	}
	if bodyRan {
		t.Fatal("tx body ran after a failed hook")
	}
}

func TestWithBeginHooks_NonTxCallsPassThrough(t *testing.T) {
	t.Parallel()

	rec := &sqlRecorder{}
	db := WithBeginHooks(&spyTx{q: rec}, func(context.Context, Queryer) error {
		t.Fatal("hook must not run outside Tx")
		return nil
	})

	if _, err := db.Exec(context.Background(), "SELECT 1"); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if len(rec.stmts) != 1 || rec.stmts[0] != "SELECT 1" {
		t.Fatalf("pass-through stmts: %v", rec.stmts)
	}
}
