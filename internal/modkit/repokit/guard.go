package repokit

import (
	"context"
	"fmt"
	"time"
)

type guarder interface {
	Guard(context.Context) error
}

// MustGuard pings every configured seam on the store and panics when one
// fails. Run it once at startup so a service never accepts traffic it
// cannot persist. Applies a 5s deadline when the caller brought none
func MustGuard(ctx context.Context, st guarder) {
	if st == nil {
		panic("dependency guard: nil store")
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
