package repokit

// Binder builds a domain repo (scrolls.Repo and friends) over a Queryer,
// which may be a pool or an in-flight transaction.
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a constructor function into a Binder
type BindFunc[T any] func(Queryer) T

// Bind calls the underlying constructor
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// RequireQueryer panics early on programmer error (nil q)
func RequireQueryer(q Queryer) Queryer {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return q
}

// MustBind validates q then binds
func MustBind[T any](b Binder[T], q Queryer) T {
	return b.Bind(RequireQueryer(q))
}
