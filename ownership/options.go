package ownership

// Option configures a handle at construction time. Options attach to the
// handle and follow the payload through moves and clones.
type Option[T any] func(*config[T])

type config[T any] struct {
	finalize func(*T)
	observer Observer
}

func newConfig[T any](opts []Option[T]) config[T] {
	var cfg config[T]

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithFinalizer attaches an explicit teardown function invoked exactly once
// when the payload is destroyed. It takes precedence over the payload's own
// Finalize method.
//
// Example:
//
//	f := ownership.NewUnique(openFile(path), ownership.WithFinalizer(func(f *File) {
//	    f.close()
//	}))
func WithFinalizer[T any](fn func(*T)) Option[T] {
	return func(cfg *config[T]) {
		cfg.finalize = fn
	}
}

// WithObserver attaches a lifecycle observer notified on first ownership and
// on finalization of each payload the handle adopts.
func WithObserver[T any](observer Observer) Option[T] {
	return func(cfg *config[T]) {
		cfg.observer = observer
	}
}
