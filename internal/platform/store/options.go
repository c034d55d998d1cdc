package store

import (
	"scrollpress/internal/platform/logger"
)

// Option mutates the Store while Open assembles it
type Option func(*Store) error

// WithLogger sets the logger handed down to subclients
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}
