package repository

import (
	"time"

	"orbdyn/internal/domain"
	"orbdyn/internal/logger"
	"orbdyn/internal/ports"
)

type options struct {
	now   ports.Clock
	newID func() string
	log   logger.Logger
}

// Option configures a repository
type Option func(*options)

// WithClock pins the clock used for createdAt/deletedAt
func WithClock(now ports.Clock) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces the id generator
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

// WithLogger sets the logger
func WithLogger(log logger.Logger) Option {
	return func(o *options) { o.log = log }
}

func buildOptions(opts []Option) options {
	o := options{
		now:   time.Now,
		newID: domain.NewID,
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
