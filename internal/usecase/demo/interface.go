package demo

import "context"

// Runner defines the demo operation consumed by the entry point.
type Runner interface {
	Run(ctx context.Context, in RunRequest) (*RunResponse, error)
}

// Formatter turns a user's name into a greeting.
type Formatter interface {
	Format(name string) string
}
