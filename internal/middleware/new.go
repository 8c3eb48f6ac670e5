package middleware

import (
	"sync"

	"golang.org/x/time/rate"

	"aufgabe/pkg/log"
)

type Middleware struct {
	l     log.Logger
	token string

	ratePerMin int
	mu         *sync.Mutex
	limiters   map[string]*rate.Limiter
}

// New creates the middleware set. token empty disables auth;
// ratePerMin <= 0 disables rate limiting.
func New(l log.Logger, token string, ratePerMin int) Middleware {
	return Middleware{
		l:          l,
		token:      token,
		ratePerMin: ratePerMin,
		mu:         &sync.Mutex{},
		limiters:   make(map[string]*rate.Limiter),
	}
}
