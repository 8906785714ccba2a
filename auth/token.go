// Package auth supplies the bearer token and the identity derived from it.
// The token itself is issued and validated elsewhere; this client only reads
// it, attaches it to requests and decodes its claims for display.
package auth

import "strings"

// TokenProvider yields the current bearer token, or "" when the user is not
// signed in. Injected into the API client and the TUI instead of being read
// from ambient global state.
type TokenProvider interface {
	Token() string
}

// Static is a fixed token, typically from the environment.
type Static string

func (s Static) Token() string {
	return strings.TrimSpace(string(s))
}

// ProviderFunc adapts a plain lookup function, e.g. the store's token file.
type ProviderFunc func() string

func (f ProviderFunc) Token() string {
	return strings.TrimSpace(f())
}

// Chain returns the first non-empty token among the providers.
type Chain []TokenProvider

func (c Chain) Token() string {
	for _, p := range c {
		if token := p.Token(); token != "" {
			return token
		}
	}
	return ""
}
