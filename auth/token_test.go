package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "Bearer abc", Static("  Bearer abc  ").Token())
	assert.Equal(t, "", Static("   ").Token())
}

func TestProviderFunc(t *testing.T) {
	calls := 0
	p := ProviderFunc(func() string {
		calls++
		return "tok"
	})
	assert.Equal(t, "tok", p.Token())
	assert.Equal(t, "tok", p.Token())
	assert.Equal(t, 2, calls, "the lookup runs on every request")
}

func TestChainReturnsFirstNonEmpty(t *testing.T) {
	chain := Chain{
		Static(""),
		Static("from-env"),
		Static("from-store"),
	}
	assert.Equal(t, "from-env", chain.Token())

	assert.Equal(t, "", Chain{Static(""), Static("  ")}.Token())
	assert.Equal(t, "", Chain{}.Token())
}
