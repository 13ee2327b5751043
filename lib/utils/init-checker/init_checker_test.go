package initchecker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type provider interface{ Name() string }

type impl struct{}

func (impl) Name() string { return "impl" }

func TestCheckInit(t *testing.T) {
	var missing provider
	var ready provider = impl{}

	assert.NotPanics(t, func() { CheckInit("ready", ready) })
	assert.NotPanics(t, func() { CheckInit() })
	assert.PanicsWithValue(t, "missing must be initialized before use", func() {
		CheckInit("ready", ready, "missing", missing)
	})
	assert.Panics(t, func() { CheckInit("ready") })
	assert.Panics(t, func() { CheckInit(1, ready) })
}
