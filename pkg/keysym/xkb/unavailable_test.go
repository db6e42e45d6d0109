//go:build !linux || !cgo || noxkb

package xkb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnavailable(t *testing.T) {
	assert.False(t, Available)

	km, err := New(Names{Layout: "us"})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Nil(t, km)
}
