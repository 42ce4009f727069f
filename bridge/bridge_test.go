package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/zbuf/bridge"
	"github.com/momentics/zbuf/region"
	"github.com/momentics/zbuf/sized"
)

func TestErasureRecoveryIdentity(t *testing.T) {
	span := make([]byte, region.HeaderBytes+64)
	r, err := region.WrapSlice(span, 16)
	require.NoError(t, err)
	require.NoError(t, r.CopyPayloadFrom([]byte("identity")))

	h, ok := sized.New[sized.R16, sized.R0](r)
	require.True(t, ok)

	erased := bridge.Erase(h)
	recovered, ok := bridge.Recover[*region.PackedSlice](erased)
	require.True(t, ok)

	assert.Same(t, r, recovered)
	assert.Equal(t, []byte("identity"), recovered.Payload())
	assert.Equal(t, 16, recovered.Headroom())
	assert.Equal(t, &r.Raw()[0], &recovered.Raw()[0], "recovery must yield the same storage")
}

func TestRecoverRejectsWrongType(t *testing.T) {
	r, err := region.NewOwned(32, 8)
	require.NoError(t, err)
	h, ok := sized.New[sized.R8, sized.R0](r)
	require.True(t, ok)

	_, ok = bridge.Recover[*region.PackedSlice](bridge.Erase(h))
	assert.False(t, ok, "a foreign concrete type must never be recovered")
}

func TestMustRecoverEscalatesMismatch(t *testing.T) {
	r, err := region.NewOwned(32, 8)
	require.NoError(t, err)

	assert.Panics(t, func() {
		bridge.MustRecover[*region.PackedSlice](r)
	})
	assert.NotPanics(t, func() {
		bridge.MustRecover[*region.Owned](r)
	})
}

func TestRecoverSizedRevalidatesRooms(t *testing.T) {
	r, err := region.NewOwned(64, 16)
	require.NoError(t, err)
	h, ok := sized.New[sized.R16, sized.R0](r)
	require.True(t, ok)
	erased := bridge.Erase(h)

	// Rooms still backed: recovery succeeds.
	rh, ok := bridge.RecoverSized[*region.Owned, sized.R16, sized.R0](erased)
	require.True(t, ok)
	assert.Equal(t, 16, rh.Headroom())

	// Consume the headroom downstream; the original declaration is no
	// longer backed and sized recovery must refuse.
	require.NoError(t, erased.Prepend(make([]byte, 16)))
	_, ok = bridge.RecoverSized[*region.Owned, sized.R16, sized.R0](erased)
	assert.False(t, ok)

	// Wrong concrete type refuses regardless of rooms.
	_, ok = bridge.RecoverSized[*region.PackedSlice, sized.R0, sized.R0](erased)
	assert.False(t, ok)
}
