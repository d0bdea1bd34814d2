package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrizeService(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)
	other := h.mustHackathon(t)
	local := h.mustSponsor(t, hk.ID, "CloudCo")
	foreign := h.mustSponsor(t, other.ID, "Elsewhere")

	_, err := h.prizes.CreatePrize(ctx, guest("u1"), hk.ID, NewPrize{Title: "x"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = h.prizes.CreatePrize(ctx, organiser, hk.ID, NewPrize{Title: "x", SponsorID: &foreign.ID})
	assert.ErrorIs(t, err, ErrSponsorMismatch)

	missing := uint(999)
	_, err = h.prizes.CreatePrize(ctx, organiser, hk.ID, NewPrize{Title: "x", SponsorID: &missing})
	assert.ErrorIs(t, err, ErrNotFound)

	general, err := h.prizes.CreatePrize(ctx, organiser, hk.ID, NewPrize{Title: "Grand prize", Value: "$10,000"})
	require.NoError(t, err)
	assert.True(t, general.IsGeneral())

	sponsored, err := h.prizes.CreatePrize(ctx, organiser, hk.ID, NewPrize{Title: "Cloud", Value: "$500", SponsorID: &local.ID})
	require.NoError(t, err)
	assert.False(t, sponsored.IsGeneral())

	prizes, err := h.prizes.ListPrizes(ctx, hk.ID)
	require.NoError(t, err)
	assert.Len(t, prizes, 2)

	require.NoError(t, h.prizes.DeletePrize(ctx, organiser, general.ID))
	assert.ErrorIs(t, h.prizes.DeletePrize(ctx, organiser, general.ID), ErrNotFound)
	assert.ErrorIs(t, h.prizes.DeletePrize(ctx, guest("u1"), sponsored.ID), ErrForbidden)
}
