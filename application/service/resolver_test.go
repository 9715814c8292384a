package service

import (
	"context"
	"testing"
	"time"

	"github.com/dealdeskhq/dealdesk/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityResolver_KindHintHit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()

	gp := env.seedGP(t, orgID, "Apex Partners")

	ref, err := env.resolver().Resolve(ctx, orgID, "gp", gp.ID())
	require.NoError(t, err)
	assert.Equal(t, entity.KindGP, ref.Kind())
	assert.Equal(t, gp.ID(), ref.ID())
	assert.Equal(t, "Apex Partners", ref.Name())
}

func TestEntityResolver_AliasHint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()

	gp := env.seedGP(t, orgID, "Blue Harbour")

	ref, err := env.resolver().Resolve(ctx, orgID, "VC", gp.ID())
	require.NoError(t, err)
	assert.Equal(t, entity.KindGP, ref.Kind())
}

func TestEntityResolver_WrongHintFallsBackToProbe(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()

	// The id lives in the funds table, but the caller claims it is an LP.
	fund := env.seedFund(t, orgID, "Apex Buyout Fund III")

	ref, err := env.resolver().Resolve(ctx, orgID, "lp", fund.ID())
	require.NoError(t, err)
	assert.Equal(t, entity.KindFund, ref.Kind())
	assert.Equal(t, fund.ID(), ref.ID())
}

func TestEntityResolver_UnknownTypeProbesAllTables(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()

	fund := env.seedFund(t, orgID, "Apex Buyout Fund III")

	ref, err := env.resolver().Resolve(ctx, orgID, "something-else", fund.ID())
	require.NoError(t, err)
	assert.Equal(t, entity.KindFund, ref.Kind())
}

func TestEntityResolver_LegacyFirmType(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()

	// "firm" predates the table split and is not in the alias table, so
	// resolution relies entirely on the probe.
	gp := env.seedGP(t, orgID, "Legacy Holdings")

	ref, err := env.resolver().Resolve(ctx, orgID, "firm", gp.ID())
	require.NoError(t, err)
	assert.Equal(t, entity.KindGP, ref.Kind())
}

func TestEntityResolver_LegacyFundType(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()

	fund := env.seedFund(t, orgID, "Legacy Fund II")

	ref, err := env.resolver().Resolve(ctx, orgID, "fund", fund.ID())
	require.NoError(t, err)
	assert.Equal(t, entity.KindFund, ref.Kind())
}

func TestEntityResolver_LegacyFundTypeProbesInOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()

	// "fund" happens to normalize to a canonical kind, but it is a legacy
	// discriminator: the same id in both the gps and funds tables must
	// resolve to the GP, because the probe order decides, not the hint.
	id := uuid.New()
	now := time.Now()
	_, err := env.stores.GPs.Save(ctx,
		entity.ReconstructGP(id, orgID, "Shared Holdings", "PE", "", uuid.New(), now, now))
	require.NoError(t, err)
	_, err = env.stores.Funds.Save(ctx,
		entity.ReconstructFund(id, orgID, "Shared Fund", "Buyout", uuid.Nil, 0, uuid.New(), now, now))
	require.NoError(t, err)

	ref, err := env.resolver().Resolve(ctx, orgID, "fund", id)
	require.NoError(t, err)
	assert.Equal(t, entity.KindGP, ref.Kind())
	assert.Equal(t, "Shared Holdings", ref.Name())
}

func TestEntityResolver_ProbeOrderBreaksTies(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()

	// The same id can only exist in one table in practice, but the probe
	// must still be deterministic when the hint is wrong on every call.
	gp := env.seedGP(t, orgID, "Deterministic Capital")

	for i := 0; i < 5; i++ {
		ref, err := env.resolver().Resolve(ctx, orgID, "", gp.ID())
		require.NoError(t, err)
		assert.Equal(t, entity.KindGP, ref.Kind())
	}
}

func TestEntityResolver_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.resolver().Resolve(context.Background(), uuid.New(), "gp", uuid.New())
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestEntityResolver_NilID(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.resolver().Resolve(context.Background(), uuid.New(), "gp", uuid.Nil)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestEntityResolver_CrossTenant(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gp := env.seedGP(t, uuid.New(), "Tenant A Capital")

	_, err := env.resolver().Resolve(ctx, uuid.New(), "gp", gp.ID())
	require.ErrorIs(t, err, entity.ErrNotFound)
}
