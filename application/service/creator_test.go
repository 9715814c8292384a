package service

import (
	"context"
	"testing"

	"github.com/dealdeskhq/dealdesk/domain/entity"
	"github.com/dealdeskhq/dealdesk/domain/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityCreator_CreateGP(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()

	ref, err := env.creator().Create(ctx, orgID, "gp", "Summit Partners", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, entity.KindGP, ref.Kind())
	assert.Equal(t, "Summit Partners", ref.Name())

	gp, err := env.stores.GPs.FindOne(ctx, store.WithID(ref.ID()), store.WithOrgID(orgID))
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultGPFirmType, gp.FirmType())
}

func TestEntityCreator_AliasType(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ref, err := env.creator().Create(ctx, uuid.New(), "Pension Fund", "State Retirement System", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, entity.KindLP, ref.Kind())
}

func TestEntityCreator_ContactNameSplit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()

	ref, err := env.creator().Create(ctx, orgID, "contact", "Jane van Dam", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, entity.KindContact, ref.Kind())
	assert.Equal(t, "Jane van Dam", ref.Name())

	contact, err := env.stores.Contacts.FindOne(ctx, store.WithID(ref.ID()), store.WithOrgID(orgID))
	require.NoError(t, err)
	assert.Equal(t, "Jane", contact.FirstName())
	assert.Equal(t, "van Dam", contact.LastName())
}

func TestEntityCreator_BlankName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.creator().Create(context.Background(), uuid.New(), "gp", "   ", uuid.New())

	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestEntityCreator_UnknownType(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.creator().Create(context.Background(), uuid.New(), "spaceship", "Rocket Co", uuid.New())

	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestEntityCreator_TrimsName(t *testing.T) {
	env := newTestEnv(t)

	ref, err := env.creator().Create(context.Background(), uuid.New(), "Company", "  Acme Robotics  ", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, entity.KindPortfolioCompany, ref.Kind())
	assert.Equal(t, "Acme Robotics", ref.Name())
}
