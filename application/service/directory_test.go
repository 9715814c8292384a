package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_GPsOrderedByName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()
	dir := NewDirectory(env.stores)

	env.seedGP(t, orgID, "Zenith Capital")
	env.seedGP(t, orgID, "Apex Partners")

	gps, err := dir.GPs(ctx, orgID, 0, 0)
	require.NoError(t, err)
	require.Len(t, gps, 2)
	assert.Equal(t, "Apex Partners", gps[0].Name())
	assert.Equal(t, "Zenith Capital", gps[1].Name())
}

func TestDirectory_Pagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()
	dir := NewDirectory(env.stores)

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		env.seedGP(t, orgID, name)
	}

	page, err := dir.GPs(ctx, orgID, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Beta", page[0].Name())
	assert.Equal(t, "Gamma", page[1].Name())
}

func TestDirectory_TenantIsolation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	dir := NewDirectory(env.stores)

	env.seedGP(t, uuid.New(), "Apex Partners")

	gps, err := dir.GPs(ctx, uuid.New(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, gps)
}

func TestDirectory_Contacts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()
	dir := NewDirectory(env.stores)

	_, err := env.creator().Create(ctx, orgID, "contact", "Jane Doe", uuid.New())
	require.NoError(t, err)
	_, err = env.creator().Create(ctx, orgID, "contact", "Amir Aziz", uuid.New())
	require.NoError(t, err)

	contacts, err := dir.Contacts(ctx, orgID, 0, 0)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Aziz", contacts[0].LastName())
	assert.Equal(t, "Doe", contacts[1].LastName())
}
