package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipe_ToPublic(t *testing.T) {
	r := &Recipe{
		ID:          "r1",
		CreatorID:   "u1",
		Title:       "Soup",
		Description: "Warm soup",
		CreatedAt:   time.Date(2024, time.March, 7, 18, 30, 0, 0, time.UTC),
	}

	out, err := json.Marshal(r.ToPublic())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"r1","title":"Soup","description":"Warm soup","createdAt":"07/03/2024"}`, string(out))
}

func TestUser_ToPublicHidesPassword(t *testing.T) {
	u := &User{ID: "u1", Name: "Ana", Email: "ana@x.com", Password: "$2a$10$hash", Role: RoleAdmin}

	out, err := json.Marshal(u.ToPublic())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1","name":"Ana","email":"ana@x.com"}`, string(out))

	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
}

func TestFeedRecipe_ToItem(t *testing.T) {
	f := &FeedRecipe{
		ID:        "r1",
		CreatorID: "u2",
		Title:     "Bread",
		CreatedAt: time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
		UserName:  "Bia",
	}

	item := f.ToItem()
	assert.Equal(t, "31/12/2023", item.CreatedAt)
	assert.Equal(t, "u2", item.UserID)
	assert.Equal(t, "Bia", item.UserName)
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleNormal.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("ROOT").Valid())
	assert.False(t, Role("").Valid())
}
