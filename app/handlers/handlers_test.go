package handlers

import (
	"encoding/json"
	"testing"

	"github.com/brightifybd/go-storefront/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicSettingsStripsSecrets(t *testing.T) {
	settings := models.AppSettings{
		SiteName:      "Brightify BD",
		AdminPassword: "topsecret",
		Moderators: []models.Moderator{
			{ID: "m1", Name: "Rina", Password: "modpass"},
		},
	}

	public := NewPublicSettings(settings)
	raw, err := json.Marshal(public)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "topsecret")
	assert.NotContains(t, string(raw), "modpass")
	assert.Equal(t, []string{"Rina"}, public.Moderators)
}

func TestPublicUserHidesPassword(t *testing.T) {
	user := models.User{ID: "u1", Name: "Sara", Email: "sara@example.com", Password: "secret"}

	raw, err := json.Marshal(NewPublicUser(user))
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret")
	assert.Contains(t, string(raw), "sara@example.com")
}
