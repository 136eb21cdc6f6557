package auth

import (
	"testing"

	"github.com/brightifybd/go-storefront/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testSettings() models.AppSettings {
	return models.AppSettings{
		AdminPassword: "topsecret",
		Moderators: []models.Moderator{
			{ID: "m1", Name: "Rina", Password: "modpass"},
		},
	}
}

func TestResolveRoleAdmin(t *testing.T) {
	gate := NewGate(PlaintextComparer{})

	role, err := gate.ResolveRole(testSettings(), "topsecret")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
}

func TestResolveRoleModerator(t *testing.T) {
	gate := NewGate(PlaintextComparer{})

	role, err := gate.ResolveRole(testSettings(), "modpass")
	require.NoError(t, err)
	assert.Equal(t, RoleModerator, role)
}

func TestResolveRoleRejectsUnknownPassword(t *testing.T) {
	gate := NewGate(PlaintextComparer{})

	role, err := gate.ResolveRole(testSettings(), "nope")
	assert.ErrorIs(t, err, ErrInvalidCredential)
	assert.Equal(t, RoleNone, role)
}

func TestResolveRoleAdminWinsOnCollision(t *testing.T) {
	gate := NewGate(PlaintextComparer{})
	settings := testSettings()
	settings.Moderators = append(settings.Moderators,
		models.Moderator{ID: "m2", Name: "Shadow", Password: "topsecret"})

	role, err := gate.ResolveRole(settings, "topsecret")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
}

func TestResolveRoleFallbackAdminPassword(t *testing.T) {
	gate := NewGate(PlaintextComparer{})
	settings := testSettings()
	settings.AdminPassword = ""

	role, err := gate.ResolveRole(settings, "admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
}

func TestCanAccessAllowList(t *testing.T) {
	assert.True(t, CanAccess(RoleModerator, TabDashboard))
	assert.True(t, CanAccess(RoleModerator, TabProducts))
	assert.True(t, CanAccess(RoleModerator, TabBlog))

	assert.False(t, CanAccess(RoleModerator, TabCategories))
	assert.False(t, CanAccess(RoleModerator, TabOrders))
	assert.False(t, CanAccess(RoleModerator, TabModerators))
	assert.False(t, CanAccess(RoleModerator, TabSettings))

	for _, tab := range Tabs(RoleAdmin) {
		assert.True(t, CanAccess(RoleAdmin, tab))
	}
	assert.Len(t, Tabs(RoleAdmin), 7)

	assert.False(t, CanAccess(RoleNone, TabDashboard))
}

func TestPlaintextComparerRejectsEmptyStored(t *testing.T) {
	c := PlaintextComparer{}
	assert.False(t, c.Compare("", ""))
	assert.True(t, c.Compare("x", "x"))
	assert.False(t, c.Compare("x", "y"))
}

func TestBcryptComparer(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	c := BcryptComparer{}
	assert.True(t, c.Compare(string(hash), "secret"))
	assert.False(t, c.Compare(string(hash), "wrong"))
	assert.False(t, c.Compare("not-a-hash", "secret"))
}

func TestGateWorksWithHashedCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("topsecret"), bcrypt.MinCost)
	require.NoError(t, err)

	gate := NewGate(BcryptComparer{})
	settings := models.AppSettings{AdminPassword: string(hash)}

	role, err := gate.ResolveRole(settings, "topsecret")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
}
