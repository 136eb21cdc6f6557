package auth

import (
	"errors"

	"github.com/brightifybd/go-storefront/app/models"
)

type Role string

const (
	RoleNone      Role = ""
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// Tab names the back-office surfaces. Reachability is a static
// per-role allow-list, nothing is decided per request beyond a map
// lookup.
type Tab string

const (
	TabDashboard  Tab = "dashboard"
	TabProducts   Tab = "products"
	TabCategories Tab = "categories"
	TabOrders     Tab = "orders"
	TabBlog       Tab = "blog"
	TabModerators Tab = "moderators"
	TabSettings   Tab = "settings"
)

// fallbackAdminPassword applies when settings carry no admin password,
// matching the seed default.
const fallbackAdminPassword = "admin"

var ErrInvalidCredential = errors.New("invalid password")

var allowList = map[Role][]Tab{
	RoleModerator: {TabDashboard, TabProducts, TabBlog},
	RoleAdmin: {TabDashboard, TabProducts, TabCategories, TabOrders,
		TabBlog, TabModerators, TabSettings},
}

// CanAccess reports whether the role may reach the given tab.
func CanAccess(role Role, tab Tab) bool {
	for _, t := range allowList[role] {
		if t == tab {
			return true
		}
	}
	return false
}

// Tabs returns the surfaces reachable by the role, in sidebar order.
func Tabs(role Role) []Tab {
	return allowList[role]
}

// Gate resolves a submitted staff credential to a role against the
// current settings.
type Gate struct {
	comparer Comparer
}

func NewGate(comparer Comparer) *Gate {
	return &Gate{comparer: comparer}
}

// ResolveRole checks the admin password first, then the moderator
// roster. The order is fixed: a password colliding with both an admin
// and a moderator entry always resolves to admin. A failed check
// returns ErrInvalidCredential and no role.
func (g *Gate) ResolveRole(settings models.AppSettings, password string) (Role, error) {
	adminPassword := settings.AdminPassword
	if adminPassword == "" {
		adminPassword = fallbackAdminPassword
	}
	if g.comparer.Compare(adminPassword, password) {
		return RoleAdmin, nil
	}

	for _, mod := range settings.Moderators {
		if g.comparer.Compare(mod.Password, password) {
			return RoleModerator, nil
		}
	}

	return RoleNone, ErrInvalidCredential
}
