package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	shopperCookieName = "brightify-session"
	staffCookieName   = "brightify-admin"

	userIDSessionKey    = "userID"
	staffAuthSessionKey = "adminAuth"
	staffRoleSessionKey = "adminRole"
)

// ShopperSessionStore is the persistent shopper session: a 30-day
// cookie that survives browser restarts.
type ShopperSessionStore interface {
	GetUserID(r *http.Request) string
	SetUserID(w http.ResponseWriter, r *http.Request, userID string) error
	ClearUserID(w http.ResponseWriter, r *http.Request) error
}

// StaffSessionStore is the back-office session. Its cookie has MaxAge
// 0, a browser-session cookie: the staff login survives reloads but
// not closing the tab. The two stores are intentionally separate —
// shopper accounts and staff access have different lifetimes and
// different authorization domains.
type StaffSessionStore interface {
	GetRole(r *http.Request) (string, bool)
	SetRole(w http.ResponseWriter, r *http.Request, role string) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

type CookieShopperStore struct {
	store *sessions.CookieStore
}

func NewCookieShopperStore(keyPairs ...[]byte) *CookieShopperStore {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieShopperStore{store: store}
}

func (c *CookieShopperStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, shopperCookieName)
	if err != nil {
		log.Printf("ShopperSession: error decoding session: %v", err)
	}
	return session
}

func (c *CookieShopperStore) GetUserID(r *http.Request) string {
	session := c.getSession(r)
	if session == nil {
		return ""
	}
	userID, _ := session.Values[userIDSessionKey].(string)
	return userID
}

func (c *CookieShopperStore) SetUserID(w http.ResponseWriter, r *http.Request, userID string) error {
	session := c.getSession(r)
	session.Values[userIDSessionKey] = userID
	return session.Save(r, w)
}

func (c *CookieShopperStore) ClearUserID(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	delete(session.Values, userIDSessionKey)
	return session.Save(r, w)
}

type CookieStaffStore struct {
	store *sessions.CookieStore
}

func NewCookieStaffStore(keyPairs ...[]byte) *CookieStaffStore {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/admin",
		MaxAge:   0,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieStaffStore{store: store}
}

func (c *CookieStaffStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, staffCookieName)
	if err != nil {
		log.Printf("StaffSession: error decoding session: %v", err)
	}
	return session
}

func (c *CookieStaffStore) GetRole(r *http.Request) (string, bool) {
	session := c.getSession(r)
	if session == nil {
		return "", false
	}
	auth, _ := session.Values[staffAuthSessionKey].(string)
	if auth != "true" {
		return "", false
	}
	role, _ := session.Values[staffRoleSessionKey].(string)
	return role, role != ""
}

func (c *CookieStaffStore) SetRole(w http.ResponseWriter, r *http.Request, role string) error {
	session := c.getSession(r)
	session.Values[staffAuthSessionKey] = "true"
	session.Values[staffRoleSessionKey] = role
	return session.Save(r, w)
}

func (c *CookieStaffStore) Clear(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
