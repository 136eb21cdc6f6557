package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brightifybd/go-storefront/app/auth"
	"github.com/brightifybd/go-storefront/app/models"
	"github.com/brightifybd/go-storefront/app/storage"
	"github.com/brightifybd/go-storefront/app/store"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"
)

func newAdminFixture(t *testing.T) *store.Store {
	t.Helper()
	return store.New(storage.NewMemory(), auth.PlaintextComparer{})
}

func TestProductCreateDerivesSlugAndPrepends(t *testing.T) {
	st := newAdminFixture(t)
	h := NewProductAdminHandler(render.New(), st, validator.New())

	body := `{"name":"Warm White Fairy Lights","price":800,"category":"Lighting","images":["https://cdn/img.jpg","",""],"stock":10}`
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest("POST", "/admin/products", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	products := st.Products()
	require.Len(t, products, 3)
	created := products[0]
	assert.Equal(t, "warm-white-fairy-lights", created.Slug)
	assert.Equal(t, []string{"https://cdn/img.jpg"}, created.Images)
	assert.NotEmpty(t, created.ID)
}

func TestProductCreateRejectsSaleAboveBase(t *testing.T) {
	st := newAdminFixture(t)
	h := NewProductAdminHandler(render.New(), st, validator.New())

	body := `{"name":"Bad Deal","price":500,"salePrice":500,"category":"Lighting"}`
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest("POST", "/admin/products", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, st.Products(), 2)
}

func TestProductUpdateKeepsReviewsAndReslug(t *testing.T) {
	st := newAdminFixture(t)
	h := NewProductAdminHandler(render.New(), st, validator.New())

	target := st.Products()[0]
	st.Register("Sara", "sara@example.com", "secret")
	st.AddReview(target.ID, 5, "lovely")

	body := `{"name":"Renamed Rose Lights","price":1300,"category":"Lighting"}`
	req := httptest.NewRequest("PUT", "/admin/products/"+target.ID, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": target.ID})
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	updated, ok := st.FindProductByID(target.ID)
	require.True(t, ok)
	assert.Equal(t, "renamed-rose-lights", updated.Slug)
	require.Len(t, updated.Reviews, 1)
	assert.Equal(t, "lovely", updated.Reviews[0].Comment)
}

func TestOrderStatusUpdateRejectsUnknownState(t *testing.T) {
	st := newAdminFixture(t)
	st.AddOrder(models.Order{ID: "ORD-AAAAAAAAA", Status: models.OrderStatusPending})
	h := NewOrderAdminHandler(render.New(), st)

	req := httptest.NewRequest("PATCH", "/admin/orders/ORD-AAAAAAAAA/status",
		strings.NewReader(`{"status":"teleported"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "ORD-AAAAAAAAA"})
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, models.OrderStatusPending, st.Orders()[0].Status)
}

func TestOrderStatusUpdateMovesOrder(t *testing.T) {
	st := newAdminFixture(t)
	st.AddOrder(models.Order{ID: "ORD-AAAAAAAAA", Status: models.OrderStatusPending})
	h := NewOrderAdminHandler(render.New(), st)

	req := httptest.NewRequest("PATCH", "/admin/orders/ORD-AAAAAAAAA/status",
		strings.NewReader(`{"status":"shipped"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "ORD-AAAAAAAAA"})
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.OrderStatusShipped, st.Orders()[0].Status)
}

func TestSettingsUpdateMergesAndKeepsModerators(t *testing.T) {
	st := newAdminFixture(t)
	st.UpdateSettings(func(s models.AppSettings) models.AppSettings {
		s.Moderators = []models.Moderator{{ID: "m1", Name: "Rina", Password: "modpass"}}
		return s
	})
	h := NewSettingsAdminHandler(render.New(), st)

	rec := httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest("PUT", "/admin/settings",
		strings.NewReader(`{"siteName":"Brightify BD 2.0","adminPassword":""}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	settings := st.Settings()
	assert.Equal(t, "Brightify BD 2.0", settings.SiteName)
	// Absent fields and the roster survive; an empty password submit
	// does not wipe the stored one.
	assert.Equal(t, "admin", settings.AdminPassword)
	assert.Equal(t, "+880 1711 111111", settings.PhoneNumber)
	require.Len(t, settings.Moderators, 1)
	assert.Equal(t, "Rina", settings.Moderators[0].Name)
}

func TestModeratorCreateGrantsGateAccess(t *testing.T) {
	st := newAdminFixture(t)
	h := NewModeratorAdminHandler(render.New(), st, validator.New())

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest("POST", "/admin/moderators",
		strings.NewReader(`{"name":"Rina","password":"modpass"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)

	gate := auth.NewGate(auth.PlaintextComparer{})
	role, err := gate.ResolveRole(st.Settings(), "modpass")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleModerator, role)

	// The response roster never carries passwords.
	assert.NotContains(t, rec.Body.String(), "modpass")
}

func TestModeratorDeleteRevokesAccess(t *testing.T) {
	st := newAdminFixture(t)
	h := NewModeratorAdminHandler(render.New(), st, validator.New())

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest("POST", "/admin/moderators",
		strings.NewReader(`{"name":"Rina","password":"modpass"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)
	id := st.Settings().Moderators[0].ID

	req := httptest.NewRequest("DELETE", "/admin/moderators/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec = httptest.NewRecorder()
	h.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, st.Settings().Moderators)

	gate := auth.NewGate(auth.PlaintextComparer{})
	_, err := gate.ResolveRole(st.Settings(), "modpass")
	assert.ErrorIs(t, err, auth.ErrInvalidCredential)
}

func TestDashboardOverviewCountsAndRecency(t *testing.T) {
	st := newAdminFixture(t)
	st.AddOrder(models.Order{ID: "ORD-AAAAAAAAA", Total: 1000})
	st.AddOrder(models.Order{ID: "ORD-BBBBBBBBB", Total: 500})
	st.AddSubmission(models.SubmissionContact, map[string]string{"email": "a@example.com"})
	h := NewDashboardHandler(render.New(), st)

	rec := httptest.NewRecorder()
	h.Overview(rec, httptest.NewRequest("GET", "/admin/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		TotalRevenue int `json:"totalRevenue"`
		TotalOrders  int `json:"totalOrders"`
		RecentOrders []struct {
			ID string `json:"id"`
		} `json:"recentOrders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1500, body.TotalRevenue)
	assert.Equal(t, 2, body.TotalOrders)
	require.NotEmpty(t, body.RecentOrders)
	assert.Equal(t, "ORD-BBBBBBBBB", body.RecentOrders[0].ID)
}
