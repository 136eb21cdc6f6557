package admin

import (
	"net/http"

	"github.com/brightifybd/go-storefront/app/models"
	"github.com/brightifybd/go-storefront/app/store"
	"github.com/unrolled/render"
)

type DashboardHandler struct {
	render *render.Render
	store  *store.Store
}

func NewDashboardHandler(r *render.Render, st *store.Store) *DashboardHandler {
	return &DashboardHandler{render: r, store: st}
}

// Overview is the landing tab for every staff role: revenue and count
// cards plus the five most recent orders and inquiries. Both lists are
// already newest-first in the store, so slicing the head is enough.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	orders := h.store.Orders()
	submissions := h.store.Submissions()

	revenue := 0
	for _, o := range orders {
		revenue += o.Total
	}

	recentOrders := orders
	if len(recentOrders) > 5 {
		recentOrders = recentOrders[:5]
	}
	latestInquiries := submissions
	if len(latestInquiries) > 5 {
		latestInquiries = latestInquiries[:5]
	}
	if recentOrders == nil {
		recentOrders = []models.Order{}
	}
	if latestInquiries == nil {
		latestInquiries = []models.FormSubmission{}
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]any{
		"totalRevenue":    revenue,
		"totalOrders":     len(orders),
		"totalProducts":   len(h.store.Products()),
		"totalInquiries":  len(submissions),
		"recentOrders":    recentOrders,
		"latestInquiries": latestInquiries,
	})
}
