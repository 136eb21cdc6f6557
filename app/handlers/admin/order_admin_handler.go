package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/brightifybd/go-storefront/app/models"
	"github.com/brightifybd/go-storefront/app/store"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type OrderAdminHandler struct {
	render *render.Render
	store  *store.Store
}

func NewOrderAdminHandler(r *render.Render, st *store.Store) *OrderAdminHandler {
	return &OrderAdminHandler{render: r, store: st}
}

func (h *OrderAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"orders": h.store.Orders()})
}

type orderStatusForm struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateStatus is the only order mutation: the operator moves an order
// through pending, processing, shipped, delivered, or cancels it.
// Nothing transitions automatically.
func (h *OrderAdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var form orderStatusForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if !models.ValidOrderStatus(form.Status) {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "unknown order status"})
		return
	}

	var updated *models.Order
	h.store.UpdateOrders(func(orders []models.Order) []models.Order {
		for i := range orders {
			if orders[i].ID == id {
				orders[i].Status = form.Status
				o := orders[i]
				updated = &o
			}
		}
		return orders
	})

	if updated == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}

	log.Printf("OrderAdmin: %s -> %s", id, form.Status)
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"order": updated})
}
