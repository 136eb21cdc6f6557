package routes

import (
	"net/http"

	"github.com/brightifybd/go-storefront/app/auth"
	"github.com/brightifybd/go-storefront/app/handlers"
	"github.com/brightifybd/go-storefront/app/handlers/admin"
	"github.com/brightifybd/go-storefront/app/middlewares"
	"github.com/brightifybd/go-storefront/app/services"
	"github.com/brightifybd/go-storefront/app/store"
	appsessions "github.com/brightifybd/go-storefront/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Render    *render.Render
	Store     *store.Store
	Validator *validator.Validate
	Gate      *auth.Gate
	Checkout  *services.CheckoutService
	Forms     *services.FormsService
	Shopper   appsessions.ShopperSessionStore
	Staff     appsessions.StaffSessionStore
	CSRFKey   []byte
	Secure    bool
}

func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()
	router.Use(middlewares.MethodOverrideMiddleware)

	home := handlers.NewHomeHandler(d.Render, d.Store)
	products := handlers.NewProductHandler(d.Render, d.Store, d.Validator)
	cart := handlers.NewCartHandler(d.Render, d.Store, d.Validator)
	wishlist := handlers.NewWishlistHandler(d.Render, d.Store)
	shopperAuth := handlers.NewAuthHandler(d.Render, d.Store, d.Shopper, d.Validator)
	checkout := handlers.NewCheckoutHandler(d.Render, d.Checkout, d.Validator)
	contact := handlers.NewContactHandler(d.Render, d.Forms, d.Validator)
	blog := handlers.NewBlogHandler(d.Render, d.Store)

	router.HandleFunc("/", home.Home).Methods("GET")
	router.HandleFunc("/settings", home.GetSettings).Methods("GET")
	router.HandleFunc("/language", home.SetLanguage).Methods("POST")

	router.HandleFunc("/products", products.List).Methods("GET")
	router.HandleFunc("/products/{slug}", products.Detail).Methods("GET")
	router.HandleFunc("/products/{id}/reviews", products.AddReview).Methods("POST")

	router.HandleFunc("/blog", blog.List).Methods("GET")
	router.HandleFunc("/blog/{slug}", blog.Detail).Methods("GET")

	router.HandleFunc("/cart", cart.Get).Methods("GET")
	router.HandleFunc("/cart", cart.Add).Methods("POST")
	router.HandleFunc("/cart/{productId}", cart.UpdateQuantity).Methods("PATCH")
	router.HandleFunc("/cart/{productId}", cart.Remove).Methods("DELETE")

	router.HandleFunc("/wishlist", wishlist.List).Methods("GET")
	router.HandleFunc("/wishlist", wishlist.Toggle).Methods("POST")

	router.HandleFunc("/auth/register", shopperAuth.Register).Methods("POST")
	router.HandleFunc("/auth/login", shopperAuth.Login).Methods("POST")
	router.HandleFunc("/auth/logout", shopperAuth.Logout).Methods("POST")
	router.HandleFunc("/auth/me", shopperAuth.Me).Methods("GET")

	router.HandleFunc("/checkout", checkout.PlaceOrder).Methods("POST")

	router.HandleFunc("/contact", contact.Submit).Methods("POST")
	router.HandleFunc("/newsletter", contact.Newsletter).Methods("POST")
	router.HandleFunc("/recovery", contact.Recovery).Methods("POST")

	mountAdmin(router, d)

	return router
}

// mountAdmin wires the back office: the login pair sits outside the
// auth middleware, everything else goes through the staff session
// check plus the per-tab role gate.
func mountAdmin(router *mux.Router, d Deps) {
	session := admin.NewSessionHandler(d.Render, d.Store, d.Gate, d.Staff)
	dashboard := admin.NewDashboardHandler(d.Render, d.Store)
	products := admin.NewProductAdminHandler(d.Render, d.Store, d.Validator)
	categories := admin.NewCategoryAdminHandler(d.Render, d.Store, d.Validator)
	orders := admin.NewOrderAdminHandler(d.Render, d.Store)
	blog := admin.NewBlogAdminHandler(d.Render, d.Store, d.Validator)
	moderators := admin.NewModeratorAdminHandler(d.Render, d.Store, d.Validator)
	settings := admin.NewSettingsAdminHandler(d.Render, d.Store)

	router.HandleFunc("/admin/login", session.Login).Methods("POST")
	router.HandleFunc("/admin/logout", session.Logout).Methods("POST")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.StaffAuthMiddleware(d.Staff))
	if len(d.CSRFKey) > 0 {
		adminRouter.Use(csrf.Protect(d.CSRFKey, csrf.Secure(d.Secure), csrf.Path("/admin")))
	}

	adminRouter.Handle("/session", http.HandlerFunc(session.Session)).Methods("GET")

	tab := func(t auth.Tab, h http.HandlerFunc) http.Handler {
		return middlewares.RequireTab(t)(h)
	}

	adminRouter.Handle("/dashboard", tab(auth.TabDashboard, dashboard.Overview)).Methods("GET")

	adminRouter.Handle("/products", tab(auth.TabProducts, products.List)).Methods("GET")
	adminRouter.Handle("/products", tab(auth.TabProducts, products.Create)).Methods("POST")
	adminRouter.Handle("/products/{id}", tab(auth.TabProducts, products.Update)).Methods("PUT")
	adminRouter.Handle("/products/{id}", tab(auth.TabProducts, products.Delete)).Methods("DELETE")
	adminRouter.Handle("/products/{id}/featured", tab(auth.TabProducts, products.ToggleFeatured)).Methods("POST")

	adminRouter.Handle("/categories", tab(auth.TabCategories, categories.List)).Methods("GET")
	adminRouter.Handle("/categories", tab(auth.TabCategories, categories.Create)).Methods("POST")
	adminRouter.Handle("/categories/{id}", tab(auth.TabCategories, categories.Update)).Methods("PUT")
	adminRouter.Handle("/categories/{id}", tab(auth.TabCategories, categories.Delete)).Methods("DELETE")

	adminRouter.Handle("/orders", tab(auth.TabOrders, orders.List)).Methods("GET")
	adminRouter.Handle("/orders/{id}/status", tab(auth.TabOrders, orders.UpdateStatus)).Methods("PATCH")

	adminRouter.Handle("/blog", tab(auth.TabBlog, blog.List)).Methods("GET")
	adminRouter.Handle("/blog", tab(auth.TabBlog, blog.Create)).Methods("POST")
	adminRouter.Handle("/blog/{id}", tab(auth.TabBlog, blog.Update)).Methods("PUT")
	adminRouter.Handle("/blog/{id}", tab(auth.TabBlog, blog.Delete)).Methods("DELETE")

	adminRouter.Handle("/moderators", tab(auth.TabModerators, moderators.List)).Methods("GET")
	adminRouter.Handle("/moderators", tab(auth.TabModerators, moderators.Create)).Methods("POST")
	adminRouter.Handle("/moderators/{id}", tab(auth.TabModerators, moderators.Delete)).Methods("DELETE")

	adminRouter.Handle("/settings", tab(auth.TabSettings, settings.Get)).Methods("GET")
	adminRouter.Handle("/settings", tab(auth.TabSettings, settings.Update)).Methods("PUT")
}
