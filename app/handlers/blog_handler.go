package handlers

import (
	"net/http"

	"github.com/brightifybd/go-storefront/app/store"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type BlogHandler struct {
	render *render.Render
	store  *store.Store
}

func NewBlogHandler(r *render.Render, st *store.Store) *BlogHandler {
	return &BlogHandler{render: r, store: st}
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"blogPosts": h.store.BlogPosts()})
}

func (h *BlogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	post, ok := h.store.FindBlogPostBySlug(slug)
	if !ok {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "blog post not found"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"blogPost": post})
}
