package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/brightifybd/go-storefront/app/helpers"
	"github.com/brightifybd/go-storefront/app/models"
	"github.com/brightifybd/go-storefront/app/store"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type BlogAdminHandler struct {
	render    *render.Render
	store     *store.Store
	validator *validator.Validate
}

func NewBlogAdminHandler(r *render.Render, st *store.Store, v *validator.Validate) *BlogAdminHandler {
	return &BlogAdminHandler{render: r, store: st, validator: v}
}

type blogPostForm struct {
	Title   string   `json:"title" validate:"required"`
	Excerpt string   `json:"excerpt"`
	Content string   `json:"content" validate:"required"`
	Author  string   `json:"author"`
	Image   string   `json:"image"`
	Tags    []string `json:"tags"`
}

func (f blogPostForm) toPost(id, date string) models.BlogPost {
	author := f.Author
	if author == "" {
		author = "Admin"
	}
	return models.BlogPost{
		ID:      id,
		Title:   f.Title,
		Excerpt: f.Excerpt,
		Content: f.Content,
		Author:  author,
		Date:    date,
		Image:   f.Image,
		Slug:    helpers.Slugify(f.Title),
		Tags:    f.Tags,
	}
}

func (h *BlogAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"blogPosts": h.store.BlogPosts()})
}

func (h *BlogAdminHandler) decodeForm(w http.ResponseWriter, r *http.Request) (blogPostForm, bool) {
	var form blogPostForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return form, false
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "title and content are required"})
		return form, false
	}
	return form, true
}

func (h *BlogAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, ok := h.decodeForm(w, r)
	if !ok {
		return
	}

	post := form.toPost(uuid.New().String(), helpers.NowDate())
	h.store.UpdateBlogPosts(func(posts []models.BlogPost) []models.BlogPost {
		return append([]models.BlogPost{post}, posts...)
	})

	log.Printf("BlogAdmin: created %s (%s)", post.ID, post.Slug)
	_ = h.render.JSON(w, http.StatusCreated, map[string]any{"blogPost": post})
}

func (h *BlogAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	form, ok := h.decodeForm(w, r)
	if !ok {
		return
	}

	var updated *models.BlogPost
	h.store.UpdateBlogPosts(func(posts []models.BlogPost) []models.BlogPost {
		for i := range posts {
			if posts[i].ID == id {
				posts[i] = form.toPost(id, posts[i].Date)
				p := posts[i]
				updated = &p
			}
		}
		return posts
	})

	if updated == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "blog post not found"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"blogPost": updated})
}

func (h *BlogAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	removed := false
	h.store.UpdateBlogPosts(func(posts []models.BlogPost) []models.BlogPost {
		kept := posts[:0]
		for _, p := range posts {
			if p.ID == id {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		return kept
	})

	if !removed {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "blog post not found"})
		return
	}
	log.Printf("BlogAdmin: deleted %s", id)
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
