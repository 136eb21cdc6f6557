package store

import (
	"encoding/json"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/brightifybd/go-storefront/app/auth"
	"github.com/brightifybd/go-storefront/app/helpers"
	"github.com/brightifybd/go-storefront/app/models"
	"github.com/brightifybd/go-storefront/app/storage"
	"github.com/google/uuid"
)

// Store is the single authoritative copy of all domain collections.
// Every mutation writes the affected collection back to the persistent
// store before returning (write-through); reads serve the in-memory
// state. Construct exactly one per process and inject it where needed.
//
// Orders and submissions are kept newest-first, reviews oldest-first.
// Dashboards show recent activity on top; reviews read chronologically.
type Store struct {
	mu       sync.Mutex
	kv       storage.KV
	comparer auth.Comparer

	products     []models.Product
	categories   []models.Category
	blogPosts    []models.BlogPost
	testimonials []models.Testimonial
	settings     models.AppSettings
	cart         []models.CartItem
	wishlist     []models.Product
	orders       []models.Order
	submissions  []models.FormSubmission
	users        []models.User
	currentUser  *models.User
	language     string

	listeners map[int]func()
	nextSub   int
}

// New loads every collection from the persistent store, seeding the
// built-in dataset for anything missing or unparseable. Malformed data
// only falls back here, at init; individual reads never re-parse.
func New(kv storage.KV, comparer auth.Comparer) *Store {
	s := &Store{
		kv:           kv,
		comparer:     comparer,
		testimonials: defaultTestimonials(),
		listeners:    map[int]func(){},
	}

	s.products = loadJSON(kv, storage.KeyProducts, defaultProducts())
	s.categories = loadJSON(kv, storage.KeyCategories, defaultCategories())
	s.blogPosts = loadJSON(kv, storage.KeyBlogPosts, defaultBlogPosts())
	s.settings = loadJSON(kv, storage.KeySettings, defaultSettings())
	s.cart = loadJSON(kv, storage.KeyCart, []models.CartItem{})
	s.wishlist = loadJSON(kv, storage.KeyWishlist, []models.Product{})
	s.orders = loadJSON(kv, storage.KeyOrders, []models.Order{})
	s.submissions = loadJSON(kv, storage.KeySubmissions, []models.FormSubmission{})
	s.users = loadJSON(kv, storage.KeyUsers, []models.User{})
	s.currentUser = loadJSON(kv, storage.KeyCurrentUser, (*models.User)(nil))

	if lang, ok, err := kv.Get(storage.KeyLanguage); err == nil && ok && lang != "" {
		s.language = lang
	} else {
		s.language = "en"
	}

	return s
}

func loadJSON[T any](kv storage.KV, key string, fallback T) T {
	raw, ok, err := kv.Get(key)
	if err != nil {
		log.Printf("Store: failed to read %s, seeding defaults: %v", key, err)
		return fallback
	}
	if !ok || raw == "" {
		return fallback
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Printf("Store: unparseable %s, seeding defaults: %v", key, err)
		return fallback
	}
	return out
}

func (s *Store) persist(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("Store: failed to marshal %s: %v", key, err)
		return
	}
	if err := s.kv.Set(key, string(raw)); err != nil {
		log.Printf("Store: failed to persist %s: %v", key, err)
	}
}

// Subscribe registers a listener invoked after every mutation. The
// returned function removes it.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// notify runs listeners with the lock released so they can read state.
func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Snapshot is a point-in-time copy of every collection, taken under
// one lock acquisition so the collections are mutually consistent.
type Snapshot struct {
	Products     []models.Product
	Categories   []models.Category
	BlogPosts    []models.BlogPost
	Testimonials []models.Testimonial
	Settings     models.AppSettings
	Cart         []models.CartItem
	Wishlist     []models.Product
	Orders       []models.Order
	Submissions  []models.FormSubmission
	CurrentUser  *models.User
	Language     string
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var user *models.User
	if s.currentUser != nil {
		u := *s.currentUser
		user = &u
	}
	return Snapshot{
		Products:     append([]models.Product(nil), s.products...),
		Categories:   append([]models.Category(nil), s.categories...),
		BlogPosts:    append([]models.BlogPost(nil), s.blogPosts...),
		Testimonials: append([]models.Testimonial(nil), s.testimonials...),
		Settings:     s.settings,
		Cart:         append([]models.CartItem(nil), s.cart...),
		Wishlist:     append([]models.Product(nil), s.wishlist...),
		Orders:       append([]models.Order(nil), s.orders...),
		Submissions:  append([]models.FormSubmission(nil), s.submissions...),
		CurrentUser:  user,
		Language:     s.language,
	}
}

// --- reads ---

func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.products...)
}

func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Category(nil), s.categories...)
}

func (s *Store) BlogPosts() []models.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.BlogPost(nil), s.blogPosts...)
}

func (s *Store) Testimonials() []models.Testimonial {
	return append([]models.Testimonial(nil), s.testimonials...)
}

func (s *Store) Settings() models.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *Store) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartItem(nil), s.cart...)
}

func (s *Store) Wishlist() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.wishlist...)
}

func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Order(nil), s.orders...)
}

func (s *Store) Submissions() []models.FormSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.FormSubmission(nil), s.submissions...)
}

func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User(nil), s.users...)
}

func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

func (s *Store) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// FindProductBySlug scans the catalog for a slug. Slugs are not
// deduplicated at write time, so the last product carrying the slug
// wins.
func (s *Store) FindProductBySlug(slug string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found models.Product
	var ok bool
	for _, p := range s.products {
		if p.Slug == slug {
			found = p
			ok = true
		}
	}
	return found, ok
}

func (s *Store) FindProductByID(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) FindCategoryBySlug(slug string) (models.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found models.Category
	var ok bool
	for _, c := range s.categories {
		if c.Slug == slug {
			found = c
			ok = true
		}
	}
	return found, ok
}

func (s *Store) FindBlogPostBySlug(slug string) (models.BlogPost, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found models.BlogPost
	var ok bool
	for _, b := range s.blogPosts {
		if b.Slug == slug {
			found = b
			ok = true
		}
	}
	return found, ok
}

// --- cart ---

// AddToCart merges by product id: an existing line gains quantity, a
// new product appends a full snapshot. Stock is advisory display data
// and is deliberately not enforced here.
func (s *Store) AddToCart(product models.Product, quantity int) {
	s.mu.Lock()
	merged := false
	for i := range s.cart {
		if s.cart[i].ID == product.ID {
			s.cart[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.cart = append(s.cart, models.CartItem{Product: product, Quantity: quantity})
	}
	s.persist(storage.KeyCart, s.cart)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	s.cart = kept
	s.persist(storage.KeyCart, s.cart)
	s.mu.Unlock()
	s.notify()
}

// UpdateCartQuantity sets the line quantity as given. Clamping to a
// sensible minimum is the caller's job; the store accepts any integer.
func (s *Store) UpdateCartQuantity(productID string, quantity int) {
	s.mu.Lock()
	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity = quantity
		}
	}
	s.persist(storage.KeyCart, s.cart)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = []models.CartItem{}
	s.persist(storage.KeyCart, s.cart)
	s.mu.Unlock()
	s.notify()
}

// --- wishlist ---

// ToggleWishlist adds the product when absent and removes it when
// present. Each call flips state; two calls restore the starting set.
func (s *Store) ToggleWishlist(product models.Product) {
	s.mu.Lock()
	removed := false
	kept := s.wishlist[:0]
	for _, p := range s.wishlist {
		if p.ID == product.ID {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	s.wishlist = kept
	if !removed {
		s.wishlist = append(s.wishlist, product)
	}
	s.persist(storage.KeyWishlist, s.wishlist)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) InWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.wishlist {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// --- orders and submissions ---

// AddOrder prepends: the orders list stays newest-first.
func (s *Store) AddOrder(order models.Order) {
	s.mu.Lock()
	s.orders = append([]models.Order{order}, s.orders...)
	s.persist(storage.KeyOrders, s.orders)
	s.mu.Unlock()
	s.notify()
}

// AddSubmission records a contact or newsletter form, newest-first,
// with a timestamp-derived id.
func (s *Store) AddSubmission(kind models.SubmissionType, data map[string]string) models.FormSubmission {
	sub := models.FormSubmission{
		ID:   strconv.FormatInt(time.Now().UnixMilli(), 10),
		Type: kind,
		Data: data,
		Date: helpers.NowISO(),
	}
	s.mu.Lock()
	s.submissions = append([]models.FormSubmission{sub}, s.submissions...)
	s.persist(storage.KeySubmissions, s.submissions)
	s.mu.Unlock()
	s.notify()
	return sub
}

// --- replace-or-transform setters ---
//
// These perform no field validation. Slug derivation, image cleanup
// and required-field checks belong to the caller, done just before the
// call — the back-office handlers do exactly that.

func (s *Store) SetProducts(products []models.Product) {
	s.mu.Lock()
	s.products = products
	s.persist(storage.KeyProducts, s.products)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) UpdateProducts(transform func([]models.Product) []models.Product) {
	s.mu.Lock()
	s.products = transform(s.products)
	s.persist(storage.KeyProducts, s.products)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) SetCategories(categories []models.Category) {
	s.mu.Lock()
	s.categories = categories
	s.persist(storage.KeyCategories, s.categories)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) UpdateCategories(transform func([]models.Category) []models.Category) {
	s.mu.Lock()
	s.categories = transform(s.categories)
	s.persist(storage.KeyCategories, s.categories)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) SetBlogPosts(posts []models.BlogPost) {
	s.mu.Lock()
	s.blogPosts = posts
	s.persist(storage.KeyBlogPosts, s.blogPosts)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) UpdateBlogPosts(transform func([]models.BlogPost) []models.BlogPost) {
	s.mu.Lock()
	s.blogPosts = transform(s.blogPosts)
	s.persist(storage.KeyBlogPosts, s.blogPosts)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) SetSettings(settings models.AppSettings) {
	s.mu.Lock()
	s.settings = settings
	s.persist(storage.KeySettings, s.settings)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) UpdateSettings(transform func(models.AppSettings) models.AppSettings) {
	s.mu.Lock()
	s.settings = transform(s.settings)
	s.persist(storage.KeySettings, s.settings)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) UpdateOrders(transform func([]models.Order) []models.Order) {
	s.mu.Lock()
	s.orders = transform(s.orders)
	s.persist(storage.KeyOrders, s.orders)
	s.mu.Unlock()
	s.notify()
}

// --- shopper session ---

// Login scans the user list for an exact email and credential match.
// No rate limiting; a miss just reports false.
func (s *Store) Login(email, password string) (*models.User, bool) {
	s.mu.Lock()
	var match *models.User
	for i := range s.users {
		if s.users[i].Email == email && s.comparer.Compare(s.users[i].Password, password) {
			u := s.users[i]
			match = &u
			break
		}
	}
	if match == nil {
		s.mu.Unlock()
		return nil, false
	}
	s.currentUser = match
	s.persist(storage.KeyCurrentUser, s.currentUser)
	s.mu.Unlock()
	s.notify()
	u := *match
	return &u, true
}

// Register appends unconditionally — duplicate emails are accepted,
// the earlier account simply wins at login — and signs the new user in.
func (s *Store) Register(name, email, password string) models.User {
	user := models.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Password:  password,
		CreatedAt: helpers.NowISO(),
	}
	s.mu.Lock()
	s.users = append(s.users, user)
	u := user
	s.currentUser = &u
	s.persist(storage.KeyUsers, s.users)
	s.persist(storage.KeyCurrentUser, s.currentUser)
	s.mu.Unlock()
	s.notify()
	return user
}

func (s *Store) Logout() {
	s.mu.Lock()
	s.currentUser = nil
	s.persist(storage.KeyCurrentUser, s.currentUser)
	s.mu.Unlock()
	s.notify()
}

// AddReview appends a review to the product, oldest-first. Without a
// signed-in shopper it does nothing.
func (s *Store) AddReview(productID string, rating int, comment string) {
	s.mu.Lock()
	if s.currentUser == nil {
		s.mu.Unlock()
		return
	}
	review := models.Review{
		ID:       uuid.New().String(),
		UserID:   s.currentUser.ID,
		UserName: s.currentUser.Name,
		Rating:   rating,
		Comment:  comment,
		Date:     helpers.NowISO(),
	}
	for i := range s.products {
		if s.products[i].ID == productID {
			s.products[i].Reviews = append(s.products[i].Reviews, review)
		}
	}
	s.persist(storage.KeyProducts, s.products)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) SetLanguage(lang string) {
	s.mu.Lock()
	s.language = lang
	if err := s.kv.Set(storage.KeyLanguage, lang); err != nil {
		log.Printf("Store: failed to persist language: %v", err)
	}
	s.mu.Unlock()
	s.notify()
}
