package storage

// KV is the persistent blob store the domain state store writes
// through. Get returns the raw value and whether the key exists;
// absence is not an error. Both calls are synchronous: when Set
// returns, the value is durable for the backend in use.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Collection keys. Structured collections are stored as JSON; the
// language key holds a plain string.
const (
	KeyProducts    = "products"
	KeyCategories  = "categories"
	KeyBlogPosts   = "blogPosts"
	KeySettings    = "settings"
	KeyCart        = "cart"
	KeyWishlist    = "wishlist"
	KeyOrders      = "orders"
	KeySubmissions = "submissions"
	KeyLanguage    = "language"
	KeyUsers       = "site_users"
	KeyCurrentUser = "current_site_user"
)
