package models

// User is a shopper account. The password is stored as entered; the
// comparison itself goes through auth.Comparer so a hashed scheme can
// be swapped in without touching call sites.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CreatedAt string `json:"createdAt"`
}
