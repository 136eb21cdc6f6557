package models

// Review is appended to a product's review list and never edited or
// removed afterwards. UserID and UserName are snapshots of the author
// at submission time.
type Review struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}
