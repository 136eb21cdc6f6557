package models

type BlogPost struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Date    string   `json:"date"`
	Image   string   `json:"image"`
	Slug    string   `json:"slug"`
	Tags    []string `json:"tags"`
}
