package domain

import "time"

type CareerAdvice struct {
	ID          int32      `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Body        string     `json:"body"`
	Category    string     `json:"category"`
	ImageURL    string     `json:"image_url"`
	AuthorID    int32      `json:"author_id"`
	Published   bool       `json:"published"`
	PublishedOn *time.Time `json:"published_on,omitempty"`
	CreatedOn   time.Time  `json:"created_on"`
	UpdatedOn   time.Time  `json:"updated_on"`
}
