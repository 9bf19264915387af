package dto

import "time"

// BlogQuery búsqueda sobre título, extracto y autor; Tag es coincidencia exacta.
type BlogQuery struct {
	Search string
	Tag    string
}

// BlogPostCard artículo en listados.
type BlogPostCard struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	CoverURL    string    `json:"cover_url"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
	Tags        []string  `json:"tags"`
}

// BlogPostResponse artículo completo.
type BlogPostResponse struct {
	BlogPostCard
	Content string `json:"content"`
}

type BlogListResponse struct {
	Items          []BlogPostCard `json:"items"`
	Total          int            `json:"total"`
	FiltersApplied bool           `json:"filters_applied"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type BlogTagsResponse struct {
	Tags []TagCount `json:"tags"`
}
