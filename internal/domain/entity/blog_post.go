package entity

import "time"

// BlogPost artículo del blog corporativo.
type BlogPost struct {
	ID          string
	Slug        string
	Title       string
	Excerpt     string
	Content     string
	CoverURL    string
	Author      string
	PublishedAt time.Time
	Tags        []string
	IsPublished bool
}

// HasTag indica si el artículo lleva la etiqueta (comparación exacta).
func (b *BlogPost) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
