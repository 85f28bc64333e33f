package domain

import "time"

type Agent struct {
	Slug       string   `json:"slug"`
	Name       string   `json:"name"`
	Role       Text     `json:"role"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	OfficeSlug string   `json:"officeSlug"`
	Photo      string   `json:"photo,omitempty"`
	Languages  []string `json:"languages,omitempty"`
}

type Office struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type Article struct {
	Slug        string    `json:"slug"`
	Title       Text      `json:"title"`
	Excerpt     Text      `json:"excerpt"`
	Body        Text      `json:"body"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	Tags        []string  `json:"tags,omitempty"`
}
