// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

// content.go defines the bilingual content entities the public site
// renders: portfolio projects, services, testimonials, page banners,
// gallery images, homepage slides, and per-page asset slots. Every
// user-facing text field has an Arabic twin.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio entry.
type Project struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	TitleAr       string     `json:"titleAr"`
	Description   string     `json:"description"`
	DescriptionAr string     `json:"descriptionAr"`
	Image         string     `json:"image"`
	GalleryImages StringList `json:"galleryImages"`
	Tags          StringList `json:"tags"`
	TagsAr        StringList `json:"tagsAr"`
	Category      string     `json:"category"`
	CategoryAr    string     `json:"categoryAr"`
	Year          string     `json:"year"`
	Link          string     `json:"link"`
	Featured      bool       `json:"featured"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Service is a landscaping service offering.
type Service struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	TitleAr       string     `json:"titleAr"`
	Description   string     `json:"description"`
	DescriptionAr string     `json:"descriptionAr"`
	Icon          string     `json:"icon"`
	Image         string     `json:"image"`
	Features      StringList `json:"features"`
	FeaturesAr    StringList `json:"featuresAr"`
	Featured      bool       `json:"featured"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Testimonial is a customer quote; only approved ones appear publicly.
type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	NameAr    string    `json:"nameAr"`
	Role      string    `json:"role"`
	RoleAr    string    `json:"roleAr"`
	Quote     string    `json:"quote"`
	QuoteAr   string    `json:"quoteAr"`
	Rating    int       `json:"rating"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Banner is the hero image of a static page. One banner per page.
type Banner struct {
	ID        uuid.UUID `json:"id"`
	Page      string    `json:"page"` // "home", "contact", "about"
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GalleryImage is one entry of the portfolio gallery strip.
type GalleryImage struct {
	ID        uuid.UUID `json:"id"`
	Image     string    `json:"image"`
	Alt       string    `json:"alt"`
	AltAr     string    `json:"altAr"`
	SortOrder int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HomeSlide is one slide of the homepage hero carousel.
type HomeSlide struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	TitleAr    string    `json:"titleAr"`
	Subtitle   string    `json:"subtitle"`
	SubtitleAr string    `json:"subtitleAr"`
	Image      string    `json:"image"`
	SortOrder  int       `json:"order"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PageAsset is an editable image/text slot addressed by (page, section, key),
// e.g. ("about", "team", "member-1").
type PageAsset struct {
	ID        uuid.UUID `json:"id"`
	Page      string    `json:"page"`
	Section   string    `json:"section"`
	Key       string    `json:"key"`
	ImageURL  string    `json:"imageUrl"`
	Alt       string    `json:"alt"`
	AltAr     string    `json:"altAr"`
	Text      string    `json:"text"`
	TextAr    string    `json:"textAr"`
	SortOrder int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InternalLink maps a keyword to a site URL. Enabled links are injected
// into blog HTML when the post opts into automatic internal linking.
type InternalLink struct {
	ID        uuid.UUID `json:"id"`
	Keyword   string    `json:"keyword"`
	URL       string    `json:"url"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
