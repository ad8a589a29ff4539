// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

// policy.go decides what Cache-Control header a content response gets.
// Admin-originated requests always get the no-store directive so the
// dashboard never shows stale data; public requests get a per-category
// freshness window with stale-while-revalidate at twice that.
package cache

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Category names a content collection sharing one caching policy. Values
// double as the API path segment under /api/.
type Category string

const (
	CategoryProjects     Category = "projects"
	CategoryServices     Category = "services"
	CategoryImages       Category = "images"
	CategoryBanners      Category = "banners"
	CategoryGallery      Category = "gallery"
	CategoryPageAssets   Category = "page-assets"
	CategoryHomeSlides   Category = "home-slides"
	CategoryTestimonials Category = "testimonials"
	CategoryBlogs        Category = "blogs"
)

// NoStore is the directive attached to every admin-classified response.
const NoStore = "no-store, no-cache, must-revalidate"

// defaultFreshness applies to categories without an explicit entry.
const defaultFreshness = 10 * time.Minute

// freshness is the public max-age per category. Testimonials churn faster
// than anything else; image-heavy collections barely change.
var freshness = map[Category]time.Duration{
	CategoryProjects:     10 * time.Minute,
	CategoryServices:     10 * time.Minute,
	CategoryImages:       30 * time.Minute,
	CategoryBanners:      30 * time.Minute,
	CategoryGallery:      30 * time.Minute,
	CategoryPageAssets:   10 * time.Minute,
	CategoryHomeSlides:   10 * time.Minute,
	CategoryTestimonials: 5 * time.Minute,
	CategoryBlogs:        10 * time.Minute,
}

// Freshness returns the public cache duration for a category.
func Freshness(cat Category) time.Duration {
	if d, ok := freshness[cat]; ok {
		return d
	}
	return defaultFreshness
}

// Path returns the API path prefix owned by a category, which is also the
// response-cache key prefix its invalidation clears.
func (c Category) Path() string {
	return "/api/" + string(c)
}

// ControlHeader returns the Cache-Control value for a response in the given
// category. Admin requests get NoStore regardless of category; public
// requests get "public, max-age=D, stale-while-revalidate=2D".
func ControlHeader(cat Category, isAdmin bool) string {
	if isAdmin {
		return NoStore
	}
	d := int(Freshness(cat).Seconds())
	return fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", d, 2*d)
}

// AdminMarkerHeader is the request header the dashboard sets so its API
// calls skip caching even when routed through public paths.
const AdminMarkerHeader = "X-Admin-Request"

// IsAdminRequest classifies a request as originating from the management
// interface. Any one of three signals is enough: the request path contains
// the admin area, the Referer points into it, or the explicit marker header
// is set. This only selects cache behavior — authorization is a separate
// shared-secret check in the middleware package.
func IsAdminRequest(r *http.Request) bool {
	if strings.Contains(r.URL.Path, "/admin") {
		return true
	}
	if strings.Contains(r.Header.Get("Referer"), "/admin") {
		return true
	}
	return r.Header.Get(AdminMarkerHeader) == "true"
}
