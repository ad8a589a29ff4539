// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package slug

import (
	"fmt"

	"github.com/google/uuid"
)

// ExistsFunc reports whether a blog other than the excluded one already
// owns the given slug.
type ExistsFunc func(slug string, exclude uuid.UUID) (bool, error)

// ResolveUnique appends an incrementing numeric suffix to candidate until
// exists reports no collision, then returns the collision-free slug.
// "garden-tips" becomes "garden-tips-1", "garden-tips-2", and so on.
//
// The check is advisory: two concurrent creations can still race past it,
// which is why the slug column carries a unique index and the write site
// retries on a uniqueness violation. See store.BlogStore.Create.
func ResolveUnique(candidate string, id uuid.UUID, exists ExistsFunc) (string, error) {
	unique := candidate
	for counter := 1; ; counter++ {
		taken, err := exists(unique, id)
		if err != nil {
			return "", fmt.Errorf("slug collision check: %w", err)
		}
		if !taken {
			return unique, nil
		}
		unique = fmt.Sprintf("%s-%d", candidate, counter)
	}
}
