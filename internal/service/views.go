package service

import "time"

// viewCacheTTL caps how long a cached admin listing may be served. Every
// successful mutation deletes the affected keys, so the TTL only matters
// when an invalidation is lost.
const viewCacheTTL = 5 * time.Minute

func storeViewKey(adminID string) string       { return "views:stores:" + adminID }
func categoryViewKey(adminID string) string    { return "views:categories:" + adminID }
func subcategoryViewKey(adminID string) string { return "views:subcategories:" + adminID }
func productViewKey(adminID string) string     { return "views:products:" + adminID }
