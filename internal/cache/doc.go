// Package cache provides the generic LRU cache used by engines to keep
// parsed animation models keyed by their identifier.
//
//	models := cache.NewLRU[string, *composition](10)
//	models.Put("loading", comp)
//	comp, ok := models.Get("loading")
//
// # Thread Safety
//
// LRU is safe for concurrent use and must not be copied after creation.
package cache
