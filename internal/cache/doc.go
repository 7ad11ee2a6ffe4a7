// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, []int](128)
//	c.Set("key", []int{1, 2})
//	v, ok := c.Get("key")
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
