// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zonecache memoizes time zone lookups. Loading a location reads and
// parses tzdata on every call to [time.LoadLocation], which is wasteful for
// calendars that are rebuilt from a zone name over and over.
package zonecache

import (
	"sync"
	"time"
)

// DefaultSize is the default number of zones retained by a Cache.
const DefaultSize = 64

// Cache is a random-replacement cache of loaded locations, keyed by zone
// name. Failed lookups are cached as well.
//
// Its zero value is safe to use. It is safe for concurrent use.
type Cache struct {
	// MaxSize is the maximum number of zones retained. If it is zero,
	// DefaultSize is used.
	//
	// MaxSize is not safe to mutate concurrently with calls to Load.
	MaxSize int

	// load is used instead of time.LoadLocation, if set.
	load func(string) (*time.Location, error)

	mu sync.RWMutex
	m  map[string]entry
}

type entry struct {
	loc *time.Location
	err error
}

// New returns a Cache that uses load to resolve names missing from it.
func New(load func(string) (*time.Location, error)) *Cache {
	return &Cache{load: load}
}

// Load returns the location with the given name, loading it on first use.
func (c *Cache) Load(name string) (*time.Location, error) {
	c.mu.RLock()
	if e, ok := c.m[name]; ok {
		c.mu.RUnlock()
		return e.loc, e.err
	}
	c.mu.RUnlock()

	load := c.load
	if load == nil {
		load = time.LoadLocation
	}
	loc, err := load(name)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.m[name]; ok {
		// another goroutine filled the cache in the meantime
		return e.loc, e.err
	}
	if c.m == nil {
		c.m = make(map[string]entry)
	}
	c.m[name] = entry{loc, err}
	for k := range c.m {
		if !c.fullRLocked() {
			break
		}
		delete(c.m, k)
	}
	return loc, err
}

// Len returns the number of zones currently cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// fullRLocked returns whether c is over capacity. c.mu must be held for
// reading when calling it.
func (c *Cache) fullRLocked() bool {
	m := c.MaxSize
	if m == 0 {
		m = DefaultSize
	}
	return len(c.m) > m
}

// Flush removes all zones from the cache.
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
}
