// Copyright 2025 Alexander Alten (novatechflow), NovaTechflow (novatechflow.com).
// This project is supported and financed by Scalytics, Inc. (www.scalytics.io).
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package routecache fronts a nameserver.NameServer with a TTL cache that
// collapses concurrent misses for the same topic into a single upstream
// lookup. This is the hot path every send/receive/assignment call
// goes through, so a cold cache under concurrent load must never fan out
// more than one request per topic.
package routecache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/novatechflow/rmqproxy/internal/model"
	"github.com/novatechflow/rmqproxy/internal/nameserver"
)

// entry is a cached route, positive or negative.
type entry struct {
	route     model.TopicRouteData
	notFound  bool
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// TopicRouteCache caches nameserver lookups with a configurable TTL,
// backed by singleflight instead of a bare mutex, since a stampede of
// concurrent route lookups for the same topic is the steady-state case here
// (every producer/consumer resolves the topic's route before every send
// or pop), not an exception.
type TopicRouteCache struct {
	ns  nameserver.NameServer
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]entry

	group singleflight.Group
}

// New builds a TopicRouteCache with the given TTL.
func New(ns nameserver.NameServer, ttl time.Duration) *TopicRouteCache {
	return &TopicRouteCache{
		ns:      ns,
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// GetRoute returns the route for topic, serving from cache when fresh and
// otherwise collapsing concurrent callers into one nameserver lookup.
func (c *TopicRouteCache) GetRoute(ctx context.Context, topic string) (model.TopicRouteData, error) {
	if cached, ok := c.lookup(topic); ok {
		if cached.notFound {
			return model.TopicRouteData{}, nameserver.ErrTopicNotFound
		}
		return cached.route, nil
	}

	v, err, _ := c.group.Do(topic, func() (interface{}, error) {
		route, err := c.ns.LookupTopicRoute(ctx, topic)
		now := time.Now()
		if err != nil {
			if err == nameserver.ErrTopicNotFound {
				c.store(topic, entry{notFound: true, expiresAt: now.Add(c.ttl)})
				return model.TopicRouteData{}, nameserver.ErrTopicNotFound
			}
			return model.TopicRouteData{}, err
		}
		c.store(topic, entry{route: route, expiresAt: now.Add(c.ttl)})
		return route, nil
	})
	if err != nil {
		return model.TopicRouteData{}, err
	}
	return v.(model.TopicRouteData), nil
}

// Invalidate drops any cached entry for topic, forcing the next GetRoute to
// hit the nameserver regardless of TTL. producer.Engine.Send calls it when
// dialing the broker its route selected fails.
func (c *TopicRouteCache) Invalidate(topic string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, topic)
}

func (c *TopicRouteCache) lookup(topic string) (entry, bool) {
	c.mu.RLock()
	e, ok := c.entries[topic]
	c.mu.RUnlock()
	if !ok || e.expired(time.Now()) {
		return entry{}, false
	}
	return e, true
}

func (c *TopicRouteCache) store(topic string, e entry) {
	c.mu.Lock()
	c.entries[topic] = e
	c.mu.Unlock()
}
