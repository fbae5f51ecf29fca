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

// Package nameserver resolves topic names to broker routes. It is an
// external name-service collaborator: the proxy reads it, never implements
// discovery or consensus itself.
package nameserver

import (
	"context"
	"errors"

	"github.com/novatechflow/rmqproxy/internal/model"
)

// ErrTopicNotFound indicates the name-service confirmed the topic is unknown.
var ErrTopicNotFound = errors.New("nameserver: topic not found")

// NameServer is the read-only lookup the proxy performs on a cache miss.
// TopicRouteCache is the only caller; every other component goes through it.
type NameServer interface {
	// LookupTopicRoute fetches the current route for topic, or
	// ErrTopicNotFound if the backend confirms it does not exist.
	LookupTopicRoute(ctx context.Context, topic string) (model.TopicRouteData, error)
}

// InMemory is a NameServer backed by a fixed, test-friendly map.
type InMemory struct {
	routes map[string]model.TopicRouteData
}

// NewInMemory builds a NameServer over a fixed route table.
func NewInMemory(routes map[string]model.TopicRouteData) *InMemory {
	copied := make(map[string]model.TopicRouteData, len(routes))
	for k, v := range routes {
		copied[k] = v
	}
	return &InMemory{routes: copied}
}

func (m *InMemory) LookupTopicRoute(ctx context.Context, topic string) (model.TopicRouteData, error) {
	select {
	case <-ctx.Done():
		return model.TopicRouteData{}, ctx.Err()
	default:
	}
	route, ok := m.routes[topic]
	if !ok {
		return model.TopicRouteData{}, ErrTopicNotFound
	}
	return route, nil
}
