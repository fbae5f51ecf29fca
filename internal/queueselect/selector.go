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

package queueselect

import (
	"errors"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/novatechflow/rmqproxy/internal/model"
)

// ErrNoWriteableQueue is returned when a topic route has no queue with write
// permission.
var ErrNoWriteableQueue = errors.New("queueselect: no writeable queue for topic")

// ErrNoReadableQueue is returned when a topic route has no queue with read
// permission.
var ErrNoReadableQueue = errors.New("queueselect: no readable queue for topic")

type cursorKey struct {
	scope string
	topic string
}

// WriteSelector rotates over writable queues with a monotonic counter scoped
// to (topic, producerGroup), skipping queues without write permission. The
// first publish for a scope returns a randomized start to avoid synchronized
// stampedes across proxy instances.
type WriteSelector struct {
	mu      sync.Mutex
	cursors map[cursorKey]*uint64
}

func NewWriteSelector() *WriteSelector {
	return &WriteSelector{cursors: make(map[cursorKey]*uint64)}
}

// Select picks the next writable queue for (topic, producerGroup).
func (s *WriteSelector) Select(route model.TopicRouteData, topic, producerGroup string) (model.SelectableMessageQueue, error) {
	queues := WritableQueues(route)
	if len(queues) == 0 {
		return model.SelectableMessageQueue{}, ErrNoWriteableQueue
	}
	cursor := s.cursorFor(cursorKey{scope: producerGroup, topic: topic}, len(queues))
	idx := atomic.AddUint64(cursor, 1) % uint64(len(queues))
	return queues[idx], nil
}

func (s *WriteSelector) cursorFor(key cursorKey, n int) *uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.cursors[key]; ok {
		return c
	}
	start := uint64(0)
	if n > 0 {
		start = uint64(rand.Intn(n))
	}
	c := new(uint64)
	*c = start
	s.cursors[key] = c
	return c
}

// ReadSelector returns the next readable queue for (consumerGroup, topic) and
// advances its cursor.
type ReadSelector struct {
	mu      sync.Mutex
	cursors map[cursorKey]*uint64
}

func NewReadSelector() *ReadSelector {
	return &ReadSelector{cursors: make(map[cursorKey]*uint64)}
}

// Select picks the next readable queue for (consumerGroup, topic).
func (s *ReadSelector) Select(route model.TopicRouteData, consumerGroup, topic string) (model.SelectableMessageQueue, error) {
	queues := ReadableQueues(route)
	if len(queues) == 0 {
		return model.SelectableMessageQueue{}, ErrNoReadableQueue
	}
	cursor := s.cursorFor(cursorKey{scope: consumerGroup, topic: topic}, len(queues))
	idx := atomic.AddUint64(cursor, 1) % uint64(len(queues))
	return queues[idx], nil
}

func (s *ReadSelector) cursorFor(key cursorKey, n int) *uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.cursors[key]; ok {
		return c
	}
	start := uint64(0)
	if n > 0 {
		start = uint64(rand.Intn(n))
	}
	c := new(uint64)
	*c = start
	s.cursors[key] = c
	return c
}

// SelectAssignment returns the full readable-broker set for a
// QueryAssignment call, mapped to a placeholder queueId = -1, the broker
// load-balances at pop time. No cursor state is needed.
func SelectAssignment(route model.TopicRouteData) ([]model.SelectableMessageQueue, error) {
	brokers := ReadableBrokerSet(route)
	if len(brokers) == 0 {
		return nil, ErrNoReadableQueue
	}
	return brokers, nil
}
