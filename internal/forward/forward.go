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

// Package forward maintains the pooled connections the proxy forwards
// broker requests over. Each role keeps its own pool of
// BrokerClients keyed by broker address, so a slow transaction-producer
// check never queues behind a consumer's pop call.
package forward

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/singleflight"

	"github.com/novatechflow/rmqproxy/internal/model"
)

// Role identifies one of the five forward-client roles the proxy keeps
// separate pools for, so load on one never starves the others.
type Role int

const (
	RoleDefault Role = iota
	RoleProducer
	RoleReadConsumer
	RoleWriteConsumer
	RoleTransactionProducer
)

func (r Role) String() string {
	switch r {
	case RoleDefault:
		return "default"
	case RoleProducer:
		return "producer"
	case RoleReadConsumer:
		return "read-consumer"
	case RoleWriteConsumer:
		return "write-consumer"
	case RoleTransactionProducer:
		return "transaction-producer"
	default:
		return "unknown"
	}
}

// BrokerClient is the set of broker-facing RPCs every role's client exposes.
// A proxymode implementation (wire, in-process) and a test fake both satisfy
// this so the engines never depend on the transport.
type BrokerClient interface {
	SendAsync(ctx context.Context, addr string, req model.SendMessageHeader) (model.SendResult, error)
	PopAsync(ctx context.Context, addr string, consumerGroup, topic string, mq model.SelectableMessageQueue, invisibleTime int64, maxMessages int32) (model.PopResult, error)
	AckAsync(ctx context.Context, addr string, handle model.ReceiptHandle) error
	ChangeInvisibleTimeAsync(ctx context.Context, addr string, handle model.ReceiptHandle, invisibleTime int64) error
	HeartbeatAsync(ctx context.Context, addr string, clientID string, groups []string) error
	PullAsync(ctx context.Context, addr string, mq model.SelectableMessageQueue, offset int64, maxMessages int32) ([]model.ReceiptHandle, error)
	SearchOffsetAsync(ctx context.Context, addr string, mq model.SelectableMessageQueue, timestamp int64) (int64, error)
	GetMaxOffsetAsync(ctx context.Context, addr string, mq model.SelectableMessageQueue) (int64, error)
	SendMsgBackAsync(ctx context.Context, addr string, handle model.ReceiptHandle, delayLevel int32) error
	EndTransactionAsync(ctx context.Context, addr string, txID model.TransactionID, commit bool) error
}

// Dialer creates a new BrokerClient bound to addr. Supplied by the active
// proxymode (wire for CLUSTER, in-process for LOCAL).
type Dialer func(ctx context.Context, addr string) (BrokerClient, error)

type pooledClient struct {
	client BrokerClient
	closer func() error
}

// Pool holds one BrokerClient per (role, broker address), creating them
// lazily and collapsing concurrent creation requests for the same address
// via singleflight, reconnecting on an exponential backoff when dialing
// fails.
type Pool struct {
	role   Role
	dial   Dialer
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[string]*pooledClient
	group   singleflight.Group

	started bool
}

// NewPool builds an empty pool for role. Clients are created on first use
// via Get, not at construction.
func NewPool(role Role, dial Dialer, logger *slog.Logger) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{
		role:    role,
		dial:    dial,
		logger:  logger,
		clients: make(map[string]*pooledClient),
	}
}

// Get returns the BrokerClient for addr, creating and connecting it (with
// retry) if this is the first request for that address in this role's pool.
func (p *Pool) Get(ctx context.Context, addr string) (BrokerClient, error) {
	p.mu.RLock()
	if c, ok := p.clients[addr]; ok {
		p.mu.RUnlock()
		return c.client, nil
	}
	p.mu.RUnlock()

	v, err, _ := p.group.Do(addr, func() (interface{}, error) {
		p.mu.RLock()
		if c, ok := p.clients[addr]; ok {
			p.mu.RUnlock()
			return c.client, nil
		}
		p.mu.RUnlock()

		client, err := p.connectWithRetry(ctx, addr)
		if err != nil {
			return nil, err
		}
		p.mu.Lock()
		p.clients[addr] = &pooledClient{client: client}
		p.mu.Unlock()
		return client, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(BrokerClient), nil
}

func (p *Pool) connectWithRetry(ctx context.Context, addr string) (BrokerClient, error) {
	bo := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	var client BrokerClient
	op := func() error {
		c, err := p.dial(ctx, addr)
		if err != nil {
			p.logger.Warn("forward client dial failed, retrying", "role", p.role, "addr", addr, "error", err)
			return err
		}
		client = c
		return nil
	}
	if err := backoff.Retry(op, bo); err != nil {
		return nil, fmt.Errorf("forward: dial %s (%s): %w", addr, p.role, err)
	}
	return client, nil
}

// Evict drops addr from the pool, e.g. after a send reports the broker is
// unreachable, so the next Get reconnects rather than reusing a dead client.
func (p *Pool) Evict(addr string) {
	p.mu.Lock()
	delete(p.clients, addr)
	p.mu.Unlock()
}

// Shutdown runs the closer of every held client that has one and empties
// the pool. Get stores its clients without a closer, so those are dropped
// from the pool but not closed.
func (p *Pool) Shutdown() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var firstErr error
	for addr, c := range p.clients {
		if c.closer == nil {
			continue
		}
		if err := c.closer(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("forward: close %s (%s): %w", addr, p.role, err)
		}
	}
	p.clients = make(map[string]*pooledClient)
	return firstErr
}

// Manager owns the five role pools and is the single object engines depend
// on to reach a broker.
type Manager struct {
	pools map[Role]*Pool
}

// NewManager builds a Manager with one pool per role, all sharing dial.
func NewManager(dial Dialer, logger *slog.Logger) *Manager {
	m := &Manager{pools: make(map[Role]*Pool, 5)}
	for _, role := range []Role{RoleDefault, RoleProducer, RoleReadConsumer, RoleWriteConsumer, RoleTransactionProducer} {
		m.pools[role] = NewPool(role, dial, logger)
	}
	return m
}

// Pool returns the pool for role.
func (m *Manager) Pool(role Role) *Pool {
	return m.pools[role]
}

// ShutdownAll idempotently shuts down every role's pool in reverse
// construction order, stopping at the first error only after attempting the
// rest.
func (m *Manager) ShutdownAll() error {
	order := []Role{RoleTransactionProducer, RoleWriteConsumer, RoleReadConsumer, RoleProducer, RoleDefault}
	var firstErr error
	for _, role := range order {
		pool, ok := m.pools[role]
		if !ok {
			continue
		}
		if err := pool.Shutdown(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
