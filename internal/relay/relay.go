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

// Package relay carries broker-initiated requests (check-transaction-state,
// get-consumer-running-info, consume-message-directly) to the gRPC client
// that owns the relevant producer/consumer group, and returns its response
// to the broker.
//
// This is deliberately not modeled as a broker-facing socket/channel
// abstraction, there is no connection-oriented pipeline to sit inside here,
// just what such a channel actually needs: a nonce keyed to a one-shot
// response future, plus a mailbox per connected client the gRPC PollCommand
// stream drains.
package relay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrChannelNotFound indicates no client mailbox is registered for the
// requested (group, clientID).
var ErrChannelNotFound = errors.New("relay: channel not found")

// ErrRequestTimedOut indicates the sweeper completed the request with a
// synthetic SYSTEM_BUSY response because no client answered in time.
var ErrRequestTimedOut = errors.New("relay: request timed out")

// State is a connected client's relay-channel lifecycle state.
type State int

const (
	StateActive State = iota
	StateExpired
	StateRemoved
)

// Request is a broker-initiated call relayed to a client.
type Request struct {
	Nonce   string
	Code    int32
	Payload []byte
}

// Response is what the client answers back with.
type Response struct {
	Nonce   string
	Payload []byte
	Err     error
}

type pendingRequest struct {
	response chan Response
	created  time.Time
}

// channelEntry tracks one connected client's outbound mailbox and activity.
type channelEntry struct {
	mailbox    chan Request
	lastActive time.Time
	state      State
}

// Manager is the relay collaborator: it keeps one channel per (group,
// clientID) pair, a mailbox for outbound broker requests plus the
// bookkeeping needed to expire it after inactivity, and the table of
// pending requests awaiting a client's answer.
type Manager struct {
	mu       sync.Mutex
	pending  map[string]*pendingRequest
	channels map[string]*channelEntry

	requestTimeout time.Duration
	channelExpiry  time.Duration
	sweepInterval  time.Duration

	stop chan struct{}
	done chan struct{}
}

// Config holds the configured relay request timeout and channel expiry.
type Config struct {
	RequestTimeout time.Duration
	ChannelExpiry  time.Duration
	SweepInterval  time.Duration
}

// New builds a relay Manager.
func New(cfg Config) *Manager {
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = 10 * time.Second
	}
	return &Manager{
		pending:        make(map[string]*pendingRequest),
		channels:       make(map[string]*channelEntry),
		requestTimeout: cfg.RequestTimeout,
		channelExpiry:  cfg.ChannelExpiry,
		sweepInterval:  cfg.SweepInterval,
	}
}

func channelKey(group, clientID string) string {
	return group + "\x00" + clientID
}

// RegisterChannel opens (or refreshes) the mailbox for (group, clientID).
// Returns the mailbox the owning gRPC stream should drain.
func (m *Manager) RegisterChannel(group, clientID string) <-chan Request {
	key := channelKey(group, clientID)
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.channels[key]
	if !ok {
		entry = &channelEntry{mailbox: make(chan Request, 64)}
		m.channels[key] = entry
	}
	entry.lastActive = time.Now()
	entry.state = StateActive
	return entry.mailbox
}

// Touch refreshes a channel's last-active time, e.g. on every PollCommand
// iteration, so an actively-polling client is never swept as idle.
func (m *Manager) Touch(group, clientID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if entry, ok := m.channels[channelKey(group, clientID)]; ok {
		entry.lastActive = time.Now()
	}
}

// RemoveChannel unregisters (group, clientID), e.g. on
// NotifyClientTermination.
func (m *Manager) RemoveChannel(group, clientID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.channels, channelKey(group, clientID))
}

// Relay sends req to the (group, clientID) mailbox and blocks until the
// client answers via Complete, the sweeper times it out, or ctx is
// cancelled.
func (m *Manager) Relay(ctx context.Context, group, clientID string, req Request) (Response, error) {
	if req.Nonce == "" {
		req.Nonce = uuid.NewString()
	}
	m.mu.Lock()
	entry, ok := m.channels[channelKey(group, clientID)]
	if !ok {
		m.mu.Unlock()
		return Response{}, ErrChannelNotFound
	}
	pending := &pendingRequest{response: make(chan Response, 1), created: time.Now()}
	m.pending[req.Nonce] = pending
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.pending, req.Nonce)
		m.mu.Unlock()
	}()

	select {
	case entry.mailbox <- req:
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}

	select {
	case resp := <-pending.response:
		return resp, resp.Err
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}
}

// Complete delivers a client's answer for a pending nonce. Returns false if
// the nonce is unknown (already timed out, or never issued).
func (m *Manager) Complete(resp Response) bool {
	m.mu.Lock()
	pending, ok := m.pending[resp.Nonce]
	if ok {
		delete(m.pending, resp.Nonce)
	}
	m.mu.Unlock()
	if !ok {
		return false
	}
	pending.response <- resp
	return true
}

// Start launches the background sweeper that times out stale pending
// requests with a synthetic SYSTEM_BUSY response and expires idle channels.
func (m *Manager) Start(ctx context.Context) {
	m.stop = make(chan struct{})
	m.done = make(chan struct{})
	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-m.stop:
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}

func (m *Manager) sweep() {
	now := time.Now()
	m.mu.Lock()
	var stale []*pendingRequest
	for nonce, p := range m.pending {
		if m.requestTimeout > 0 && now.Sub(p.created) > m.requestTimeout {
			stale = append(stale, p)
			delete(m.pending, nonce)
		}
	}
	for key, entry := range m.channels {
		if m.channelExpiry > 0 && now.Sub(entry.lastActive) > m.channelExpiry {
			entry.state = StateExpired
			delete(m.channels, key)
		}
	}
	m.mu.Unlock()

	for _, p := range stale {
		p.response <- Response{Err: fmt.Errorf("%w: SYSTEM_BUSY", ErrRequestTimedOut)}
	}
}

// Shutdown stops the sweeper and waits for it to exit.
func (m *Manager) Shutdown() {
	if m.stop == nil {
		return
	}
	close(m.stop)
	<-m.done
}
