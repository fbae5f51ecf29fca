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

package relay

import (
	"context"
	"testing"
	"time"
)

func TestRelayDeliversAndCompletes(t *testing.T) {
	mgr := New(Config{RequestTimeout: time.Minute, ChannelExpiry: time.Minute})
	mailbox := mgr.RegisterChannel("g1", "client-1")

	go func() {
		req := <-mailbox
		mgr.Complete(Response{Nonce: req.Nonce, Payload: []byte("ok")})
	}()

	resp, err := mgr.Relay(context.Background(), "g1", "client-1", Request{Code: 1})
	if err != nil {
		t.Fatalf("Relay: %v", err)
	}
	if string(resp.Payload) != "ok" {
		t.Fatalf("expected payload %q, got %q", "ok", resp.Payload)
	}
}

func TestRelayUnknownChannel(t *testing.T) {
	mgr := New(Config{})
	_, err := mgr.Relay(context.Background(), "missing-group", "missing-client", Request{})
	if err != ErrChannelNotFound {
		t.Fatalf("expected ErrChannelNotFound, got %v", err)
	}
}

func TestSweepTimesOutStaleRequest(t *testing.T) {
	mgr := New(Config{RequestTimeout: 10 * time.Millisecond, ChannelExpiry: time.Minute, SweepInterval: 5 * time.Millisecond})
	mgr.RegisterChannel("g1", "client-1")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	mgr.Start(ctx)
	defer mgr.Shutdown()

	// Drain the mailbox so Relay's send doesn't block, but never Complete;
	// the sweeper must synthesize the timeout.
	mailbox := mgr.RegisterChannel("g1", "client-1")
	go func() {
		<-mailbox
	}()

	_, err := mgr.Relay(context.Background(), "g1", "client-1", Request{})
	if err == nil {
		t.Fatalf("expected timeout error")
	}
}

func TestSweepExpiresIdleChannel(t *testing.T) {
	mgr := New(Config{ChannelExpiry: 5 * time.Millisecond, SweepInterval: 5 * time.Millisecond})
	mgr.RegisterChannel("g1", "client-1")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	mgr.Start(ctx)
	defer mgr.Shutdown()

	time.Sleep(50 * time.Millisecond)
	_, err := mgr.Relay(context.Background(), "g1", "client-1", Request{})
	if err != ErrChannelNotFound {
		t.Fatalf("expected channel to have expired, got %v", err)
	}
}
