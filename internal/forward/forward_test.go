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

package forward

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/novatechflow/rmqproxy/internal/model"
)

type fakeClient struct{ addr string }

func (fakeClient) SendAsync(ctx context.Context, addr string, req model.SendMessageHeader) (model.SendResult, error) {
	return model.SendResult{}, nil
}
func (fakeClient) PopAsync(ctx context.Context, addr, group, topic string, mq model.SelectableMessageQueue, invisibleTime int64, max int32) (model.PopResult, error) {
	return model.PopResult{}, nil
}
func (fakeClient) AckAsync(ctx context.Context, addr string, h model.ReceiptHandle) error { return nil }
func (fakeClient) ChangeInvisibleTimeAsync(ctx context.Context, addr string, h model.ReceiptHandle, invisibleTime int64) error {
	return nil
}
func (fakeClient) EndTransactionAsync(ctx context.Context, addr string, txID model.TransactionID, commit bool) error {
	return nil
}
func (fakeClient) HeartbeatAsync(ctx context.Context, addr, clientID string, groups []string) error {
	return nil
}
func (fakeClient) PullAsync(ctx context.Context, addr string, mq model.SelectableMessageQueue, offset int64, max int32) ([]model.ReceiptHandle, error) {
	return nil, nil
}
func (fakeClient) SearchOffsetAsync(ctx context.Context, addr string, mq model.SelectableMessageQueue, ts int64) (int64, error) {
	return 0, nil
}
func (fakeClient) GetMaxOffsetAsync(ctx context.Context, addr string, mq model.SelectableMessageQueue) (int64, error) {
	return 0, nil
}
func (fakeClient) SendMsgBackAsync(ctx context.Context, addr string, h model.ReceiptHandle, delayLevel int32) error {
	return nil
}

func TestPoolGetDialsOncePerAddr(t *testing.T) {
	var dials atomic.Int64
	dial := func(ctx context.Context, addr string) (BrokerClient, error) {
		dials.Add(1)
		return fakeClient{addr: addr}, nil
	}
	pool := NewPool(RoleProducer, dial, nil)

	const n = 20
	done := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			if _, err := pool.Get(context.Background(), "broker-a:10911"); err != nil {
				t.Errorf("Get: %v", err)
			}
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}
	if got := dials.Load(); got != 1 {
		t.Fatalf("expected 1 dial, got %d", got)
	}
}

func TestPoolEvictForcesRedial(t *testing.T) {
	var dials atomic.Int64
	dial := func(ctx context.Context, addr string) (BrokerClient, error) {
		dials.Add(1)
		return fakeClient{addr: addr}, nil
	}
	pool := NewPool(RoleDefault, dial, nil)

	if _, err := pool.Get(context.Background(), "a"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	pool.Evict("a")
	if _, err := pool.Get(context.Background(), "a"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := dials.Load(); got != 2 {
		t.Fatalf("expected 2 dials after evict, got %d", got)
	}
}

func TestManagerShutdownAllIdempotent(t *testing.T) {
	dial := func(ctx context.Context, addr string) (BrokerClient, error) {
		return fakeClient{addr: addr}, nil
	}
	mgr := NewManager(dial, nil)
	if _, err := mgr.Pool(RoleProducer).Get(context.Background(), "a"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if err := mgr.ShutdownAll(); err != nil {
		t.Fatalf("ShutdownAll: %v", err)
	}
	if err := mgr.ShutdownAll(); err != nil {
		t.Fatalf("second ShutdownAll should be idempotent: %v", err)
	}
}
