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

package consumer

import (
	"context"
	"testing"
	"time"

	"github.com/novatechflow/rmqproxy/internal/forward"
	"github.com/novatechflow/rmqproxy/internal/model"
	"github.com/novatechflow/rmqproxy/internal/nameserver"
	"github.com/novatechflow/rmqproxy/internal/producer"
	"github.com/novatechflow/rmqproxy/internal/routecache"
)

type stubClient struct {
	popped     model.PopResult
	acked      []model.ReceiptHandle
	sentBck    []model.ReceiptHandle
	changedInv []model.ReceiptHandle
}

func (s *stubClient) SendAsync(ctx context.Context, addr string, req model.SendMessageHeader) (model.SendResult, error) {
	return model.SendResult{MsgID: "m1"}, nil
}
func (s *stubClient) PopAsync(ctx context.Context, addr, group, topic string, mq model.SelectableMessageQueue, invisibleTime int64, max int32) (model.PopResult, error) {
	return s.popped, nil
}
func (s *stubClient) AckAsync(ctx context.Context, addr string, h model.ReceiptHandle) error {
	s.acked = append(s.acked, h)
	return nil
}
func (s *stubClient) ChangeInvisibleTimeAsync(ctx context.Context, addr string, h model.ReceiptHandle, invisibleTime int64) error {
	s.changedInv = append(s.changedInv, h)
	return nil
}
func (s *stubClient) EndTransactionAsync(ctx context.Context, addr string, txID model.TransactionID, commit bool) error {
	return nil
}
func (*stubClient) HeartbeatAsync(ctx context.Context, addr, clientID string, groups []string) error {
	return nil
}
func (*stubClient) PullAsync(ctx context.Context, addr string, mq model.SelectableMessageQueue, offset int64, max int32) ([]model.ReceiptHandle, error) {
	return nil, nil
}
func (*stubClient) SearchOffsetAsync(ctx context.Context, addr string, mq model.SelectableMessageQueue, ts int64) (int64, error) {
	return 0, nil
}
func (*stubClient) GetMaxOffsetAsync(ctx context.Context, addr string, mq model.SelectableMessageQueue) (int64, error) {
	return 0, nil
}
func (s *stubClient) SendMsgBackAsync(ctx context.Context, addr string, h model.ReceiptHandle, delayLevel int32) error {
	s.sentBck = append(s.sentBck, h)
	return nil
}

func newTestEngine(t *testing.T, client *stubClient, maxDeliveries int32) *Engine {
	t.Helper()
	ns := nameserver.NewInMemory(map[string]model.TopicRouteData{
		"orders": {
			QueueDatas:  []model.QueueData{{BrokerName: "broker-a", ReadQueueNums: 1, WriteQueueNums: 1, Perm: model.PermRW}},
			BrokerDatas: []model.BrokerData{{Cluster: "c1", BrokerName: "broker-a", BrokerAddrs: map[int64]string{0: "127.0.0.1:10911"}}},
		},
	})
	routes := routecache.New(ns, time.Minute)
	fwd := forward.NewManager(func(ctx context.Context, addr string) (forward.BrokerClient, error) {
		return client, nil
	}, nil)
	prod := producer.New(routes, fwd)
	return New(routes, fwd, prod, maxDeliveries, 100*time.Millisecond)
}

func TestEngineReceiveIssuesReceiptHandles(t *testing.T) {
	client := &stubClient{popped: model.PopResult{
		StartOffsetInfo: "orders,0,5",
		MsgOffsetInfo:   "orders,0,5",
	}}
	e := newTestEngine(t, client, 3)

	handles, err := e.Receive(context.Background(), "g1", "orders", 30*time.Second, 10, 0, "")
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if len(handles) != 1 || handles[0].Topic != "orders" {
		t.Fatalf("got %+v", handles)
	}
}

func TestEngineReceiveFiltersByTag(t *testing.T) {
	client := &stubClient{popped: model.PopResult{
		StartOffsetInfo: "orders,0,5",
		MsgOffsetInfo:   "orders,0,5:6",
		TagInfo:         "orders,0,keep:drop",
	}}
	e := newTestEngine(t, client, 3)

	handles, err := e.Receive(context.Background(), "g1", "orders", 30*time.Second, 10, 0, "keep")
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if len(handles) != 1 || handles[0].Tag != "keep" {
		t.Fatalf("got %+v", handles)
	}
	if len(client.acked) != 1 {
		t.Fatalf("acked = %+v, want the mismatched message silently acked", client.acked)
	}
}

func TestEngineAckRoundTrip(t *testing.T) {
	client := &stubClient{}
	e := newTestEngine(t, client, 3)

	handle := model.ReceiptHandle{Topic: "orders", BrokerName: "broker-a", QueueID: 1, StartOffset: 5}
	token := EncodeReceiptHandle(handle)

	if err := e.Ack(context.Background(), token); err != nil {
		t.Fatalf("Ack: %v", err)
	}
	if len(client.acked) != 1 || client.acked[0].BrokerName != "broker-a" {
		t.Fatalf("acked = %+v", client.acked)
	}
}

func TestEngineAckInvalidToken(t *testing.T) {
	e := newTestEngine(t, &stubClient{}, 3)
	if err := e.Ack(context.Background(), "not-a-valid-token"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
}

func TestEngineNackBelowThresholdRetriesViaSendBack(t *testing.T) {
	client := &stubClient{}
	e := newTestEngine(t, client, 5)

	handle := model.ReceiptHandle{Topic: "orders", BrokerName: "broker-a", QueueID: 1}
	token := EncodeReceiptHandle(handle)

	if err := e.Nack(context.Background(), token, 1); err != nil {
		t.Fatalf("Nack: %v", err)
	}
	if len(client.sentBck) != 1 {
		t.Fatalf("sentBck = %+v, want 1 entry", client.sentBck)
	}
	if len(client.acked) != 0 {
		t.Fatalf("acked = %+v, want none below threshold", client.acked)
	}
}

func TestEngineNackAtThresholdRoutesToDeadLetterThenAcks(t *testing.T) {
	client := &stubClient{}
	e := newTestEngine(t, client, 3)

	handle := model.ReceiptHandle{Topic: "orders", BrokerName: "broker-a", QueueID: 1}
	token := EncodeReceiptHandle(handle)

	if err := e.Nack(context.Background(), token, 3); err != nil {
		t.Fatalf("Nack: %v", err)
	}
	if len(client.sentBck) != 1 || client.sentBck[0].BrokerName != "broker-a" {
		t.Fatalf("sentBck = %+v", client.sentBck)
	}
	if len(client.acked) != 1 {
		t.Fatalf("acked = %+v, want the dead-lettered handle acked on the broker", client.acked)
	}
}

func TestEngineChangeInvisibleDurationExtendsWindow(t *testing.T) {
	client := &stubClient{}
	e := newTestEngine(t, client, 3)

	handle := model.ReceiptHandle{Topic: "orders", BrokerName: "broker-a", QueueID: 1, InvisibleTime: 1000}
	token := EncodeReceiptHandle(handle)

	updated, err := e.ChangeInvisibleDuration(context.Background(), token, 45*time.Second)
	if err != nil {
		t.Fatalf("ChangeInvisibleDuration: %v", err)
	}
	if updated.InvisibleTime != 45_000 {
		t.Fatalf("InvisibleTime = %d, want 45000", updated.InvisibleTime)
	}
	if len(client.changedInv) != 1 {
		t.Fatalf("changedInv = %+v, want one CHANGE_INVISIBLE_TIME call", client.changedInv)
	}
}

func TestEngineResolveBrokerAddrUnknownBroker(t *testing.T) {
	e := newTestEngine(t, &stubClient{}, 3)
	handle := model.ReceiptHandle{Topic: "orders", BrokerName: "broker-unknown"}
	token := EncodeReceiptHandle(handle)

	if err := e.Ack(context.Background(), token); err == nil {
		t.Fatal("expected an error for an unknown broker name")
	}
}
