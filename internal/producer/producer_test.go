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

package producer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/novatechflow/rmqproxy/internal/forward"
	"github.com/novatechflow/rmqproxy/internal/model"
	"github.com/novatechflow/rmqproxy/internal/nameserver"
	"github.com/novatechflow/rmqproxy/internal/routecache"
)

type stubClient struct {
	sendErr error
	sent    []model.SendMessageHeader
	endedTx []model.TransactionID
}

func (s *stubClient) SendAsync(ctx context.Context, addr string, req model.SendMessageHeader) (model.SendResult, error) {
	if s.sendErr != nil {
		return model.SendResult{}, s.sendErr
	}
	s.sent = append(s.sent, req)
	return model.SendResult{MsgID: "msg-1"}, nil
}
func (*stubClient) PopAsync(ctx context.Context, addr, group, topic string, mq model.SelectableMessageQueue, invisibleTime int64, max int32) (model.PopResult, error) {
	return model.PopResult{}, nil
}
func (*stubClient) AckAsync(ctx context.Context, addr string, h model.ReceiptHandle) error {
	return nil
}
func (*stubClient) ChangeInvisibleTimeAsync(ctx context.Context, addr string, h model.ReceiptHandle, invisibleTime int64) error {
	return nil
}
func (s *stubClient) EndTransactionAsync(ctx context.Context, addr string, txID model.TransactionID, commit bool) error {
	s.endedTx = append(s.endedTx, txID)
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
func (*stubClient) SendMsgBackAsync(ctx context.Context, addr string, h model.ReceiptHandle, delayLevel int32) error {
	return nil
}

func routeFor(brokerAddr string) model.TopicRouteData {
	return model.TopicRouteData{
		QueueDatas: []model.QueueData{
			{BrokerName: "broker-a", ReadQueueNums: 4, WriteQueueNums: 4, Perm: model.PermRW},
		},
		BrokerDatas: []model.BrokerData{
			{Cluster: "cluster-a", BrokerName: "broker-a", BrokerAddrs: map[int64]string{0: brokerAddr}},
		},
	}
}

func newEngine(t *testing.T, client *stubClient) *Engine {
	t.Helper()
	ns := nameserver.NewInMemory(map[string]model.TopicRouteData{
		"orders": routeFor("127.0.0.1:10911"),
	})
	routes := routecache.New(ns, time.Minute)
	fwd := forward.NewManager(func(ctx context.Context, addr string) (forward.BrokerClient, error) {
		return client, nil
	}, nil)
	return New(routes, fwd)
}

func TestEngineSendSelectsRouteAndForwards(t *testing.T) {
	client := &stubClient{}
	e := newEngine(t, client)

	result, err := e.Send(context.Background(), model.SendMessageHeader{Topic: "orders", ProducerGroup: "g1", Body: []byte("hi")})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if result.MsgID != "msg-1" {
		t.Fatalf("MsgID = %q, want msg-1", result.MsgID)
	}
	if result.BrokerName != "broker-a" {
		t.Fatalf("BrokerName = %q, want broker-a", result.BrokerName)
	}
	if len(client.sent) != 1 || client.sent[0].Topic != "orders" {
		t.Fatalf("unexpected sent headers: %+v", client.sent)
	}
}

func TestEngineSendUnknownTopic(t *testing.T) {
	e := newEngine(t, &stubClient{})

	_, err := e.Send(context.Background(), model.SendMessageHeader{Topic: "missing", ProducerGroup: "g1"})
	if err == nil {
		t.Fatal("expected an error for an unknown topic")
	}
}

func TestEngineSendPropagatesBrokerError(t *testing.T) {
	boom := errors.New("broker rejected")
	e := newEngine(t, &stubClient{sendErr: boom})

	_, err := e.Send(context.Background(), model.SendMessageHeader{Topic: "orders", ProducerGroup: "g1"})
	if err == nil || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped broker error, got %v", err)
	}
}

func TestEngineSendBatchReturnsOneResultPerMessage(t *testing.T) {
	client := &stubClient{}
	e := newEngine(t, client)

	headers := []model.SendMessageHeader{
		{Topic: "orders", ProducerGroup: "g1", Body: []byte("a")},
		{Topic: "orders", ProducerGroup: "g1", Body: []byte("b")},
	}
	results, err := e.SendBatch(context.Background(), headers)
	if err != nil {
		t.Fatalf("SendBatch: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}

func TestEngineSendBatchEmpty(t *testing.T) {
	e := newEngine(t, &stubClient{})
	results, err := e.SendBatch(context.Background(), nil)
	if err != nil || results != nil {
		t.Fatalf("SendBatch(nil) = %v, %v, want nil, nil", results, err)
	}
}

func TestEngineSendSetsTransactionID(t *testing.T) {
	client := &stubClient{}
	e := newEngine(t, client)

	result, err := e.Send(context.Background(), model.SendMessageHeader{Topic: "orders", ProducerGroup: "g1", Transactional: true})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	txID, err := DecodeTransactionID(result.TransactionID)
	if err != nil {
		t.Fatalf("DecodeTransactionID: %v", err)
	}
	if txID.Topic != "orders" || txID.BrokerName != "broker-a" {
		t.Fatalf("got %+v", txID)
	}
}

func TestEngineEndTransactionResolvesBrokerAddr(t *testing.T) {
	client := &stubClient{}
	e := newEngine(t, client)

	txID := model.TransactionID{Topic: "orders", BrokerName: "broker-a", BrokerTransactionID: "tx-1"}
	if err := e.EndTransaction(context.Background(), txID, true); err != nil {
		t.Fatalf("EndTransaction: %v", err)
	}
	if len(client.endedTx) != 1 || client.endedTx[0].BrokerTransactionID != "tx-1" {
		t.Fatalf("endedTx = %+v", client.endedTx)
	}
}

func TestEngineEndTransactionUnknownBroker(t *testing.T) {
	e := newEngine(t, &stubClient{})

	txID := model.TransactionID{Topic: "orders", BrokerName: "broker-unknown"}
	if err := e.EndTransaction(context.Background(), txID, true); err == nil {
		t.Fatal("expected an error for an unknown broker name")
	}
}
