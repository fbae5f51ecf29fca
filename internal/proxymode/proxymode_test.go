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

package proxymode

import (
	"context"
	"testing"

	"github.com/novatechflow/rmqproxy/internal/model"
)

type fakeHandler struct{}

func (fakeHandler) SendAsync(ctx context.Context, addr string, req model.SendMessageHeader) (model.SendResult, error) {
	return model.SendResult{MsgID: "local-1"}, nil
}
func (fakeHandler) PopAsync(ctx context.Context, addr, group, topic string, mq model.SelectableMessageQueue, invisibleTime int64, max int32) (model.PopResult, error) {
	return model.PopResult{}, nil
}
func (fakeHandler) AckAsync(ctx context.Context, addr string, h model.ReceiptHandle) error { return nil }
func (fakeHandler) ChangeInvisibleTimeAsync(ctx context.Context, addr string, h model.ReceiptHandle, invisibleTime int64) error {
	return nil
}
func (fakeHandler) EndTransactionAsync(ctx context.Context, addr string, txID model.TransactionID, commit bool) error {
	return nil
}
func (fakeHandler) HeartbeatAsync(ctx context.Context, addr, clientID string, groups []string) error {
	return nil
}
func (fakeHandler) PullAsync(ctx context.Context, addr string, mq model.SelectableMessageQueue, offset int64, max int32) ([]model.ReceiptHandle, error) {
	return nil, nil
}
func (fakeHandler) SearchOffsetAsync(ctx context.Context, addr string, mq model.SelectableMessageQueue, ts int64) (int64, error) {
	return 0, nil
}
func (fakeHandler) GetMaxOffsetAsync(ctx context.Context, addr string, mq model.SelectableMessageQueue) (int64, error) {
	return 0, nil
}
func (fakeHandler) SendMsgBackAsync(ctx context.Context, addr string, h model.ReceiptHandle, delayLevel int32) error {
	return nil
}

func TestLocalDialerAlwaysReturnsSameHandler(t *testing.T) {
	handler := fakeHandler{}
	dial := NewLocalDialer(handler)

	c1, err := dial(context.Background(), "ignored-addr-1")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	c2, err := dial(context.Background(), "ignored-addr-2")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	res, err := c1.SendAsync(context.Background(), "ignored-addr-1", model.SendMessageHeader{Topic: "t"})
	if err != nil {
		t.Fatalf("SendAsync: %v", err)
	}
	if res.MsgID != "local-1" {
		t.Fatalf("expected local-1, got %q", res.MsgID)
	}
	_ = c2
}
