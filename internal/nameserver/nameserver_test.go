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

package nameserver

import (
	"context"
	"errors"
	"testing"

	"github.com/novatechflow/rmqproxy/internal/model"
)

func TestInMemoryLookupKnownTopic(t *testing.T) {
	want := model.TopicRouteData{QueueDatas: []model.QueueData{{BrokerName: "b0", WriteQueueNums: 4, Perm: model.PermRW}}}
	ns := NewInMemory(map[string]model.TopicRouteData{"orders": want})

	got, err := ns.LookupTopicRoute(context.Background(), "orders")
	if err != nil {
		t.Fatalf("LookupTopicRoute: %v", err)
	}
	if len(got.QueueDatas) != 1 || got.QueueDatas[0].BrokerName != "b0" {
		t.Fatalf("got %+v", got)
	}
}

func TestInMemoryLookupUnknownTopic(t *testing.T) {
	ns := NewInMemory(nil)
	_, err := ns.LookupTopicRoute(context.Background(), "missing")
	if !errors.Is(err, ErrTopicNotFound) {
		t.Fatalf("err = %v, want ErrTopicNotFound", err)
	}
}

func TestInMemoryRespectsCancelledContext(t *testing.T) {
	ns := NewInMemory(map[string]model.TopicRouteData{"orders": {}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ns.LookupTopicRoute(ctx, "orders")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestInMemoryCopiesInputMap(t *testing.T) {
	input := map[string]model.TopicRouteData{"orders": {}}
	ns := NewInMemory(input)
	input["orders-2"] = model.TopicRouteData{}

	if _, err := ns.LookupTopicRoute(context.Background(), "orders-2"); !errors.Is(err, ErrTopicNotFound) {
		t.Fatal("InMemory must not alias the caller's map")
	}
}
