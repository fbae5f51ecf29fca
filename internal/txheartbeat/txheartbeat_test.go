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

package txheartbeat

import (
	"context"
	"testing"
	"time"

	"github.com/novatechflow/rmqproxy/internal/forward"
	"github.com/novatechflow/rmqproxy/internal/model"
	"github.com/novatechflow/rmqproxy/internal/nameserver"
	"github.com/novatechflow/rmqproxy/internal/routecache"
)

func routeFor(cluster string, addrs ...string) model.TopicRouteData {
	brokers := make([]model.BrokerData, 0, len(addrs))
	for i, addr := range addrs {
		brokers = append(brokers, model.BrokerData{
			Cluster:     cluster,
			BrokerName:  addr,
			BrokerAddrs: map[int64]string{0: addr},
		})
		_ = i
	}
	return model.TopicRouteData{BrokerDatas: brokers}
}

func TestBatchByClusterSplitsAtBatchNum(t *testing.T) {
	routes := routecache.New(nameserver.NewInMemory(map[string]model.TopicRouteData{
		"c1": routeFor("c1", "broker-1"),
	}), time.Minute)
	svc := New(routes, forward.NewManager(nil, nil), Config{BatchNum: 2}, nil)

	svc.AddProducerGroup(context.Background(), "g1", "c1")
	svc.AddProducerGroup(context.Background(), "g2", "c1")
	svc.AddProducerGroup(context.Background(), "g3", "c1")

	batches := svc.batchByCluster()
	got, ok := batches["c1"]
	if !ok {
		t.Fatalf("expected batches for cluster c1")
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(got))
	}
	if len(got[0].Groups) != 2 || len(got[1].Groups) != 1 {
		t.Fatalf("expected batch sizes [2,1], got [%d,%d]", len(got[0].Groups), len(got[1].Groups))
	}
	for _, b := range got {
		if b.ClientID != clientID {
			t.Errorf("expected clientID %q, got %q", clientID, b.ClientID)
		}
	}
}

func TestOnProducerGroupOfflineRemovesGroup(t *testing.T) {
	routes := routecache.New(nameserver.NewInMemory(map[string]model.TopicRouteData{
		"c1": routeFor("c1", "broker-1"),
	}), time.Minute)
	svc := New(routes, forward.NewManager(nil, nil), Config{BatchNum: 10}, nil)

	svc.AddProducerGroup(context.Background(), "g1", "c1")
	svc.OnProducerGroupOffline("g1")

	batches := svc.batchByCluster()
	if len(batches) != 0 {
		t.Fatalf("expected no batches after group went offline, got %v", batches)
	}
}
