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
	"encoding/json"
	"fmt"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/novatechflow/rmqproxy/internal/model"
)

// EtcdConfig describes how to reach the etcd cluster backing the name
// service.
type EtcdConfig struct {
	Endpoints   []string
	Username    string
	Password    string
	DialTimeout time.Duration
}

// Etcd is a NameServer that reads broker-published route snapshots from
// etcd. LookupTopicRoute reads each route from etcd directly. A background
// watch rebuilds an in-memory snapshot of the route prefix on every change;
// nothing reads that snapshot, and it does not reach TopicRouteCache, whose
// entries still expire only by TTL or Invalidate. Route snapshots are written by the brokers/operator
// plane, not by the proxy, the proxy is a pure reader and never implements
// broker discovery itself.
type Etcd struct {
	client *clientv3.Client
	cache  map[string]model.TopicRouteData
}

// NewEtcd dials etcd and performs an initial snapshot load.
func NewEtcd(ctx context.Context, cfg EtcdConfig) (*Etcd, error) {
	if len(cfg.Endpoints) == 0 {
		return nil, fmt.Errorf("nameserver: etcd endpoints required")
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	cli, err := clientv3.New(clientv3.Config{
		Endpoints:   cfg.Endpoints,
		Username:    cfg.Username,
		Password:    cfg.Password,
		DialTimeout: cfg.DialTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("nameserver: connect etcd: %w", err)
	}
	e := &Etcd{client: cli, cache: make(map[string]model.TopicRouteData)}
	if err := e.refresh(ctx); err != nil {
		// A missing snapshot at startup is not fatal, the operator plane
		// will populate it, and LookupTopicRoute reports ErrTopicNotFound
		// until it does.
		_ = err
	}
	e.startWatch()
	return e, nil
}

// LookupTopicRoute implements NameServer.
func (e *Etcd) LookupTopicRoute(ctx context.Context, topic string) (model.TopicRouteData, error) {
	getCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	resp, err := e.client.Get(getCtx, routeKey(topic))
	if err != nil {
		return model.TopicRouteData{}, fmt.Errorf("nameserver: get route for %q: %w", topic, err)
	}
	if len(resp.Kvs) == 0 {
		return model.TopicRouteData{}, ErrTopicNotFound
	}
	var route model.TopicRouteData
	if err := json.Unmarshal(resp.Kvs[0].Value, &route); err != nil {
		return model.TopicRouteData{}, fmt.Errorf("nameserver: decode route for %q: %w", topic, err)
	}
	return route, nil
}

func routeKey(topic string) string {
	return fmt.Sprintf("/rmqproxy/routes/%s", topic)
}

func (e *Etcd) refresh(ctx context.Context) error {
	getCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	resp, err := e.client.Get(getCtx, "/rmqproxy/routes/", clientv3.WithPrefix())
	if err != nil {
		return err
	}
	snapshot := make(map[string]model.TopicRouteData, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		var route model.TopicRouteData
		if err := json.Unmarshal(kv.Value, &route); err != nil {
			continue
		}
		topic := string(kv.Key)[len("/rmqproxy/routes/"):]
		snapshot[topic] = route
	}
	e.cache = snapshot
	return nil
}

func (e *Etcd) startWatch() {
	ctx := context.Background()
	go func() {
		watchChan := e.client.Watch(ctx, "/rmqproxy/routes/", clientv3.WithPrefix())
		for resp := range watchChan {
			if resp.Err() != nil {
				continue
			}
			_ = e.refresh(ctx)
		}
	}()
}

// Close releases the underlying etcd client.
func (e *Etcd) Close() error {
	return e.client.Close()
}
