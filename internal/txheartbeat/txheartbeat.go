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

// Package txheartbeat keeps transactional producer groups alive on every
// cluster they have published to, by periodically resending batched
// heartbeats.
package txheartbeat

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/novatechflow/rmqproxy/internal/forward"
	"github.com/novatechflow/rmqproxy/internal/routecache"
)

// clientID is the fixed client identity the proxy presents on every
// transaction heartbeat it forwards, regardless of which real producer
// registered the group.
const clientID = "rmq-proxy-producer-client"

// HeartbeatData is one batched heartbeat payload: up to BatchNum producer
// groups bound for the same cluster.
type HeartbeatData struct {
	ClientID string
	Groups   []string
}

// Service tracks which clusters each transactional producer group has
// published to and periodically re-announces them.
type Service struct {
	routes  *routecache.TopicRouteCache
	forward *forward.Manager
	logger  *slog.Logger

	period   time.Duration
	batchNum int
	fanout   int

	mu              sync.Mutex
	groupClusterSet map[string]map[string]struct{} // group -> set of cluster names

	stop chan struct{}
	done chan struct{}
}

// Config holds the tunables operators can set for this service.
type Config struct {
	PeriodSecond int
	BatchNum     int
	FanoutWorkers int
}

// New builds a Service. Call Start to begin the periodic scan.
func New(routes *routecache.TopicRouteCache, fwd *forward.Manager, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	period := time.Duration(cfg.PeriodSecond) * time.Second
	if period <= 0 {
		period = 30 * time.Second
	}
	batchNum := cfg.BatchNum
	if batchNum <= 0 {
		batchNum = 50
	}
	fanout := cfg.FanoutWorkers
	if fanout <= 0 {
		fanout = 8
	}
	return &Service{
		routes:          routes,
		forward:         fwd,
		logger:          logger,
		period:          period,
		batchNum:        batchNum,
		fanout:          fanout,
		groupClusterSet: make(map[string]map[string]struct{}),
	}
}

// AddProducerGroup records that group has published to topic's clusters, so
// future scans keep it alive there.
func (s *Service) AddProducerGroup(ctx context.Context, group, topic string) {
	route, err := s.routes.GetRoute(ctx, topic)
	if err != nil {
		s.logger.Error("tx heartbeat: resolve route failed", "group", group, "topic", topic, "error", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.groupClusterSet[group]
	if !ok {
		set = make(map[string]struct{})
		s.groupClusterSet[group] = set
	}
	for _, b := range route.BrokerDatas {
		set[b.Cluster] = struct{}{}
	}
}

// OnProducerGroupOffline stops heartbeating group.
func (s *Service) OnProducerGroupOffline(group string) {
	s.mu.Lock()
	delete(s.groupClusterSet, group)
	s.mu.Unlock()
}

// batchByCluster groups producer groups into per-cluster HeartbeatData
// batches capped at batchNum entries each, iterating groups and their
// clusters in sorted order for determinism.
func (s *Service) batchByCluster() map[string][]HeartbeatData {
	s.mu.Lock()
	groups := make([]string, 0, len(s.groupClusterSet))
	clustersOf := make(map[string][]string, len(s.groupClusterSet))
	for group, set := range s.groupClusterSet {
		groups = append(groups, group)
		clusters := make([]string, 0, len(set))
		for c := range set {
			clusters = append(clusters, c)
		}
		sort.Strings(clusters)
		clustersOf[group] = clusters
	}
	s.mu.Unlock()
	sort.Strings(groups)

	result := make(map[string][]HeartbeatData)
	for _, group := range groups {
		for _, cluster := range clustersOf[group] {
			batches := result[cluster]
			if len(batches) == 0 || len(batches[len(batches)-1].Groups) >= s.batchNum {
				batches = append(batches, HeartbeatData{ClientID: clientID})
			}
			last := &batches[len(batches)-1]
			last.Groups = append(last.Groups, group)
			result[cluster] = batches
		}
	}
	return result
}

// ScanProducerHeartbeat runs one heartbeat cycle: batch every tracked group
// by cluster, then fan out sends to every broker in each cluster bounded by
// s.fanout concurrent workers.
func (s *Service) ScanProducerHeartbeat(ctx context.Context) error {
	batches := s.batchByCluster()
	if len(batches) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanout)

	for cluster, heartbeats := range batches {
		cluster, heartbeats := cluster, heartbeats
		route, err := s.routes.GetRoute(ctx, cluster)
		if err != nil {
			s.logger.Error("tx heartbeat: resolve cluster route failed", "cluster", cluster, "error", err)
			continue
		}
		for _, b := range route.BrokerDatas {
			addr, ok := b.SelectBrokerAddr()
			if !ok {
				continue
			}
			for _, hb := range heartbeats {
				addr, hb := addr, hb
				g.Go(func() error {
					s.sendHeartbeat(ctx, addr, hb)
					return nil
				})
			}
		}
	}
	return g.Wait()
}

func (s *Service) sendHeartbeat(ctx context.Context, brokerAddr string, hb HeartbeatData) {
	client, err := s.forward.Pool(forward.RoleTransactionProducer).Get(ctx, brokerAddr)
	if err != nil {
		s.logger.Warn("tx heartbeat: dial broker failed", "broker", brokerAddr, "error", err)
		return
	}
	if err := client.HeartbeatAsync(ctx, brokerAddr, hb.ClientID, hb.Groups); err != nil {
		s.logger.Warn("tx heartbeat: send failed", "broker", brokerAddr, "error", err)
	}
}

// Start launches the periodic scan loop in a background goroutine.
func (s *Service) Start(ctx context.Context) {
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stop:
				return
			case <-ticker.C:
				if err := s.ScanProducerHeartbeat(ctx); err != nil {
					s.logger.Error("tx heartbeat: scan failed", "error", err)
				}
			}
		}
	}()
}

// Shutdown stops the scan loop and waits for it to exit.
func (s *Service) Shutdown() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
}
