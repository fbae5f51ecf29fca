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

// Package queueselect turns a topic route into selectable message queues and
// picks one for a publish, pop, or assignment call.
package queueselect

import "github.com/novatechflow/rmqproxy/internal/model"

// GenPartitions expands one QueueData into its contiguous, permission-tagged
// partitions: r read-only, then w write-only, then rw read-write, where
//
//	rw = min(writeNums, readNums) if both perms set, else 0
//	w  = writeNums - rw           if W set, else 0
//	r  = readNums  - rw           if R set, else 0
//
// Queue ids are assigned contiguously starting at 0 so clients see stable ids
// across route refreshes.
func GenPartitions(qd model.QueueData) []model.SelectableMessageQueue {
	var rw, w, r int32
	if qd.Perm.CanRead() && qd.Perm.CanWrite() {
		rw = min32(qd.WriteQueueNums, qd.ReadQueueNums)
	}
	if qd.Perm.CanWrite() {
		w = qd.WriteQueueNums - rw
	}
	if qd.Perm.CanRead() {
		r = qd.ReadQueueNums - rw
	}

	total := r + w + rw
	out := make([]model.SelectableMessageQueue, 0, total)
	var id int32
	for i := int32(0); i < r; i++ {
		out = append(out, model.SelectableMessageQueue{BrokerName: qd.BrokerName, QueueID: id, Perm: model.PermRead})
		id++
	}
	for i := int32(0); i < w; i++ {
		out = append(out, model.SelectableMessageQueue{BrokerName: qd.BrokerName, QueueID: id, Perm: model.PermWrite})
		id++
	}
	for i := int32(0); i < rw; i++ {
		out = append(out, model.SelectableMessageQueue{BrokerName: qd.BrokerName, QueueID: id, Perm: model.PermRW})
		id++
	}
	return out
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// BrokerAddrIndex maps brokerName to its selected (master, by convention)
// address for the route a partition set was derived from.
type BrokerAddrIndex map[string]string

func NewBrokerAddrIndex(brokers []model.BrokerData) BrokerAddrIndex {
	idx := make(BrokerAddrIndex, len(brokers))
	for _, b := range brokers {
		if addr, ok := b.SelectBrokerAddr(); ok {
			idx[b.BrokerName] = addr
		}
	}
	return idx
}

// WritableQueues returns every SelectableMessageQueue in route with write
// permission and a resolvable broker address.
func WritableQueues(route model.TopicRouteData) []model.SelectableMessageQueue {
	idx := NewBrokerAddrIndex(route.BrokerDatas)
	var out []model.SelectableMessageQueue
	for _, qd := range route.QueueDatas {
		addr, ok := idx[qd.BrokerName]
		if !ok {
			continue
		}
		for _, q := range GenPartitions(qd) {
			if q.Perm.CanWrite() {
				q.BrokerAddr = addr
				out = append(out, q)
			}
		}
	}
	return out
}

// ReadableQueues returns every SelectableMessageQueue in route with read
// permission and a resolvable broker address.
func ReadableQueues(route model.TopicRouteData) []model.SelectableMessageQueue {
	idx := NewBrokerAddrIndex(route.BrokerDatas)
	var out []model.SelectableMessageQueue
	for _, qd := range route.QueueDatas {
		addr, ok := idx[qd.BrokerName]
		if !ok {
			continue
		}
		for _, q := range GenPartitions(qd) {
			if q.Perm.CanRead() {
				q.BrokerAddr = addr
				out = append(out, q)
			}
		}
	}
	return out
}

// ReadableBrokerSet returns one placeholder queue (queueId=-1) per broker
// that hosts at least one readable partition of the topic, used for
// assignment queries where the broker itself load-balances at pop time.
func ReadableBrokerSet(route model.TopicRouteData) []model.SelectableMessageQueue {
	idx := NewBrokerAddrIndex(route.BrokerDatas)
	seen := make(map[string]bool, len(route.BrokerDatas))
	var out []model.SelectableMessageQueue
	for _, qd := range route.QueueDatas {
		if !qd.Perm.CanRead() || seen[qd.BrokerName] {
			continue
		}
		addr, ok := idx[qd.BrokerName]
		if !ok {
			continue
		}
		seen[qd.BrokerName] = true
		out = append(out, model.SelectableMessageQueue{
			BrokerName: qd.BrokerName,
			BrokerAddr: addr,
			QueueID:    -1,
			Perm:       model.PermRead,
		})
	}
	return out
}
