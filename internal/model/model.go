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

// Package model holds the canonical, version-independent request/response
// and routing types shared by every engine. The v1/v2 gRPC activities
// translate onto and off of these types; nothing below this package knows
// which protocol revision a client is speaking.
package model

import "fmt"

// Perm is the permission bitmask carried by a QueueData entry.
type Perm uint8

const (
	PermNone  Perm = 0
	PermRead  Perm = 1 << 0
	PermWrite Perm = 1 << 1
	PermRW         = PermRead | PermWrite
)

func (p Perm) CanRead() bool  { return p&PermRead != 0 }
func (p Perm) CanWrite() bool { return p&PermWrite != 0 }

// QueueData describes one broker's partitioning of a topic.
type QueueData struct {
	BrokerName     string
	ReadQueueNums  int32
	WriteQueueNums int32
	Perm           Perm
}

// BrokerData describes one broker's cluster membership and reachable addresses,
// keyed by broker id (0 is conventionally the master).
type BrokerData struct {
	Cluster     string
	BrokerName  string
	BrokerAddrs map[int64]string
}

// SelectBrokerAddr returns the master address, falling back to any address present.
func (b BrokerData) SelectBrokerAddr() (string, bool) {
	if addr, ok := b.BrokerAddrs[0]; ok {
		return addr, true
	}
	for _, addr := range b.BrokerAddrs {
		return addr, true
	}
	return "", false
}

// TopicRouteData is the raw route payload fetched from the name-service.
type TopicRouteData struct {
	OrderTopicConf string
	QueueDatas     []QueueData
	BrokerDatas    []BrokerData
}

// SelectableMessageQueue is a single (broker, address, queue) choice derived
// from a TopicRouteData. It is never persisted, computed fresh from the
// cached route on every selection.
type SelectableMessageQueue struct {
	BrokerName string
	BrokerAddr string
	QueueID    int32
	Perm       Perm
}

func (q SelectableMessageQueue) String() string {
	return fmt.Sprintf("%s@%s#%d", q.BrokerName, q.BrokerAddr, q.QueueID)
}

// ReceiptHandle is the decoded form of the opaque handle a client echoes back
// on Ack/Nack/ChangeInvisibleDuration. See internal/consumer for the
// encode/decode pair; this struct is the shared wire-independent shape.
type ReceiptHandle struct {
	StartOffset    int64
	RetrieveTime   int64 // popTime
	InvisibleTime  int64
	ReviveQueueID  int32
	Topic          string
	BrokerName     string
	QueueID        int32
	QueueOffset    int64
	HasQueueOffset bool
	Tag            string
}

// PopResult is the raw outcome of a POP_MESSAGE round trip: the broker's
// per-call fields plus its four per-queue header strings. The consumer
// package groups StartOffsetInfo, MsgOffsetInfo and TagInfo by (topic,
// queueId) to synthesize one receipt handle per returned message;
// OrderCountInfo is carried but not read there.
type PopResult struct {
	PopTime         int64
	InvisibleTime   int64
	ReviveQueueID   int32
	StartOffsetInfo string
	MsgOffsetInfo   string
	OrderCountInfo  string
	TagInfo         string
}

// TransactionID identifies a prepared (half) transactional message. Topic is
// carried alongside the broker identity so EndTransaction can resolve the
// broker's current address through the topic-keyed route cache, the proxy
// keeps no broker-name-only directory.
type TransactionID struct {
	ProxyTransactionID  string
	Topic               string
	BrokerName          string
	BrokerTransactionID string
	CommitLogOffset     int64
	QueueOffset         int64
}

// SendMessageHeader is the canonical publish request, independent of v1/v2 wire shape.
type SendMessageHeader struct {
	Topic                string
	ProducerGroup        string
	Tag                  string
	Keys                 string
	Properties           map[string]string
	ReconsumeTimes       int32
	Transactional        bool
	DelayLevel           int32
	Body                 []byte
}

// SendResult is the canonical publish outcome. For a transactional send,
// TransactionID initially holds the broker's own (half-message) transaction
// id; producer.Engine.Send rewrites it to the encoded proxy transaction id
// before returning.
type SendResult struct {
	MsgID           string
	QueueID         int32
	QueueOffset     int64
	TransactionID   string
	BrokerName      string
	CommitLogOffset int64
}
