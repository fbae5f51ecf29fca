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
	"strconv"
	"strings"

	"github.com/novatechflow/rmqproxy/internal/model"
)

// popGroupKey identifies one (topic, queueId) group within a pop reply's
// header strings.
type popGroupKey struct {
	topic   string
	queueID int32
}

// parsePopGroups parses one of startOffsetInfo/msgOffsetInfo/orderCountInfo/
// tagInfo: semicolon-separated groups, each "topic,queueId,value[:value...]".
// The broker emits one group per (topic, queueId) touched by the pop.
func parsePopGroups(raw string) map[popGroupKey][]string {
	groups := make(map[popGroupKey][]string)
	if raw == "" {
		return groups
	}
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ",", 3)
		if len(parts) != 3 {
			continue
		}
		queueID, err := strconv.ParseInt(parts[1], 10, 32)
		if err != nil {
			continue
		}
		key := popGroupKey{topic: parts[0], queueID: int32(queueID)}
		groups[key] = strings.Split(parts[2], ":")
	}
	return groups
}

// synthesizeReceiptHandles groups a pop reply's header strings by (topic,
// queueId) and issues one receipt handle per returned message:
// startOffsetInfo carries each group's base offset, msgOffsetInfo carries
// one queue-offset per returned message, and tagInfo optionally carries one
// tag per message in the same order. A group absent from msgOffsetInfo
// produced no messages.
func synthesizeReceiptHandles(topic string, brokerName string, queueID int32, result model.PopResult) []model.ReceiptHandle {
	key := popGroupKey{topic: topic, queueID: queueID}

	offsets := parsePopGroups(result.MsgOffsetInfo)[key]
	if len(offsets) == 0 {
		return nil
	}
	var startOffset int64
	if so := parsePopGroups(result.StartOffsetInfo)[key]; len(so) > 0 {
		startOffset, _ = strconv.ParseInt(so[0], 10, 64)
	}
	tagList := parsePopGroups(result.TagInfo)[key]

	handles := make([]model.ReceiptHandle, 0, len(offsets))
	for i, raw := range offsets {
		queueOffset, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		h := model.ReceiptHandle{
			StartOffset:    startOffset,
			RetrieveTime:   result.PopTime,
			InvisibleTime:  result.InvisibleTime,
			ReviveQueueID:  result.ReviveQueueID,
			Topic:          topic,
			BrokerName:     brokerName,
			QueueID:        queueID,
			QueueOffset:    queueOffset,
			HasQueueOffset: true,
		}
		if i < len(tagList) {
			h.Tag = tagList[i]
		}
		handles = append(handles, h)
	}
	return handles
}

// matchesTagFilter reports whether tag satisfies filterExpr, a RocketMQ tag
// subscription: "||"-separated tag names, or "*"/empty for match-everything.
// A message whose tag the broker didn't report is never treated as a
// mismatch rather than guessed at and dropped.
func matchesTagFilter(filterExpr, tag string) bool {
	expr := strings.TrimSpace(filterExpr)
	if expr == "" || expr == "*" || tag == "" {
		return true
	}
	for _, want := range strings.Split(expr, "||") {
		if strings.TrimSpace(want) == tag {
			return true
		}
	}
	return false
}
