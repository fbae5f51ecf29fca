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

package queueselect

import (
	"testing"

	"github.com/novatechflow/rmqproxy/internal/model"
)

func TestGenPartitionsReadWrite(t *testing.T) {
	qd := model.QueueData{BrokerName: "b", ReadQueueNums: 4, WriteQueueNums: 8, Perm: model.PermRW}
	parts := GenPartitions(qd)
	if len(parts) != 8 {
		t.Fatalf("expected 8 partitions, got %d", len(parts))
	}
	for i, p := range parts {
		if p.QueueID != int32(i) {
			t.Fatalf("partition %d has non-contiguous id %d", i, p.QueueID)
		}
	}
	for i := 0; i < 4; i++ {
		if parts[i].Perm != model.PermWrite {
			t.Fatalf("partition %d: expected WRITE, got %v", i, parts[i].Perm)
		}
	}
	for i := 4; i < 8; i++ {
		if parts[i].Perm != model.PermRW {
			t.Fatalf("partition %d: expected READ_WRITE, got %v", i, parts[i].Perm)
		}
	}
}

func TestGenPartitionsCountInvariant(t *testing.T) {
	perms := []model.Perm{model.PermRead, model.PermWrite, model.PermRW}
	for _, perm := range perms {
		for r := int32(0); r <= 4; r++ {
			for w := int32(0); w <= 4; w++ {
				qd := model.QueueData{BrokerName: "b", ReadQueueNums: r, WriteQueueNums: w, Perm: perm}
				parts := GenPartitions(qd)

				var expect int32
				switch perm {
				case model.PermRead:
					expect = r
				case model.PermWrite:
					expect = w
				case model.PermRW:
					expect = max32(r, w)
				}
				if int32(len(parts)) != expect {
					t.Fatalf("perm=%v r=%d w=%d: expected %d partitions, got %d", perm, r, w, expect, len(parts))
				}
				for i, p := range parts {
					if p.QueueID != int32(i) {
						t.Fatalf("perm=%v r=%d w=%d: non-contiguous id at %d", perm, r, w, i)
					}
				}
			}
		}
	}
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
