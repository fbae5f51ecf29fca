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
	"testing"

	"github.com/novatechflow/rmqproxy/internal/model"
)

func TestReceiptHandleRoundTrip(t *testing.T) {
	cases := []model.ReceiptHandle{
		{StartOffset: 100, RetrieveTime: 1700000000000, InvisibleTime: 30000, ReviveQueueID: 3, Topic: "t1", BrokerName: "broker-a", QueueID: 2, QueueOffset: 55, HasQueueOffset: true},
		{StartOffset: 0, RetrieveTime: 0, InvisibleTime: 0, ReviveQueueID: 0, Topic: "t2", BrokerName: "broker-b", QueueID: 0},
	}
	for _, h := range cases {
		token := EncodeReceiptHandle(h)
		got, err := DecodeReceiptHandle(token)
		if err != nil {
			t.Fatalf("DecodeReceiptHandle(%q): %v", token, err)
		}
		if got != h {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, h)
		}
	}
}

func TestDecodeReceiptHandleRejectsTampering(t *testing.T) {
	h := model.ReceiptHandle{StartOffset: 1, Topic: "t", BrokerName: "b", QueueID: 0}
	token := EncodeReceiptHandle(h)
	tampered := token[:len(token)-1] + "x"
	if _, err := DecodeReceiptHandle(tampered); err == nil {
		t.Fatalf("expected tampering to be rejected")
	}
}

func TestDecodeReceiptHandleRejectsGarbage(t *testing.T) {
	if _, err := DecodeReceiptHandle("not-a-valid-token!!"); err == nil {
		t.Fatalf("expected garbage input to be rejected")
	}
}
