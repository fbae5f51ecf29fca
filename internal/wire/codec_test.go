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

package wire

import "testing"

func TestRemotingCommandMarshalRoundTrip(t *testing.T) {
	cmd := RemotingCommand{
		Code:      CodeSendMessage,
		Opaque:    42,
		ExtFields: map[string]string{"msgId": "abc123"},
		Body:      []byte("hello world"),
	}
	data, err := cmd.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := UnmarshalRemotingCommand(data)
	if err != nil {
		t.Fatalf("UnmarshalRemotingCommand: %v", err)
	}
	if got.Code != cmd.Code || got.Opaque != cmd.Opaque || got.ExtFields["msgId"] != "abc123" || string(got.Body) != "hello world" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestUnmarshalRemotingCommandRejectsTruncated(t *testing.T) {
	if _, err := UnmarshalRemotingCommand([]byte{0, 0}); err == nil {
		t.Fatalf("expected error for truncated payload")
	}
}
