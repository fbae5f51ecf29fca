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

package endpoint

import "testing"

func TestParseBrokerAddr(t *testing.T) {
	host, port, err := ParseBrokerAddr("10.0.0.5:10911")
	if err != nil {
		t.Fatalf("ParseBrokerAddr: %v", err)
	}
	if host != "10.0.0.5" || port != 10911 {
		t.Fatalf("got (%q, %d), want (10.0.0.5, 10911)", host, port)
	}
}

func TestParseBrokerAddrInvalid(t *testing.T) {
	if _, _, err := ParseBrokerAddr("not-an-address"); err == nil {
		t.Fatal("expected an error for a malformed address")
	}
}

func TestJoinBrokerAddrRoundTrip(t *testing.T) {
	addr := JoinBrokerAddr("broker.internal", 9876)
	host, port, err := ParseBrokerAddr(addr)
	if err != nil {
		t.Fatalf("ParseBrokerAddr: %v", err)
	}
	if host != "broker.internal" || port != 9876 {
		t.Fatalf("round trip mismatch: %q, %d", host, port)
	}
}

func TestSplitCSV(t *testing.T) {
	cases := map[string][]string{
		"":                nil,
		"   ":             nil,
		"a:1":             {"a:1"},
		"a:1,b:2":         {"a:1", "b:2"},
		" a:1 , , b:2 ,":  {"a:1", "b:2"},
	}
	for input, want := range cases {
		got := SplitCSV(input)
		if len(got) != len(want) {
			t.Fatalf("SplitCSV(%q) = %v, want %v", input, got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("SplitCSV(%q) = %v, want %v", input, got, want)
			}
		}
	}
}

func TestPassthroughConverter(t *testing.T) {
	var c PassthroughConverter
	ep, err := c.Convert("192.168.1.1:10911")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if ep.Host != "192.168.1.1" || ep.Port != 10911 {
		t.Fatalf("got %+v", ep)
	}
	if ep.String() != "192.168.1.1:10911" {
		t.Fatalf("String() = %q", ep.String())
	}
}

func TestStaticConverterRequiresEndpoint(t *testing.T) {
	var c StaticConverter
	if _, err := c.Convert("anything:1"); err == nil {
		t.Fatal("expected an error when no endpoint is configured")
	}

	c.Endpoint = Endpoint{Host: "proxy.example.com", Port: 8081}
	ep, err := c.Convert("10.0.0.1:10911")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if ep != c.Endpoint {
		t.Fatalf("got %+v, want %+v", ep, c.Endpoint)
	}
}
