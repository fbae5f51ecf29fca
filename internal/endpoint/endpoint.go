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

// Package endpoint parses and renders broker addresses and client-facing
// endpoints, and exposes the pluggable EndpointConverter used in cluster mode.
package endpoint

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ErrMissingEndpoint is returned by StaticConverter when no advertised
// endpoint has been configured.
var ErrMissingEndpoint = errors.New("endpoint: no advertised endpoint configured")

// Endpoint is a client-facing host/port pair advertised on QueryRoute and
// QueryAssignment responses.
type Endpoint struct {
	Host string
	Port int32
}

// IsZero reports whether e is incomplete: its host or its port is unset.
func (e Endpoint) IsZero() bool {
	return e.Host == "" || e.Port == 0
}

func (e Endpoint) String() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(int(e.Port)))
}

// ParseBrokerAddr splits a "host:port" broker address.
func ParseBrokerAddr(addr string) (host string, port int32, err error) {
	h, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, fmt.Errorf("parse broker addr %q: %w", addr, err)
	}
	p, err := strconv.ParseInt(portStr, 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("parse broker port %q: %w", addr, err)
	}
	return h, int32(p), nil
}

// JoinBrokerAddr is the inverse of ParseBrokerAddr.
func JoinBrokerAddr(host string, port int32) string {
	return net.JoinHostPort(host, strconv.Itoa(int(port)))
}

// SplitCSV parses a comma-separated list of addresses, trimming blanks and
// dropping empty entries.
func SplitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Converter rewrites broker-internal addresses into client-facing endpoints
// before they are placed on a QueryRoute/QueryAssignment response, e.g. to
// publish DNS names instead of raw IPs in cluster mode.
type Converter interface {
	Convert(brokerAddr string) (Endpoint, error)
}

// PassthroughConverter returns the broker address unchanged, splitting host
// and port. Used in local mode where the advertised endpoint is synthesised
// directly from the co-located broker's own configuration.
type PassthroughConverter struct{}

func (PassthroughConverter) Convert(brokerAddr string) (Endpoint, error) {
	host, port, err := ParseBrokerAddr(brokerAddr)
	if err != nil {
		return Endpoint{}, err
	}
	return Endpoint{Host: host, Port: port}, nil
}

// StaticConverter always returns a fixed, operator-configured endpoint
// regardless of the broker address, the common cluster-mode case where a
// single advertised DNS name/port fronts the whole proxy fleet.
type StaticConverter struct {
	Endpoint Endpoint
}

func (s StaticConverter) Convert(string) (Endpoint, error) {
	if s.Endpoint.IsZero() {
		return Endpoint{}, ErrMissingEndpoint
	}
	return s.Endpoint, nil
}
