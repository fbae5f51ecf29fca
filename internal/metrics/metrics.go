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

// Package metrics exposes the Prometheus series the proxy publishes on its
// health endpoint. The series are only registered: no code in this module
// updates them, so each one reports its initial zero value.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "rmqproxy"

var (
	SendTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "send_total",
			Help:      "Total SendMessage calls by topic and outcome.",
		},
		[]string{"topic", "outcome"},
	)
	SendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "send_duration_ms",
			Help:      "SendMessage round-trip duration in milliseconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"topic"},
	)
	ReceiveTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "receive_total",
			Help:      "Total ReceiveMessage calls by topic and outcome.",
		},
		[]string{"topic", "outcome"},
	)
	AckTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ack_total",
			Help:      "Total AckMessage calls by outcome.",
		},
		[]string{"outcome"},
	)
	NackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nack_total",
			Help:      "Total NackMessage calls by outcome, including dead-letter forwards.",
		},
		[]string{"outcome"},
	)
	RouteCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_cache_lookups_total",
			Help:      "Total topic route cache lookups by result.",
		},
		[]string{"result"},
	)
	TransactionHeartbeatsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transaction_heartbeats_sent_total",
			Help:      "Total transaction heartbeat batches sent by cluster.",
		},
		[]string{"cluster"},
	)
	RelayPending = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "relay_pending_requests",
			Help:      "Current number of broker relay requests awaiting a client response.",
		},
	)
	ForwardClientsActive = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "forward_clients_active",
			Help:      "Current number of pooled forward clients by role.",
		},
		[]string{"role"},
	)
)

// MustRegister registers every series above with reg. Call once at startup.
func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		SendTotal,
		SendDuration,
		ReceiveTotal,
		AckTotal,
		NackTotal,
		RouteCacheLookups,
		TransactionHeartbeatsSent,
		RelayPending,
		ForwardClientsActive,
	)
}
