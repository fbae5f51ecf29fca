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

// Package config loads the proxy's runtime configuration from a JSON file
// under RMQ_PROXY_HOME, with environment variables overriding individual
// fields.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ProxyMode selects whether the proxy terminates requests in-process
// (LOCAL) or forwards to a legacy broker wire protocol (CLUSTER).
type ProxyMode string

const (
	ModeLocal   ProxyMode = "LOCAL"
	ModeCluster ProxyMode = "CLUSTER"
)

// Config holds every runtime tunable the proxy exposes.
type Config struct {
	ProxyMode ProxyMode `json:"proxyMode"`

	GrpcServerPort int32  `json:"grpcServerPort"`
	NamesrvAddr    string `json:"namesrvAddr"`

	RouteCacheTTLMillis int64 `json:"routeCacheTtlMillis"`

	LongPollingReserveTimeInMillis int64 `json:"longPollingReserveTimeInMillis"`

	TransactionHeartbeatPeriodSecond            int `json:"transactionHeartbeatPeriodSecond"`
	TransactionHeartbeatBatchNum                int `json:"transactionHeartbeatBatchNum"`
	TransactionHeartbeatThreadPoolNums          int `json:"transactionHeartbeatThreadPoolNums"`
	TransactionHeartbeatThreadPoolQueueCapacity int `json:"transactionHeartbeatThreadPoolQueueCapacity"`

	GrpcProxyRelayRequestTimeoutInSeconds int `json:"grpcProxyRelayRequestTimeoutInSeconds"`
	GrpcClientChannelExpireSeconds        int `json:"grpcClientChannelExpireSeconds"`

	MessageDelayLevel   string `json:"messageDelayLevel"`
	MaxDeliveryAttempts int32  `json:"maxDeliveryAttempts"`

	// AdvertiseEndpoint is the client-facing "host:port" published on
	// QueryRoute/QueryAssignment responses in CLUSTER mode, where the
	// broker-internal address is not reachable from outside the cluster.
	AdvertiseEndpoint string `json:"advertiseEndpoint"`
}

// Default returns the proxy's out-of-the-box configuration.
func Default() Config {
	return Config{
		ProxyMode:                                   ModeCluster,
		GrpcServerPort:                               8081,
		NamesrvAddr:                                  "127.0.0.1:9876",
		RouteCacheTTLMillis:                          30_000,
		LongPollingReserveTimeInMillis:               100,
		TransactionHeartbeatPeriodSecond:             30,
		TransactionHeartbeatBatchNum:                 50,
		TransactionHeartbeatThreadPoolNums:           20,
		TransactionHeartbeatThreadPoolQueueCapacity:  200,
		GrpcProxyRelayRequestTimeoutInSeconds:        3,
		GrpcClientChannelExpireSeconds:               60,
		MessageDelayLevel:                            "1s 5s 10s 30s 1m 2m 3m 4m 5m 6m 7m 8m 9m 10m 20m 30m 1h 2h",
		MaxDeliveryAttempts:                          16,
	}
}

// Load reads config from $RMQ_PROXY_HOME/conf/proxy.json if present, then
// applies RMQ_PROXY_* environment overrides on top.
func Load() (Config, error) {
	cfg := Default()

	home := strings.TrimSpace(os.Getenv("RMQ_PROXY_HOME"))
	if home != "" {
		path := filepath.Join(home, "conf", "proxy.json")
		if data, err := os.ReadFile(path); err == nil {
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Config{}, err
			}
		} else if !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := envOrDefault("RMQ_PROXY_MODE", ""); v != "" {
		cfg.ProxyMode = ProxyMode(strings.ToUpper(v))
	}
	cfg.GrpcServerPort = envInt32("RMQ_PROXY_GRPC_SERVER_PORT", cfg.GrpcServerPort)
	if v := envOrDefault("RMQ_PROXY_NAMESRV_ADDR", ""); v != "" {
		cfg.NamesrvAddr = v
	}
	cfg.RouteCacheTTLMillis = envInt64("RMQ_PROXY_ROUTE_CACHE_TTL_MILLIS", cfg.RouteCacheTTLMillis)
	cfg.LongPollingReserveTimeInMillis = envInt64("RMQ_PROXY_LONG_POLLING_RESERVE_TIME_IN_MILLIS", cfg.LongPollingReserveTimeInMillis)
	cfg.TransactionHeartbeatPeriodSecond = envInt("RMQ_PROXY_TRANSACTION_HEARTBEAT_PERIOD_SECOND", cfg.TransactionHeartbeatPeriodSecond)
	cfg.TransactionHeartbeatBatchNum = envInt("RMQ_PROXY_TRANSACTION_HEARTBEAT_BATCH_NUM", cfg.TransactionHeartbeatBatchNum)
	cfg.TransactionHeartbeatThreadPoolNums = envInt("RMQ_PROXY_TRANSACTION_HEARTBEAT_THREAD_POOL_NUMS", cfg.TransactionHeartbeatThreadPoolNums)
	cfg.TransactionHeartbeatThreadPoolQueueCapacity = envInt("RMQ_PROXY_TRANSACTION_HEARTBEAT_THREAD_POOL_QUEUE_CAPACITY", cfg.TransactionHeartbeatThreadPoolQueueCapacity)
	cfg.GrpcProxyRelayRequestTimeoutInSeconds = envInt("RMQ_PROXY_GRPC_PROXY_RELAY_REQUEST_TIMEOUT_IN_SECONDS", cfg.GrpcProxyRelayRequestTimeoutInSeconds)
	cfg.GrpcClientChannelExpireSeconds = envInt("RMQ_PROXY_GRPC_CLIENT_CHANNEL_EXPIRE_SECONDS", cfg.GrpcClientChannelExpireSeconds)
	if v := envOrDefault("RMQ_PROXY_MESSAGE_DELAY_LEVEL", ""); v != "" {
		cfg.MessageDelayLevel = v
	}
	cfg.MaxDeliveryAttempts = int32(envInt("RMQ_PROXY_MAX_DELIVERY_ATTEMPTS", int(cfg.MaxDeliveryAttempts)))
	if v := envOrDefault("RMQ_PROXY_ADVERTISE_ENDPOINT", ""); v != "" {
		cfg.AdvertiseEndpoint = v
	}
}

func envOrDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func envInt32(key string, fallback int32) int32 {
	return int32(envInt(key, int(fallback)))
}

func envInt64(key string, fallback int64) int64 {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
