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

package config

import "testing"

func TestDefaultIsClusterMode(t *testing.T) {
	cfg := Default()
	if cfg.ProxyMode != ModeCluster {
		t.Fatalf("ProxyMode = %q, want %q", cfg.ProxyMode, ModeCluster)
	}
	if cfg.GrpcServerPort == 0 {
		t.Fatal("GrpcServerPort must have a non-zero default")
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("RMQ_PROXY_HOME", t.TempDir())
	t.Setenv("RMQ_PROXY_MODE", "local")
	t.Setenv("RMQ_PROXY_GRPC_SERVER_PORT", "9001")
	t.Setenv("RMQ_PROXY_MAX_DELIVERY_ATTEMPTS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ProxyMode != ModeLocal {
		t.Fatalf("ProxyMode = %q, want %q", cfg.ProxyMode, ModeLocal)
	}
	if cfg.GrpcServerPort != 9001 {
		t.Fatalf("GrpcServerPort = %d, want 9001", cfg.GrpcServerPort)
	}
	if cfg.MaxDeliveryAttempts != 3 {
		t.Fatalf("MaxDeliveryAttempts = %d, want 3", cfg.MaxDeliveryAttempts)
	}
}

func TestLoadIgnoresMalformedEnvInt(t *testing.T) {
	t.Setenv("RMQ_PROXY_HOME", t.TempDir())
	t.Setenv("RMQ_PROXY_GRPC_SERVER_PORT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GrpcServerPort != Default().GrpcServerPort {
		t.Fatalf("GrpcServerPort = %d, want default %d", cfg.GrpcServerPort, Default().GrpcServerPort)
	}
}

func TestLoadWithoutHomeUsesDefaults(t *testing.T) {
	t.Setenv("RMQ_PROXY_HOME", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NamesrvAddr != Default().NamesrvAddr {
		t.Fatalf("NamesrvAddr = %q, want %q", cfg.NamesrvAddr, Default().NamesrvAddr)
	}
}
