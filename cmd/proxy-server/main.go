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

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"

	activityv1 "github.com/novatechflow/rmqproxy/internal/activity/v1"
	activityv2 "github.com/novatechflow/rmqproxy/internal/activity/v2"
	"github.com/novatechflow/rmqproxy/internal/config"
	"github.com/novatechflow/rmqproxy/internal/consumer"
	"github.com/novatechflow/rmqproxy/internal/endpoint"
	"github.com/novatechflow/rmqproxy/internal/forward"
	"github.com/novatechflow/rmqproxy/internal/metrics"
	"github.com/novatechflow/rmqproxy/internal/nameserver"
	"github.com/novatechflow/rmqproxy/internal/producer"
	"github.com/novatechflow/rmqproxy/internal/proxymode"
	"github.com/novatechflow/rmqproxy/internal/relay"
	"github.com/novatechflow/rmqproxy/internal/routecache"
	"github.com/novatechflow/rmqproxy/internal/txheartbeat"
	proxyv1 "github.com/novatechflow/rmqproxy/pkg/gen/proxyv1"
	proxyv2 "github.com/novatechflow/rmqproxy/pkg/gen/proxyv2"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var modeFlag string
	flag.StringVar(&modeFlag, "mode", "", "deployment mode: LOCAL or CLUSTER, overrides RMQ_PROXY_MODE")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}
	if modeFlag != "" {
		cfg.ProxyMode = config.ProxyMode(strings.ToUpper(modeFlag))
	}
	if cfg.ProxyMode != config.ModeLocal && cfg.ProxyMode != config.ModeCluster {
		logger.Error("invalid proxy mode", "mode", cfg.ProxyMode)
		os.Exit(1)
	}
	logger.Info("starting proxy", "mode", cfg.ProxyMode, "grpcPort", cfg.GrpcServerPort)

	ns, err := buildNameServer(ctx, logger)
	if err != nil {
		logger.Error("name-service init failed", "error", err)
		os.Exit(1)
	}

	routes := routecache.New(ns, time.Duration(cfg.RouteCacheTTLMillis)*time.Millisecond)

	relayMgr := relay.New(relay.Config{
		RequestTimeout: time.Duration(cfg.GrpcProxyRelayRequestTimeoutInSeconds) * time.Second,
		ChannelExpiry:  time.Duration(cfg.GrpcClientChannelExpireSeconds) * time.Second,
	})
	relayMgr.Start(ctx)
	defer relayMgr.Shutdown()

	dialTimeout := 5 * time.Second
	dialer := proxymode.NewWireDialer(dialTimeout, relayMgr)
	fwd := forward.NewManager(dialer, logger)

	prod := producer.New(routes, fwd)
	longPollingReserve := time.Duration(cfg.LongPollingReserveTimeInMillis) * time.Millisecond
	cons := consumer.New(routes, fwd, prod, cfg.MaxDeliveryAttempts, longPollingReserve)

	txHeartbeat := txheartbeat.New(routes, fwd, txheartbeat.Config{
		PeriodSecond:  cfg.TransactionHeartbeatPeriodSecond,
		BatchNum:      cfg.TransactionHeartbeatBatchNum,
		FanoutWorkers: cfg.TransactionHeartbeatThreadPoolNums,
	}, logger)
	txHeartbeat.Start(ctx)
	defer txHeartbeat.Shutdown()

	epConverter := buildEndpointConverter(cfg, logger)

	reg := prometheus.NewRegistry()
	metrics.MustRegister(reg)

	srv := grpc.NewServer()
	v1 := &activityv1.Server{Routes: routes, Producer: prod, Consumer: cons, TxHeartbeat: txHeartbeat, Relay: relayMgr, Endpoint: epConverter}
	v2 := &activityv2.Server{Routes: routes, Producer: prod, Consumer: cons, TxHeartbeat: txHeartbeat, Relay: relayMgr, Endpoint: epConverter}
	proxyv1.RegisterMessagingServiceServer(srv, v1)
	proxyv2.RegisterMessagingServiceServer(srv, v2)

	healthAddr := strings.TrimSpace(os.Getenv("RMQ_PROXY_HEALTH_ADDR"))
	if healthAddr == "" {
		healthAddr = ":8080"
	}
	startHealthServer(ctx, logger, healthAddr, reg)

	if err := listenAndServeGRPC(ctx, logger, srv, cfg.GrpcServerPort); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("grpc server error", "error", err)
		fwd.ShutdownAll()
		os.Exit(1)
	}
	fwd.ShutdownAll()
}

func buildNameServer(ctx context.Context, logger *slog.Logger) (nameserver.NameServer, error) {
	endpoints := endpoint.SplitCSV(os.Getenv("RMQ_PROXY_ETCD_ENDPOINTS"))
	if len(endpoints) == 0 {
		logger.Warn("RMQ_PROXY_ETCD_ENDPOINTS not set; using an empty in-memory name service")
		return nameserver.NewInMemory(nil), nil
	}
	return nameserver.NewEtcd(ctx, nameserver.EtcdConfig{
		Endpoints:   endpoints,
		Username:    os.Getenv("RMQ_PROXY_ETCD_USERNAME"),
		Password:    os.Getenv("RMQ_PROXY_ETCD_PASSWORD"),
		DialTimeout: 5 * time.Second,
	})
}

// buildEndpointConverter picks how broker addresses are rewritten into
// client-facing endpoints: LOCAL mode publishes the co-located broker's own
// address, CLUSTER mode fronts the whole fleet behind one advertised
// host:port since individual broker addresses are not reachable from
// outside the cluster.
func buildEndpointConverter(cfg config.Config, logger *slog.Logger) endpoint.Converter {
	if cfg.ProxyMode == config.ModeLocal {
		return endpoint.PassthroughConverter{}
	}
	if cfg.AdvertiseEndpoint == "" {
		logger.Warn("RMQ_PROXY_ADVERTISE_ENDPOINT not set in CLUSTER mode; QueryRoute/QueryAssignment will fail until configured")
		return endpoint.StaticConverter{}
	}
	host, port, err := endpoint.ParseBrokerAddr(cfg.AdvertiseEndpoint)
	if err != nil {
		logger.Error("invalid advertise endpoint, falling back to unconfigured", "error", err)
		return endpoint.StaticConverter{}
	}
	return endpoint.StaticConverter{Endpoint: endpoint.Endpoint{Host: host, Port: port}}
}

func listenAndServeGRPC(ctx context.Context, logger *slog.Logger, srv *grpc.Server, port int32) error {
	ln, err := net.Listen("tcp", ":"+strconv.Itoa(int(port)))
	if err != nil {
		return err
	}
	logger.Info("grpc listening", "addr", ln.Addr().String())
	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()
	return srv.Serve(ln)
}

func startHealthServer(ctx context.Context, logger *slog.Logger, addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready\n"))
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	go func() {
		logger.Info("health listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warn("health server error", "error", err)
		}
	}()
}
