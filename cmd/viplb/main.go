/**
 * Copyright (c) 2025, Simeon Miteff.
 *
 * See LICENSE.TXT in the root directory of this source tree.
 */

// Command viplb runs the load balancer daemon: the AF_PACKET data path on
// the configured interfaces, the Backends RPC service mutating the shared
// maps, and a prometheus metrics endpoint.
package main

import (
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/simeonmiteff/go-viplb/pkg/apiserver"
	"github.com/simeonmiteff/go-viplb/pkg/capture"
	"github.com/simeonmiteff/go-viplb/pkg/dataplane"
	"github.com/simeonmiteff/go-viplb/pkg/exporter"
)

const defaultConfigLoc = `/etc/viplb/viplb.conf`

var (
	confLoc = flag.String("config-file", defaultConfigLoc, "Location of the configuration file")
	bind    = flag.String("bind", "", "Override the RPC bind address")
	metrics = flag.String("metrics", "", "Override the metrics bind address")
	verbose = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	lg := logrus.New()

	cfg, err := GetConfig(*confLoc)
	if err != nil {
		lg.WithError(err).Fatal("failed to load configuration")
	}
	if *bind != `` {
		cfg.Global.Bind_Address = *bind
	}
	if *metrics != `` {
		cfg.Global.Metrics_Address = *metrics
	}

	level, err := logrus.ParseLevel(cfg.Global.Log_Level)
	if err != nil {
		lg.WithError(err).Fatal("invalid log level")
	}
	if *verbose {
		level = logrus.DebugLevel
	}
	lg.SetLevel(level)

	maps := dataplane.NewMaps(cfg.Global.Max_VIPs, cfg.Global.Max_Flows)
	stats := &dataplane.Stats{}

	redirector, err := capture.NewNeighbourRedirector(lg)
	if err != nil {
		lg.WithError(err).Fatal("failed to open redirect socket")
	}
	defer redirector.Close()

	pipeline := dataplane.NewPipeline(maps, redirector, lg, stats)

	// Attach the data path.
	var captures []*capture.Capture
	for name, cc := range cfg.Capture {
		capt, err := capture.NewCapture(capture.Config{
			Interface: name,
			Pipeline:  pipeline,
			SnapLen:   cc.Snap_Len,
			Log:       lg,
		})
		if err != nil {
			lg.WithError(err).WithField("interface", name).Fatal("failed to attach capture")
		}
		captures = append(captures, capt)
		go func(capt *capture.Capture, name string) {
			if err := capt.Run(); err != nil {
				lg.WithError(err).WithField("interface", name).Error("capture stopped")
			}
		}(capt, name)
		lg.WithField("interface", name).Info("attached data path")
	}

	// Metrics endpoint.
	hostname, _ := os.Hostname()
	connCollector := exporter.NewConnCollector("viplb_control", []string{"peer"}, prometheus.Labels{"hostname": hostname}, func(err error) {
		lg.WithError(err).Warn("dropping control connection from stats")
	})
	prometheus.MustRegister(
		exporter.NewDataplaneCollector("viplb", stats, maps, prometheus.Labels{"hostname": hostname}),
		connCollector,
	)
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(cfg.Global.Metrics_Address, mux); err != nil {
			lg.WithError(err).Error("metrics endpoint failed")
		}
	}()

	// Control plane. The service is the only writer of the BACKENDS map
	// from here on; it shares GATEWAY_INDEXES with the ingress pipeline,
	// which advances the round-robin cursor.
	svc := apiserver.New(maps.Backends, maps.GatewayIndexes, lg)

	lis, err := net.Listen("tcp", cfg.Global.Bind_Address)
	if err != nil {
		lg.WithError(err).WithField("bind", cfg.Global.Bind_Address).Fatal("failed to bind RPC listener")
	}
	tracked := &exporter.Listener{Listener: lis, Collector: connCollector}
	srv := apiserver.NewServer(svc, lg)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		s := <-sig
		lg.WithField("signal", s).Info("shutting down")
		srv.GracefulStop()
		for _, capt := range captures {
			capt.Close()
		}
	}()

	lg.WithField("bind", cfg.Global.Bind_Address).Info("serving backends RPC")
	if err := srv.Serve(tracked); err != nil {
		lg.WithError(err).Fatal("RPC server failed")
	}
}
