/**
 * Copyright (c) 2022, Xerra Earth Observation Institute.
 * Copyright (c) 2025, Simeon Miteff.
 *
 * See LICENSE.TXT in the root directory of this source tree.
 */

// Package exporter publishes prometheus metrics for the load balancer: the
// packet pipeline counters and map occupancy, and TCP-level statistics of
// the control-plane listener connections.
package exporter

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/simeonmiteff/go-viplb/pkg/dataplane"
)

type info struct {
	description *prometheus.Desc
	supplier    func() prometheus.Metric
}

// DataplaneCollector exposes pipeline counters and shared-map occupancy.
type DataplaneCollector struct {
	infos []info
}

// NewDataplaneCollector builds a collector over the given pipeline stats
// and maps.
func NewDataplaneCollector(prefix string, stats *dataplane.Stats, maps *dataplane.Maps, constLabels prometheus.Labels) *DataplaneCollector {
	counter := func(name, help string, value func() uint64) info {
		desc := prometheus.NewDesc(prefix+"_"+name, help, nil, constLabels)
		return info{
			description: desc,
			supplier: func() prometheus.Metric {
				return prometheus.MustNewConstMetric(desc, prometheus.CounterValue, float64(value()))
			},
		}
	}
	gauge := func(name, help string, value func() int) info {
		desc := prometheus.NewDesc(prefix+"_"+name, help, nil, constLabels)
		return info{
			description: desc,
			supplier: func() prometheus.Metric {
				return prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, float64(value()))
			},
		}
	}

	return &DataplaneCollector{
		infos: []info{
			counter("ingress_packets_total", "Frames seen by the ingress pipeline.", stats.IngressTotal.Load),
			counter("ingress_redirects_total", "Frames redirected to a backend.", stats.IngressRedirect.Load),
			counter("ingress_passes_total", "Frames passed to the stack unmodified.", stats.IngressPass.Load),
			counter("egress_packets_total", "Frames seen by the egress pipeline.", stats.EgressTotal.Load),
			counter("egress_rewrites_total", "Return frames rewritten to a VIP.", stats.EgressRewritten.Load),
			counter("flows_created_total", "Connections pinned to a backend.", stats.FlowsCreated.Load),
			counter("flows_deleted_total", "Tracked connections evicted.", stats.FlowsDeleted.Load),
			gauge("tracked_flows", "Entries in the connection-tracking table.", maps.Connections.Len),
			gauge("vips", "VIPs with a backend list installed.", maps.Backends.Len),
		},
	}
}

// Describe implements prometheus.Collector.
func (c *DataplaneCollector) Describe(descs chan<- *prometheus.Desc) {
	for _, info := range c.infos {
		descs <- info.description
	}
}

// Collect implements prometheus.Collector.
func (c *DataplaneCollector) Collect(metrics chan<- prometheus.Metric) {
	for _, info := range c.infos {
		metrics <- info.supplier()
	}
}
