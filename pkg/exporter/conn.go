/**
 * Copyright (c) 2022, Xerra Earth Observation Institute.
 * Copyright (c) 2025, Simeon Miteff.
 *
 * See LICENSE.TXT in the root directory of this source tree.
 */

package exporter

import (
	"fmt"
	"net"
	"sync"

	"github.com/higebu/netfd"
	"github.com/prometheus/client_golang/prometheus"
)

// connStats is the subset of kernel TCP information exported per tracked
// connection.
type connStats struct {
	State        uint8
	RTTMicros    uint32
	RTTVarMicros uint32
	RTOMicros    uint32
	SndCwnd      uint32
	TotalRetrans uint32
}

type connInfo struct {
	description *prometheus.Desc
	supplier    func(stats *connStats, labelValues []string) prometheus.Metric
}

type connEntry struct {
	fd     int
	labels []string
}

// ConnCollector exports TCP-level statistics for a set of live
// connections, typically the control-plane listener's. Connections whose
// statistics can no longer be read are dropped from the set.
type ConnCollector struct {
	conns  map[net.Conn]connEntry
	mu     sync.Mutex
	logger func(error)
	infos  []connInfo
}

// NewConnCollector creates a collector with metrics prefixed by prefix.
// logger receives errors for connections that are removed because their
// statistics became unreadable; it must be non-nil.
func NewConnCollector(prefix string, variableLabels []string, constLabels prometheus.Labels, logger func(error)) *ConnCollector {
	gauge := func(name, help string, value func(stats *connStats) float64) connInfo {
		desc := prometheus.NewDesc(fmt.Sprintf("%s_%s", prefix, name), help, variableLabels, constLabels)
		return connInfo{
			description: desc,
			supplier: func(stats *connStats, labelValues []string) prometheus.Metric {
				return prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, value(stats), labelValues...)
			},
		}
	}

	return &ConnCollector{
		conns:  make(map[net.Conn]connEntry),
		logger: logger,
		infos: []connInfo{
			gauge("state", "Connection state, see include/net/tcp_states.h.", func(s *connStats) float64 { return float64(s.State) }),
			gauge("rtt_us", "Smoothed round-trip time in microseconds.", func(s *connStats) float64 { return float64(s.RTTMicros) }),
			gauge("rtt_var_us", "Round-trip time variance in microseconds.", func(s *connStats) float64 { return float64(s.RTTVarMicros) }),
			gauge("rto_us", "Retransmission timeout in microseconds.", func(s *connStats) float64 { return float64(s.RTOMicros) }),
			gauge("snd_cwnd", "Congestion window in segments.", func(s *connStats) float64 { return float64(s.SndCwnd) }),
			gauge("total_retrans", "Total retransmitted segments.", func(s *connStats) float64 { return float64(s.TotalRetrans) }),
		},
	}
}

// Describe implements prometheus.Collector.
func (t *ConnCollector) Describe(descs chan<- *prometheus.Desc) {
	for _, info := range t.infos {
		descs <- info.description
	}
}

// Collect implements prometheus.Collector.
func (t *ConnCollector) Collect(metrics chan<- prometheus.Metric) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for conn, entry := range t.conns {
		stats, err := readTCPInfo(entry.fd)
		if err != nil {
			t.logger(fmt.Errorf("error getting connection tcpinfo (removing conn %v -> %v): %w", conn.LocalAddr(), conn.RemoteAddr(), err))
			delete(t.conns, conn)
			continue
		}
		for _, info := range t.infos {
			metrics <- info.supplier(stats, entry.labels)
		}
	}
}

// Add starts tracking conn with the given label values.
func (t *ConnCollector) Add(conn net.Conn, labels []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.conns[conn] = connEntry{
		fd:     netfd.GetFdFromConn(conn),
		labels: labels,
	}
}

// Remove stops tracking conn.
func (t *ConnCollector) Remove(conn net.Conn) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.conns, conn)
}

// Listener tracks every accepted connection in a ConnCollector until the
// connection closes. It is used to observe the control-plane listener.
type Listener struct {
	net.Listener
	Collector *ConnCollector
}

// Accept implements net.Listener.
func (l *Listener) Accept() (net.Conn, error) {
	conn, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}
	l.Collector.Add(conn, []string{conn.RemoteAddr().String()})
	return &trackedConn{Conn: conn, collector: l.Collector}, nil
}

type trackedConn struct {
	net.Conn
	collector *ConnCollector
	closeOnce sync.Once
}

// Close implements net.Conn.
func (c *trackedConn) Close() error {
	c.closeOnce.Do(func() {
		c.collector.Remove(c.Conn)
	})
	return c.Conn.Close()
}
