/**
 * Copyright (c) 2025, Simeon Miteff.
 *
 * See LICENSE.TXT in the root directory of this source tree.
 */

// Package dataplane implements the per-packet processing pipelines of the
// load balancer: destination NAT towards a round-robin-selected backend on
// ingress, source NAT back to the VIP on egress, and the connection-tracking
// table that pins each TCP flow to one backend until it terminates.
//
// The pipelines run one frame at a time to completion. They never block and
// keep no state outside the shared maps; everything they touch across
// invocations goes through per-key atomic map operations, matching the
// discipline the in-kernel hook runs under.
package dataplane

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/simeonmiteff/go-viplb/pkg/bpfmaps"
)

// Traffic-control verdicts returned by the pipelines.
const (
	// TCActOK hands the frame to the stack unmodified.
	TCActOK = 0
	// TCActShot drops the frame.
	TCActShot = 2
	// TCActPipe continues normal processing with the (possibly rewritten)
	// frame.
	TCActPipe = 3
	// TCActRedirect is produced by a successful neighbour redirect.
	TCActRedirect = 7
)

// NeighbourRedirector delivers a frame through a specific output interface,
// resolving the L2 neighbour internally. It abstracts bpf_redirect_neigh:
// implementations return the verdict the pipeline should propagate,
// TCActRedirect on success or TCActShot when delivery failed.
type NeighbourRedirector interface {
	RedirectNeigh(ifindex uint32, frame []byte) int
}

// Stats are the pipeline counters exposed through the metrics exporter.
// All fields are monotonic.
type Stats struct {
	IngressTotal    atomic.Uint64
	IngressRedirect atomic.Uint64
	IngressPass     atomic.Uint64
	EgressTotal     atomic.Uint64
	EgressRewritten atomic.Uint64
	FlowsCreated    atomic.Uint64
	FlowsDeleted    atomic.Uint64
}

// Maps bundles the shared lookup tables both pipelines operate on. The
// control plane holds the only mutator for Backends; GatewayIndexes and
// Connections are written from the data path.
type Maps struct {
	Backends       *bpfmaps.Hash[bpfmaps.BackendKey, bpfmaps.BackendList]
	GatewayIndexes *bpfmaps.Hash[bpfmaps.BackendKey, uint16]
	Connections    *bpfmaps.LRUHash[bpfmaps.ClientKey, bpfmaps.TCPBackend]
}

// NewMaps allocates the three shared maps with the given bounds.
func NewMaps(maxVIPs, maxFlows int) *Maps {
	return &Maps{
		Backends:       bpfmaps.NewHash[bpfmaps.BackendKey, bpfmaps.BackendList](maxVIPs),
		GatewayIndexes: bpfmaps.NewHash[bpfmaps.BackendKey, uint16](maxVIPs),
		Connections:    bpfmaps.NewLRUHash[bpfmaps.ClientKey, bpfmaps.TCPBackend](maxFlows),
	}
}

// Pipeline processes frames against a set of shared maps.
type Pipeline struct {
	maps     *Maps
	redirect NeighbourRedirector
	log      logrus.FieldLogger
	stats    *Stats
}

// NewPipeline wires a pipeline to its maps and neighbour redirector. stats
// may be shared with an exporter; log may be nil to disable per-packet
// logging.
func NewPipeline(maps *Maps, redirect NeighbourRedirector, log logrus.FieldLogger, stats *Stats) *Pipeline {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	if stats == nil {
		stats = &Stats{}
	}
	return &Pipeline{
		maps:     maps,
		redirect: redirect,
		log:      log,
		stats:    stats,
	}
}

// Stats returns the pipeline's counters.
func (p *Pipeline) Stats() *Stats {
	return p.stats
}

// Maps returns the shared maps the pipeline reads and writes.
func (p *Pipeline) Maps() *Maps {
	return p.maps
}
