/**
 * Copyright (c) 2025, Simeon Miteff.
 *
 * See LICENSE.TXT in the root directory of this source tree.
 */

package dataplane

import (
	"github.com/simeonmiteff/go-viplb/pkg/bpfmaps"
	"github.com/simeonmiteff/go-viplb/pkg/packet"
)

// HandleTCPIngress processes one frame arriving on a VIP-facing interface.
// For a TCP packet destined to a known VIP it selects (or resumes) a
// backend, rewrites the destination address and port, recomputes the IPv4
// checksum and redirects the frame to the backend's interface. Anything it
// cannot handle passes through with TCActOK: a parse failure, an unknown
// VIP or an empty backend list never drops a packet here.
func (p *Pipeline) HandleTCPIngress(frame []byte) int {
	p.stats.IngressTotal.Add(1)

	buf := packet.NewBuffer(frame)
	eth, err := buf.EthHdrAt(0)
	if err != nil || eth.EtherType() != packet.EtherTypeIPv4 {
		p.stats.IngressPass.Add(1)
		return TCActOK
	}
	ipHdr, err := buf.IPv4HdrAt(packet.EthHdrLen)
	if err != nil || ipHdr.Protocol() != packet.IPProtoTCP {
		p.stats.IngressPass.Add(1)
		return TCActOK
	}
	tcpHdr, err := buf.TCPHdrAt(packet.EthHdrLen + packet.IPv4HdrLen)
	if err != nil {
		p.stats.IngressPass.Add(1)
		return TCActOK
	}

	originalDaddr := ipHdr.DstAddr()
	originalDport := tcpHdr.Dest()

	clientKey := bpfmaps.ClientKey{
		IP:   ipHdr.SrcAddr(),
		Port: uint32(tcpHdr.Source()),
	}

	// The backend responsible for this connection, and the VIP the client
	// dialed. A hit in the connection table resumes both; a miss assigns
	// the next backend in line for the VIP.
	var backend bpfmaps.Backend
	backendKey := bpfmaps.BackendKey{IP: originalDaddr, Port: uint32(originalDport)}
	state := bpfmaps.Established
	newConn := false

	if val, ok := p.maps.Connections.Lookup(clientKey); ok {
		backend = val.Backend
		backendKey = val.BackendKey
		state = val.State
	} else {
		newConn = true

		list, ok := p.maps.Backends.Lookup(backendKey)
		if !ok {
			p.stats.IngressPass.Add(1)
			return TCActOK
		}
		index, ok := p.maps.GatewayIndexes.Lookup(backendKey)
		if !ok {
			p.stats.IngressPass.Add(1)
			return TCActOK
		}

		p.log.WithFields(map[string]interface{}{
			"vip":   backendKey,
			"index": index,
			"len":   list.BackendsLen,
		}).Debug("selecting backend for new connection")

		// A cursor at or past the valid prefix would hand out a
		// zero-value backend.
		if list.BackendsLen <= index {
			p.stats.IngressPass.Add(1)
			return TCActOK
		}
		// Unreachable given the check above, but the in-kernel verifier
		// needs the explicit capacity comparison before the array index.
		if int(index) >= bpfmaps.BackendsArrayCapacity {
			p.stats.IngressPass.Add(1)
			return TCActOK
		}
		backend = list.Backends[index]

		next := index + 1
		if next >= list.BackendsLen {
			next = 0
		}
		if err := p.maps.GatewayIndexes.Update(backendKey, next); err != nil {
			p.log.WithError(err).Warn("failed to advance round-robin cursor")
		}
	}

	// DNAT towards the selected backend.
	ipHdr.SetDstAddr(backend.Daddr)

	// Re-validate bounds after the rewrite before touching the checksum.
	if !buf.CheckBounds(packet.EthHdrLen, packet.IPv4HdrLen) {
		p.stats.IngressPass.Add(1)
		return TCActOK
	}

	ipHdr.SetCheck(0)
	ipHdr.SetCheck(packet.FoldCsum(packet.Csum(ipHdr.Header(), 0)))
	// The TCP checksum is zeroed, not recomputed, after the rewrite.
	tcpHdr.SetCheck(0)
	tcpHdr.SetDest(uint16(backend.Dport))

	action := p.redirect.RedirectNeigh(uint32(backend.Ifindex), buf.Frame())
	if action == TCActRedirect {
		p.stats.IngressRedirect.Add(1)
	}

	if newConn {
		entry := bpfmaps.TCPBackend{
			Backend:    backend,
			BackendKey: backendKey,
			State:      state,
		}
		// A failed insert is tolerated: the next packet of the flow is
		// simply treated as new and re-pinned.
		if err := p.maps.Connections.Update(clientKey, entry); err != nil {
			p.log.WithError(err).WithField("client", clientKey).Warn("failed to record new connection")
		} else {
			p.stats.FlowsCreated.Add(1)
		}
		return action
	}

	if tcpHdr.RST() {
		if err := p.maps.Connections.Delete(clientKey); err == nil {
			p.stats.FlowsDeleted.Add(1)
		}
		return action
	}

	moved := AdvanceCloseState(tcpHdr, &state)
	if state == bpfmaps.Closed {
		if err := p.maps.Connections.Delete(clientKey); err == nil {
			p.stats.FlowsDeleted.Add(1)
		}
	} else if moved {
		entry := bpfmaps.TCPBackend{
			Backend:    backend,
			BackendKey: backendKey,
			State:      state,
		}
		if err := p.maps.Connections.Update(clientKey, entry); err != nil {
			p.log.WithError(err).WithField("client", clientKey).Warn("failed to update connection state")
		}
	}

	return action
}
