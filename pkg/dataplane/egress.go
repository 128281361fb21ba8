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

// HandleTCPEgress processes one return frame from a backend. If the frame's
// destination matches a tracked flow, the source address and port are
// rewritten back to the VIP the client dialed so the client sees a coherent
// connection. Untracked traffic passes with TCActPipe; parse and bounds
// failures pass with TCActOK.
func (p *Pipeline) HandleTCPEgress(frame []byte) int {
	p.stats.EgressTotal.Add(1)

	buf := packet.NewBuffer(frame)
	eth, err := buf.EthHdrAt(0)
	if err != nil || eth.EtherType() != packet.EtherTypeIPv4 {
		return TCActOK
	}
	ipHdr, err := buf.IPv4HdrAt(packet.EthHdrLen)
	if err != nil || ipHdr.Protocol() != packet.IPProtoTCP {
		return TCActOK
	}
	tcpHdr, err := buf.TCPHdrAt(packet.EthHdrLen + packet.IPv4HdrLen)
	if err != nil {
		return TCActOK
	}

	// The destination of a return packet is the original client.
	clientKey := bpfmaps.ClientKey{
		IP:   ipHdr.DstAddr(),
		Port: uint32(tcpHdr.Dest()),
	}
	val, ok := p.maps.Connections.Lookup(clientKey)
	if !ok {
		return TCActPipe
	}

	p.log.WithFields(map[string]interface{}{
		"client": clientKey,
		"vip":    val.BackendKey,
	}).Debug("rewriting return packet to VIP")

	// SNAT back to the VIP.
	ipHdr.SetSrcAddr(val.BackendKey.IP)

	if !buf.CheckBounds(packet.EthHdrLen, packet.IPv4HdrLen) {
		return TCActOK
	}

	ipHdr.SetCheck(0)
	ipHdr.SetCheck(packet.FoldCsum(packet.Csum(ipHdr.Header(), 0)))
	// The TCP checksum is zeroed, not recomputed, after the rewrite.
	tcpHdr.SetCheck(0)
	tcpHdr.SetSource(uint16(val.BackendKey.Port))
	p.stats.EgressRewritten.Add(1)

	if tcpHdr.RST() {
		if err := p.maps.Connections.Delete(clientKey); err == nil {
			p.stats.FlowsDeleted.Add(1)
		}
		return TCActPipe
	}

	state := val.State
	moved := AdvanceCloseState(tcpHdr, &state)
	if state == bpfmaps.Closed {
		if err := p.maps.Connections.Delete(clientKey); err == nil {
			p.stats.FlowsDeleted.Add(1)
		}
	} else if moved {
		val.State = state
		if err := p.maps.Connections.Update(clientKey, val); err != nil {
			p.log.WithError(err).WithField("client", clientKey).Warn("failed to update connection state")
		}
	}

	return TCActPipe
}
