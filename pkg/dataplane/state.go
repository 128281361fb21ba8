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

// AdvanceCloseState moves a tracked flow through the closing half of the
// TCP lifecycle based on the FIN and ACK flags of one observed header. It
// returns true iff the state changed. Only connection termination is
// modelled: tracking starts with the first forwarded packet, so the
// handshake is already behind us.
//
// Ref: https://en.wikipedia.org/wiki/File:Tcp_state_diagram.png
func AdvanceCloseState(hdr packet.TCPHdr, state *bpfmaps.TCPState) bool {
	fin := hdr.FIN()
	ack := hdr.ACK()
	switch *state {
	case bpfmaps.Established:
		// A FIN moves the state to FinWait1.
		if fin {
			*state = bpfmaps.FinWait1
			return true
		}
	case bpfmaps.FinWait1:
		// FIN+ACK must be tested before the single flags: the common
		// FIN|ACK segment goes straight to TimeWait, not FinWait2.
		if fin && ack {
			*state = bpfmaps.TimeWait
			return true
		}
		if fin {
			*state = bpfmaps.Closing
			return true
		}
		if ack {
			*state = bpfmaps.FinWait2
			return true
		}
	case bpfmaps.FinWait2:
		if ack {
			*state = bpfmaps.TimeWait
			return true
		}
	case bpfmaps.Closing:
		if ack {
			*state = bpfmaps.TimeWait
			return true
		}
	case bpfmaps.TimeWait:
		if ack {
			*state = bpfmaps.Closed
			return true
		}
	case bpfmaps.Closed:
	}
	return false
}
