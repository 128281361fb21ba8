//go:build linux

/**
 * Copyright (c) 2022, Xerra Earth Observation Institute.
 * Copyright (c) 2025, Simeon Miteff.
 *
 * See LICENSE.TXT in the root directory of this source tree.
 */

package exporter

import (
	"golang.org/x/sys/unix"
)

func readTCPInfo(fd int) (*connStats, error) {
	ti, err := unix.GetsockoptTCPInfo(fd, unix.IPPROTO_TCP, unix.TCP_INFO)
	if err != nil {
		return nil, err
	}
	return &connStats{
		State:        ti.State,
		RTTMicros:    ti.Rtt,
		RTTVarMicros: ti.Rttvar,
		RTOMicros:    ti.Rto,
		SndCwnd:      ti.Snd_cwnd,
		TotalRetrans: ti.Total_retrans,
	}, nil
}
