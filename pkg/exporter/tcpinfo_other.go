//go:build !linux

/**
 * Copyright (c) 2022, Xerra Earth Observation Institute.
 * Copyright (c) 2025, Simeon Miteff.
 *
 * See LICENSE.TXT in the root directory of this source tree.
 */

package exporter

import (
	"errors"
)

var errUnsupported = errors.New("tcp connection statistics are only available on linux")

func readTCPInfo(fd int) (*connStats, error) {
	return nil, errUnsupported
}
