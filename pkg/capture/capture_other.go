//go:build !linux

/**
 * Copyright (c) 2025, Simeon Miteff.
 *
 * See LICENSE.TXT in the root directory of this source tree.
 */

package capture

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var errUnsupported = errors.New("AF_PACKET capture is only available on linux")

// Capture is one interface attachment. It is unavailable on this platform.
type Capture struct{}

// NewCapture is unavailable on this platform.
func NewCapture(cfg Config) (*Capture, error) {
	return nil, errUnsupported
}

// Run is unavailable on this platform.
func (c *Capture) Run() error {
	return errUnsupported
}

// Close is unavailable on this platform.
func (c *Capture) Close() error {
	return errUnsupported
}

// NeighbourRedirector is unavailable on this platform.
type NeighbourRedirector struct{}

// NewNeighbourRedirector is unavailable on this platform.
func NewNeighbourRedirector(log logrus.FieldLogger) (*NeighbourRedirector, error) {
	return nil, errUnsupported
}

// RedirectNeigh is unavailable on this platform.
func (r *NeighbourRedirector) RedirectNeigh(ifindex uint32, frame []byte) int {
	return 0
}

// Close is unavailable on this platform.
func (r *NeighbourRedirector) Close() error {
	return errUnsupported
}
