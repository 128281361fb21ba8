/**
 * Copyright (c) 2025, Simeon Miteff.
 *
 * See LICENSE.TXT in the root directory of this source tree.
 */

// Package capture attaches the packet pipelines to network interfaces with
// AF_PACKET sockets: received frames run through the ingress pipeline,
// locally originated frames through the egress pipeline, and redirect
// verdicts are delivered by transmitting the rewritten frame out of the
// backend's interface. It stands in for the in-kernel traffic-control hook
// when the program runs as a plain userspace daemon; loading an actual
// kernel program is a deployment concern outside this package.
package capture

import (
	"github.com/sirupsen/logrus"

	"github.com/simeonmiteff/go-viplb/pkg/dataplane"
)

// DefaultSnapLen is the receive buffer size for a single frame.
const DefaultSnapLen = 65536

// Config describes one interface attachment.
type Config struct {
	// Interface is the name of the interface to attach to.
	Interface string
	// Pipeline receives the unicast frames seen on the interface, both
	// received and locally originated; broadcast and multicast frames are
	// not passed to it.
	Pipeline *dataplane.Pipeline
	// SnapLen bounds the captured frame size; DefaultSnapLen if zero.
	SnapLen int
	// Log may be nil to disable per-attachment logging.
	Log logrus.FieldLogger
}

func (c *Config) logger() logrus.FieldLogger {
	if c.Log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		return l
	}
	return c.Log.WithField("interface", c.Interface)
}
