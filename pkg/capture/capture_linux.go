//go:build linux

/**
 * Copyright (c) 2025, Simeon Miteff.
 *
 * See LICENSE.TXT in the root directory of this source tree.
 */

package capture

import (
	"errors"
	"fmt"
	"net"
	"sync/atomic"

	"github.com/docker/docker/pkg/parsers/kernel"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/simeonmiteff/go-viplb/pkg/dataplane"
)

// AF_PACKET with sll_pkttype dispatch has been stable for a long time; the
// gate mostly guards against truly ancient kernels.
const (
	minKernel      = 3
	minKernelMajor = 2
	minKernelMinor = 0
)

func checkKernelVersion() error {
	v, err := kernel.GetKernelVersion()
	if err != nil {
		return fmt.Errorf("error getting kernel version: %w", err)
	}
	if kernel.CompareKernelVersion(*v, kernel.VersionInfo{Kernel: minKernel, Major: minKernelMajor, Minor: minKernelMinor}) < 0 {
		return fmt.Errorf("linux kernel is too old for AF_PACKET capture (want >= %d.%d.%d, got %d.%d.%d)",
			minKernel, minKernelMajor, minKernelMinor, v.Kernel, v.Major, v.Minor)
	}
	return nil
}

func htons(v uint16) uint16 {
	return v<<8 | v>>8
}

// Capture is one interface attachment.
type Capture struct {
	name     string
	fd       int
	pipeline *dataplane.Pipeline
	snapLen  int
	log      logrus.FieldLogger
	closed   atomic.Bool
}

// NewCapture opens an AF_PACKET socket bound to the configured interface.
func NewCapture(cfg Config) (*Capture, error) {
	if err := checkKernelVersion(); err != nil {
		return nil, err
	}

	ifi, err := net.InterfaceByName(cfg.Interface)
	if err != nil {
		return nil, fmt.Errorf("interface %s: %w", cfg.Interface, err)
	}

	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW|unix.SOCK_CLOEXEC, int(htons(unix.ETH_P_ALL)))
	if err != nil {
		return nil, fmt.Errorf("AF_PACKET socket: %w", err)
	}
	if err := unix.Bind(fd, &unix.SockaddrLinklayer{
		Protocol: htons(unix.ETH_P_ALL),
		Ifindex:  ifi.Index,
	}); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("bind %s: %w", cfg.Interface, err)
	}

	snapLen := cfg.SnapLen
	if snapLen <= 0 {
		snapLen = DefaultSnapLen
	}

	return &Capture{
		name:     cfg.Interface,
		fd:       fd,
		pipeline: cfg.Pipeline,
		snapLen:  snapLen,
		log:      cfg.logger(),
	}, nil
}

// Run reads frames until Close is called. Frames received from the wire
// feed the ingress pipeline; locally originated frames feed the egress
// pipeline. The single receive buffer is reused across frames.
func (c *Capture) Run() error {
	buf := make([]byte, c.snapLen)
	for {
		n, from, err := unix.Recvfrom(c.fd, buf, 0)
		if err != nil {
			if c.closed.Load() {
				return nil
			}
			if errors.Is(err, unix.EINTR) || errors.Is(err, unix.ENETDOWN) {
				continue
			}
			return fmt.Errorf("recvfrom %s: %w", c.name, err)
		}
		sll, ok := from.(*unix.SockaddrLinklayer)
		if !ok || n <= 0 {
			continue
		}

		frame := buf[:n]
		switch sll.Pkttype {
		case unix.PACKET_HOST, unix.PACKET_OTHERHOST:
			c.pipeline.HandleTCPIngress(frame)
		case unix.PACKET_OUTGOING:
			c.pipeline.HandleTCPEgress(frame)
		}
	}
}

// Close stops the capture and releases the socket.
func (c *Capture) Close() error {
	c.closed.Store(true)
	return unix.Close(c.fd)
}

// NeighbourRedirector transmits frames out of a specific interface through
// a dedicated AF_PACKET socket, the userspace analogue of
// bpf_redirect_neigh. L2 addressing is carried by the frame itself.
type NeighbourRedirector struct {
	fd  int
	log logrus.FieldLogger
}

// NewNeighbourRedirector opens the transmit socket.
func NewNeighbourRedirector(log logrus.FieldLogger) (*NeighbourRedirector, error) {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("AF_PACKET transmit socket: %w", err)
	}
	return &NeighbourRedirector{fd: fd, log: log}, nil
}

// RedirectNeigh implements dataplane.NeighbourRedirector.
func (r *NeighbourRedirector) RedirectNeigh(ifindex uint32, frame []byte) int {
	err := unix.Sendto(r.fd, frame, 0, &unix.SockaddrLinklayer{
		Ifindex: int(ifindex),
		Halen:   6,
	})
	if err != nil {
		r.log.WithError(err).WithField("ifindex", ifindex).Debug("redirect failed")
		return dataplane.TCActShot
	}
	return dataplane.TCActRedirect
}

// Close releases the transmit socket.
func (r *NeighbourRedirector) Close() error {
	return unix.Close(r.fd)
}
