/**
 * Copyright (c) 2025, Simeon Miteff.
 *
 * See LICENSE.TXT in the root directory of this source tree.
 */

// Command viplbtrace replays a pcap file through the packet pipelines and
// reports the verdict for every frame. It is an offline debugging aid: no
// sockets are opened and nothing is transmitted.
//
// Usage:
//
//	viplbtrace -in capture.pcap -vip 10.0.0.1:80 -target 192.168.0.101:8080 -ifindex 3
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"github.com/google/gopacket/pcapgo"
	"github.com/sirupsen/logrus"

	"github.com/simeonmiteff/go-viplb/pkg/bpfmaps"
	"github.com/simeonmiteff/go-viplb/pkg/dataplane"
	"github.com/simeonmiteff/go-viplb/pkg/packet"
)

var (
	inFile  = flag.String("in", "", "pcap file to replay")
	vip     = flag.String("vip", "", "VIP to install as ip:port (optional)")
	target  = flag.String("target", "", "backend to install as ip:port")
	ifindex = flag.Uint("ifindex", 1, "backend interface index")
	egress  = flag.Bool("egress", false, "run frames through the egress pipeline instead of ingress")
	verbose = flag.Bool("v", false, "enable debug logging")
)

var verdictNames = map[int]string{
	dataplane.TCActOK:       "TC_ACT_OK",
	dataplane.TCActShot:     "TC_ACT_SHOT",
	dataplane.TCActPipe:     "TC_ACT_PIPE",
	dataplane.TCActRedirect: "TC_ACT_REDIRECT",
}

// traceRedirector pretends every redirect succeeds and remembers the
// target interface.
type traceRedirector struct {
	ifindex uint32
}

func (r *traceRedirector) RedirectNeigh(ifindex uint32, frame []byte) int {
	r.ifindex = ifindex
	return dataplane.TCActRedirect
}

func parseHostPort(lg *logrus.Logger, flagName, s string) (uint32, uint32) {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		lg.WithError(err).Fatalf("invalid %s", flagName)
	}
	ip := net.ParseIP(host).To4()
	if ip == nil {
		lg.Fatalf("invalid %s: %q is not an IPv4 address", flagName, host)
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		lg.WithError(err).Fatalf("invalid %s port", flagName)
	}
	return binary.BigEndian.Uint32(ip), uint32(port)
}

func summarize(frame []byte) string {
	buf := packet.NewBuffer(frame)
	ipHdr, err := buf.IPv4HdrAt(packet.EthHdrLen)
	if err != nil {
		return "non-ip"
	}
	tcpHdr, err := buf.TCPHdrAt(packet.EthHdrLen + packet.IPv4HdrLen)
	if err != nil || ipHdr.Protocol() != packet.IPProtoTCP {
		return "non-tcp"
	}
	src := bpfmaps.ClientKey{IP: ipHdr.SrcAddr(), Port: uint32(tcpHdr.Source())}
	dst := bpfmaps.ClientKey{IP: ipHdr.DstAddr(), Port: uint32(tcpHdr.Dest())}
	return fmt.Sprintf("%s -> %s", src, dst)
}

func main() {
	lg := logrus.New()
	flag.Parse()

	if *verbose {
		lg.SetLevel(logrus.DebugLevel)
	}
	if *inFile == `` {
		lg.Fatal("-in is required")
	}

	maps := dataplane.NewMaps(64, 4096)
	if *vip != `` {
		if *target == `` {
			lg.Fatal("-target is required when -vip is given")
		}
		vipIP, vipPort := parseHostPort(lg, "-vip", *vip)
		tIP, tPort := parseHostPort(lg, "-target", *target)

		key := bpfmaps.BackendKey{IP: vipIP, Port: vipPort}
		var list bpfmaps.BackendList
		list.Backends[0] = bpfmaps.Backend{Daddr: tIP, Dport: tPort, Ifindex: uint16(*ifindex)}
		list.BackendsLen = 1
		if err := maps.Backends.Update(key, list); err != nil {
			lg.WithError(err).Fatal("failed to install vip")
		}
		if err := maps.GatewayIndexes.Update(key, 0); err != nil {
			lg.WithError(err).Fatal("failed to seed round-robin cursor")
		}
	}

	red := &traceRedirector{}
	pipeline := dataplane.NewPipeline(maps, red, lg, nil)

	f, err := os.Open(*inFile)
	if err != nil {
		lg.WithError(err).Fatal("failed to open pcap")
	}
	defer f.Close()

	r, err := pcapgo.NewReader(f)
	if err != nil {
		lg.WithError(err).Fatal("failed to parse pcap")
	}

	num := 0
	for {
		data, _, err := r.ReadPacketData()
		if err == io.EOF {
			break
		}
		if err != nil {
			lg.WithError(err).Fatal("failed to read packet")
		}
		num++

		before := summarize(data)
		var verdict int
		if *egress {
			verdict = pipeline.HandleTCPEgress(data)
		} else {
			verdict = pipeline.HandleTCPIngress(data)
		}
		after := summarize(data)

		line := fmt.Sprintf("#%d %s => %s verdict=%s", num, before, after, verdictNames[verdict])
		if verdict == dataplane.TCActRedirect {
			line += fmt.Sprintf(" ifindex=%d", red.ifindex)
		}
		fmt.Println(line)
	}

	fmt.Printf("%d frames, %d tracked flows\n", num, maps.Connections.Len())
}
