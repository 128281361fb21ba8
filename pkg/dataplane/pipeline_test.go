package dataplane

import (
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"github.com/simeonmiteff/go-viplb/pkg/bpfmaps"
)

type tcpFlags struct {
	syn, fin, rst, ack bool
}

// mkFrame serialises an Ethernet+IPv4+TCP frame with correct lengths and
// checksums.
func mkFrame(t *testing.T, srcIP, dstIP string, srcPort, dstPort uint16, fl tcpFlags) []byte {
	t.Helper()

	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01},
		DstMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x02},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		IHL:      5,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
		SrcIP:    net.ParseIP(srcIP).To4(),
		DstIP:    net.ParseIP(dstIP).To4(),
	}
	tcp := &layers.TCP{
		SrcPort: layers.TCPPort(srcPort),
		DstPort: layers.TCPPort(dstPort),
		SYN:     fl.syn,
		FIN:     fl.fin,
		RST:     fl.rst,
		ACK:     fl.ack,
		Window:  8192,
	}
	if err := tcp.SetNetworkLayerForChecksum(ip); err != nil {
		t.Fatalf("SetNetworkLayerForChecksum: %v", err)
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	if err := gopacket.SerializeLayers(buf, opts, eth, ip, tcp, gopacket.Payload([]byte("payload"))); err != nil {
		t.Fatalf("SerializeLayers: %v", err)
	}
	return buf.Bytes()
}

// decodeFrame pulls the IPv4 and TCP layers back out of a processed frame.
func decodeFrame(t *testing.T, frame []byte) (*layers.IPv4, *layers.TCP) {
	t.Helper()
	pkt := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.Default)
	ipLayer := pkt.Layer(layers.LayerTypeIPv4)
	tcpLayer := pkt.Layer(layers.LayerTypeTCP)
	if ipLayer == nil || tcpLayer == nil {
		t.Fatalf("decoded frame missing layers: %v", pkt)
	}
	return ipLayer.(*layers.IPv4), tcpLayer.(*layers.TCP)
}

// fakeRedirector records redirect calls and returns a fixed verdict.
type fakeRedirector struct {
	calls   int
	ifindex uint32
	lastLen int
	verdict int
}

func (f *fakeRedirector) RedirectNeigh(ifindex uint32, frame []byte) int {
	f.calls++
	f.ifindex = ifindex
	f.lastLen = len(frame)
	if f.verdict == 0 {
		return TCActRedirect
	}
	return f.verdict
}

func newTestPipeline() (*Pipeline, *fakeRedirector) {
	maps := NewMaps(64, 1024)
	red := &fakeRedirector{}
	return NewPipeline(maps, red, nil, nil), red
}

// addVIP installs a VIP with the given backends and seeds the round-robin
// cursor, the way the control plane does on Update.
func addVIP(t *testing.T, p *Pipeline, vip bpfmaps.BackendKey, backends ...bpfmaps.Backend) {
	t.Helper()
	var list bpfmaps.BackendList
	if len(backends) > bpfmaps.BackendsArrayCapacity {
		t.Fatalf("too many backends: %d", len(backends))
	}
	copy(list.Backends[:], backends)
	list.BackendsLen = uint16(len(backends))
	if err := p.Maps().Backends.Update(vip, list); err != nil {
		t.Fatalf("Backends.Update: %v", err)
	}
	if err := p.Maps().GatewayIndexes.Update(vip, 0); err != nil {
		t.Fatalf("GatewayIndexes.Update: %v", err)
	}
}
