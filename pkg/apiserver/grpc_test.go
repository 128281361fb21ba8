package apiserver

import (
	"context"
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/simeonmiteff/go-viplb/pkg/apiserver/backendspb"
	"github.com/simeonmiteff/go-viplb/pkg/bpfmaps"
	"github.com/simeonmiteff/go-viplb/pkg/dataplane"
)

// clientFrame serialises a client-to-VIP Ethernet+IPv4+TCP frame.
func clientFrame(t *testing.T, srcIP string, srcPort uint16, dstIP string, dstPort uint16) []byte {
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
		ACK:     true,
		Window:  8192,
	}
	if err := tcp.SetNetworkLayerForChecksum(ip); err != nil {
		t.Fatalf("SetNetworkLayerForChecksum: %v", err)
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	if err := gopacket.SerializeLayers(buf, opts, eth, ip, tcp); err != nil {
		t.Fatalf("SerializeLayers: %v", err)
	}
	return buf.Bytes()
}

// startBufServer runs the RPC server over an in-memory listener and
// returns a connected client.
func startBufServer(t *testing.T, svc *Service) backendspb.BackendsClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := NewServer(svc, nil)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.Dial("bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return backendspb.NewBackendsClient(conn)
}

func TestUpdateDeleteOverGRPC(t *testing.T) {
	svc, _, _ := newTestService(8)
	client := startBufServer(t, svc)
	ctx := context.Background()

	resp, err := client.Update(ctx, vipTargets(0x0a000001, 80, 0xc0a80065, 8080, 3))
	require.NoError(t, err)
	require.Equal(t, "success, vip 10.0.0.1:80 was updated", resp.GetConfirmation())

	resp, err = client.Delete(ctx, &backendspb.Vip{Ip: 0x0a000001, Port: 80})
	require.NoError(t, err)
	require.Equal(t, "success, vip 10.0.0.1:80 was deleted", resp.GetConfirmation())

	resp, err = client.Delete(ctx, &backendspb.Vip{Ip: 0x0a000001, Port: 80})
	require.NoError(t, err)
	require.Equal(t, "success, vip 10.0.0.1:80 did not exist", resp.GetConfirmation())
}

type recordingRedirector struct {
	ifindex uint32
}

func (r *recordingRedirector) RedirectNeigh(ifindex uint32, frame []byte) int {
	r.ifindex = ifindex
	return dataplane.TCActRedirect
}

// Update over gRPC, then forward a packet through the ingress pipeline:
// the control plane and data path meet only through the shared maps.
func TestUpdateThenForward(t *testing.T) {
	maps := dataplane.NewMaps(16, 256)
	svc := New(maps.Backends, maps.GatewayIndexes, nil)
	client := startBufServer(t, svc)

	_, err := client.Update(context.Background(), vipTargets(0x0a000001, 80, 0xc0a80065, 8080, 3))
	require.NoError(t, err)

	red := &recordingRedirector{}
	pipe := dataplane.NewPipeline(maps, red, nil, nil)

	frame := clientFrame(t, "1.2.3.4", 5555, "10.0.0.1", 80)
	require.Equal(t, dataplane.TCActRedirect, pipe.HandleTCPIngress(frame))
	require.Equal(t, uint32(3), red.ifindex)

	entry, ok := maps.Connections.Lookup(bpfmaps.ClientKey{IP: 0x01020304, Port: 5555})
	require.True(t, ok)
	require.Equal(t, bpfmaps.BackendKey{IP: 0x0a000001, Port: 80}, entry.BackendKey)
	require.Equal(t, bpfmaps.Established, entry.State)

	// Deleting the VIP afterwards does not unpin the flow.
	_, err = client.Delete(context.Background(), &backendspb.Vip{Ip: 0x0a000001, Port: 80})
	require.NoError(t, err)
	require.Equal(t, dataplane.TCActRedirect, pipe.HandleTCPIngress(clientFrame(t, "1.2.3.4", 5555, "10.0.0.1", 80)))
}
