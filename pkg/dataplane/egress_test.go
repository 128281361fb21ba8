package dataplane

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simeonmiteff/go-viplb/pkg/bpfmaps"
	"github.com/simeonmiteff/go-viplb/pkg/packet"
)

// pinFlow forwards one ingress packet so the flow exists in the connection
// table, then returns the client key.
func pinFlow(t *testing.T, p *Pipeline) bpfmaps.ClientKey {
	t.Helper()
	vip := bpfmaps.BackendKey{IP: 0x0a000001, Port: 80}
	addVIP(t, p, vip, bpfmaps.Backend{Daddr: 0xc0a80065, Dport: 8080, Ifindex: 3})
	require.Equal(t, TCActRedirect, p.HandleTCPIngress(mkFrame(t, "1.2.3.4", "10.0.0.1", 5555, 80, tcpFlags{ack: true})))
	return bpfmaps.ClientKey{IP: 0x01020304, Port: 5555}
}

func TestEgressReturnPath(t *testing.T) {
	p, _ := newTestPipeline()
	client := pinFlow(t, p)

	// Return packet from the backend towards the client.
	frame := mkFrame(t, "192.168.0.101", "1.2.3.4", 8080, 5555, tcpFlags{ack: true})
	verdict := p.HandleTCPEgress(frame)
	require.Equal(t, TCActPipe, verdict)

	ip, tcp := decodeFrame(t, frame)
	require.Equal(t, "10.0.0.1", ip.SrcIP.String())
	require.Equal(t, uint16(80), uint16(tcp.SrcPort))
	require.Equal(t, "1.2.3.4", ip.DstIP.String())
	require.Equal(t, uint16(5555), uint16(tcp.DstPort))

	// Valid IPv4 checksum after the rewrite.
	hdr, err := packet.NewBuffer(frame).IPv4HdrAt(packet.EthHdrLen)
	require.NoError(t, err)
	sum := packet.Csum(hdr.Header(), 0)
	for sum>>16 > 0 {
		sum = (sum & 0xffff) + (sum >> 16)
	}
	require.Equal(t, uint64(0xffff), sum)

	// Flow still tracked, still Established.
	entry, ok := p.Maps().Connections.Lookup(client)
	require.True(t, ok)
	require.Equal(t, bpfmaps.Established, entry.State)
}

func TestEgressUntrackedPasses(t *testing.T) {
	p, _ := newTestPipeline()

	frame := mkFrame(t, "192.168.0.101", "5.6.7.8", 8080, 7777, tcpFlags{ack: true})
	require.Equal(t, TCActPipe, p.HandleTCPEgress(frame))

	// Untracked traffic is not rewritten.
	ip, tcp := decodeFrame(t, frame)
	require.Equal(t, "192.168.0.101", ip.SrcIP.String())
	require.Equal(t, uint16(8080), uint16(tcp.SrcPort))
}

func TestEgressParseFailure(t *testing.T) {
	p, _ := newTestPipeline()
	require.Equal(t, TCActOK, p.HandleTCPEgress(nil))
	require.Equal(t, TCActOK, p.HandleTCPEgress([]byte{0xde, 0xad}))
}

func TestEgressRSTEvictsFlow(t *testing.T) {
	p, _ := newTestPipeline()
	client := pinFlow(t, p)

	frame := mkFrame(t, "192.168.0.101", "1.2.3.4", 8080, 5555, tcpFlags{rst: true})
	require.Equal(t, TCActPipe, p.HandleTCPEgress(frame))

	_, ok := p.Maps().Connections.Lookup(client)
	require.False(t, ok, "RST on the return path must evict the flow")
}

func TestEgressCloseProgression(t *testing.T) {
	p, _ := newTestPipeline()
	client := pinFlow(t, p)

	// Backend initiates the close; observe the whole sequence on egress.
	steps := []struct {
		fl        tcpFlags
		wantState bpfmaps.TCPState
		gone      bool
	}{
		{fl: tcpFlags{fin: true}, wantState: bpfmaps.FinWait1},
		{fl: tcpFlags{fin: true, ack: true}, wantState: bpfmaps.TimeWait},
		{fl: tcpFlags{ack: true}, gone: true},
	}
	for i, st := range steps {
		frame := mkFrame(t, "192.168.0.101", "1.2.3.4", 8080, 5555, st.fl)
		require.Equal(t, TCActPipe, p.HandleTCPEgress(frame), "step %d", i)

		entry, ok := p.Maps().Connections.Lookup(client)
		if st.gone {
			require.False(t, ok, "step %d: entry should be evicted", i)
			continue
		}
		require.True(t, ok, "step %d", i)
		require.Equal(t, st.wantState, entry.State, "step %d", i)
	}
}

// Mixed-direction close: ingress and egress share the same state machine
// and table.
func TestCloseAcrossBothDirections(t *testing.T) {
	p, _ := newTestPipeline()
	client := pinFlow(t, p)

	// Client FIN (ingress) -> FinWait1.
	p.HandleTCPIngress(mkFrame(t, "1.2.3.4", "10.0.0.1", 5555, 80, tcpFlags{fin: true}))
	entry, ok := p.Maps().Connections.Lookup(client)
	require.True(t, ok)
	require.Equal(t, bpfmaps.FinWait1, entry.State)

	// Backend FIN+ACK (egress) -> TimeWait.
	p.HandleTCPEgress(mkFrame(t, "192.168.0.101", "1.2.3.4", 8080, 5555, tcpFlags{fin: true, ack: true}))
	entry, ok = p.Maps().Connections.Lookup(client)
	require.True(t, ok)
	require.Equal(t, bpfmaps.TimeWait, entry.State)

	// Final client ACK (ingress) -> Closed, evicted.
	p.HandleTCPIngress(mkFrame(t, "1.2.3.4", "10.0.0.1", 5555, 80, tcpFlags{ack: true}))
	_, ok = p.Maps().Connections.Lookup(client)
	require.False(t, ok)
}
