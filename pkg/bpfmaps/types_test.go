package bpfmaps

import (
	"reflect"
	"testing"
)

func TestSerializedSizes(t *testing.T) {
	tests := []struct {
		name string
		blob func() ([]byte, error)
		want int
	}{
		{name: "BackendKey", blob: BackendKey{}.MarshalBinary, want: BackendKeySize},
		{name: "Backend", blob: Backend{}.MarshalBinary, want: BackendSize},
		{name: "BackendList", blob: BackendList{}.MarshalBinary, want: BackendListSize},
		{name: "ClientKey", blob: ClientKey{}.MarshalBinary, want: ClientKeySize},
		{name: "TCPBackend", blob: TCPBackend{}.MarshalBinary, want: TCPBackendSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.blob()
			if err != nil {
				t.Fatalf("MarshalBinary: %v", err)
			}
			if len(b) != tt.want {
				t.Errorf("serialized size = %d, want %d", len(b), tt.want)
			}
		})
	}
}

func TestBackendListRoundTrip(t *testing.T) {
	var in BackendList
	in.Backends[0] = Backend{Daddr: 0xc0a80065, Dport: 8080, Ifindex: 3}
	in.Backends[1] = Backend{Daddr: 0xc0a80066, Dport: 8081, Ifindex: 4}
	in.BackendsLen = 2

	blob, err := in.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var out BackendList
	if err := out.UnmarshalBinary(blob); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip mismatch: got len=%d first=%+v", out.BackendsLen, out.Backends[0])
	}
}

func TestTCPBackendRoundTrip(t *testing.T) {
	in := TCPBackend{
		Backend:    Backend{Daddr: 0xc0a80065, Dport: 8080, Ifindex: 3},
		BackendKey: BackendKey{IP: 0x0a000001, Port: 80},
		State:      TimeWait,
	}
	blob, err := in.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var out TCPBackend
	if err := out.UnmarshalBinary(blob); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestUnmarshalShortBuffer(t *testing.T) {
	var k BackendKey
	if err := k.UnmarshalBinary(make([]byte, BackendKeySize-1)); err == nil {
		t.Error("UnmarshalBinary accepted a short buffer")
	}
	var l BackendList
	if err := l.UnmarshalBinary(make([]byte, BackendListSize+1)); err == nil {
		t.Error("UnmarshalBinary accepted an oversized buffer")
	}
}

func TestBackendKeyString(t *testing.T) {
	k := BackendKey{IP: 0x0a000001, Port: 80}
	if got, want := k.String(), "10.0.0.1:80"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTCPStateString(t *testing.T) {
	tests := []struct {
		state TCPState
		want  string
	}{
		{Established, "established"},
		{FinWait1, "fin-wait-1"},
		{FinWait2, "fin-wait-2"},
		{Closing, "closing"},
		{TimeWait, "time-wait"},
		{Closed, "closed"},
		{TCPState(42), "unknown(42)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("TCPState(%d).String() = %q, want %q", uint8(tt.state), got, tt.want)
		}
	}
}
