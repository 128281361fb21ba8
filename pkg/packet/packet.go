/**
 * Copyright (c) 2025, Simeon Miteff.
 *
 * See LICENSE.TXT in the root directory of this source tree.
 */

// Package packet provides bounds-checked access to protocol headers inside a
// raw Ethernet frame. Header views read and write the frame in place; every
// view is handed out only after proving that the requested offset plus the
// header length fits inside the buffer, mirroring the discipline the
// in-kernel verifier forces on the traffic-control hook.
package packet

import (
	"encoding/binary"
	"errors"
)

const (
	// EthHdrLen is the length of an untagged Ethernet header.
	EthHdrLen = 14
	// IPv4HdrLen is the length of an IPv4 header without options.
	IPv4HdrLen = 20
	// TCPHdrLen is the length of a TCP header without options.
	TCPHdrLen = 20

	// EtherTypeIPv4 is the Ethernet protocol number for IPv4.
	EtherTypeIPv4 = 0x0800
	// IPProtoTCP is the IP protocol number for TCP.
	IPProtoTCP = 6
)

// ErrOutOfBounds is returned when a requested header does not fit inside the
// frame. Pipelines translate it into a pass-through verdict rather than an
// error: a short or mangled frame is never dropped on our account.
var ErrOutOfBounds = errors.New("packet: header out of bounds")

// Buffer wraps a single raw frame. The zero value is an empty frame.
type Buffer struct {
	frame []byte
}

// NewBuffer wraps frame without copying it.
func NewBuffer(frame []byte) Buffer {
	return Buffer{frame: frame}
}

// Frame returns the underlying frame bytes, including any rewrites applied
// through header views.
func (b Buffer) Frame() []byte {
	return b.frame
}

// Len returns the frame length in bytes.
func (b Buffer) Len() int {
	return len(b.frame)
}

// CheckBounds reports whether n bytes at the given offset lie entirely
// within the frame. This is the re-validation the pipelines run after a
// header rewrite, equivalent to comparing data+offset+n against data_end.
func (b Buffer) CheckBounds(offset, n int) bool {
	return offset >= 0 && n >= 0 && offset+n <= len(b.frame)
}

func (b Buffer) slice(offset, n int) ([]byte, error) {
	if !b.CheckBounds(offset, n) {
		return nil, ErrOutOfBounds
	}
	return b.frame[offset : offset+n], nil
}

// EthHdrAt returns a view of the Ethernet header at the given offset.
func (b Buffer) EthHdrAt(offset int) (EthHdr, error) {
	s, err := b.slice(offset, EthHdrLen)
	if err != nil {
		return EthHdr{}, err
	}
	return EthHdr{b: s}, nil
}

// IPv4HdrAt returns a view of the IPv4 header at the given offset.
func (b Buffer) IPv4HdrAt(offset int) (IPv4Hdr, error) {
	s, err := b.slice(offset, IPv4HdrLen)
	if err != nil {
		return IPv4Hdr{}, err
	}
	return IPv4Hdr{b: s}, nil
}

// TCPHdrAt returns a view of the TCP header at the given offset.
func (b Buffer) TCPHdrAt(offset int) (TCPHdr, error) {
	s, err := b.slice(offset, TCPHdrLen)
	if err != nil {
		return TCPHdr{}, err
	}
	return TCPHdr{b: s}, nil
}

// EthHdr is a view of an Ethernet header.
type EthHdr struct {
	b []byte
}

// EtherType returns the Ethernet protocol number.
func (h EthHdr) EtherType() uint16 {
	return binary.BigEndian.Uint16(h.b[12:14])
}

// IPv4Hdr is a view of an IPv4 header. Addresses are exposed as host-order
// integers (0x0A000001 is 10.0.0.1); conversion to and from wire order
// happens inside the accessors and nowhere else.
type IPv4Hdr struct {
	b []byte
}

// Protocol returns the transport protocol number.
func (h IPv4Hdr) Protocol() uint8 {
	return h.b[9]
}

// SrcAddr returns the source address as a host-order integer.
func (h IPv4Hdr) SrcAddr() uint32 {
	return binary.BigEndian.Uint32(h.b[12:16])
}

// DstAddr returns the destination address as a host-order integer.
func (h IPv4Hdr) DstAddr() uint32 {
	return binary.BigEndian.Uint32(h.b[16:20])
}

// SetSrcAddr rewrites the source address from a host-order integer.
func (h IPv4Hdr) SetSrcAddr(addr uint32) {
	binary.BigEndian.PutUint32(h.b[12:16], addr)
}

// SetDstAddr rewrites the destination address from a host-order integer.
func (h IPv4Hdr) SetDstAddr(addr uint32) {
	binary.BigEndian.PutUint32(h.b[16:20], addr)
}

// Check returns the header checksum field.
func (h IPv4Hdr) Check() uint16 {
	return binary.BigEndian.Uint16(h.b[10:12])
}

// SetCheck stores the header checksum field.
func (h IPv4Hdr) SetCheck(csum uint16) {
	binary.BigEndian.PutUint16(h.b[10:12], csum)
}

// Header returns the raw header bytes for checksum accumulation.
func (h IPv4Hdr) Header() []byte {
	return h.b
}

// TCPHdr is a view of a TCP header. Ports are host-order integers.
type TCPHdr struct {
	b []byte
}

// Source returns the source port.
func (h TCPHdr) Source() uint16 {
	return binary.BigEndian.Uint16(h.b[0:2])
}

// Dest returns the destination port.
func (h TCPHdr) Dest() uint16 {
	return binary.BigEndian.Uint16(h.b[2:4])
}

// SetSource rewrites the source port.
func (h TCPHdr) SetSource(port uint16) {
	binary.BigEndian.PutUint16(h.b[0:2], port)
}

// SetDest rewrites the destination port.
func (h TCPHdr) SetDest(port uint16) {
	binary.BigEndian.PutUint16(h.b[2:4], port)
}

// Check returns the TCP checksum field.
func (h TCPHdr) Check() uint16 {
	return binary.BigEndian.Uint16(h.b[16:18])
}

// SetCheck stores the TCP checksum field.
func (h TCPHdr) SetCheck(csum uint16) {
	binary.BigEndian.PutUint16(h.b[16:18], csum)
}

// FIN reports whether the FIN flag is set.
func (h TCPHdr) FIN() bool {
	return h.b[13]&0x01 != 0
}

// SYN reports whether the SYN flag is set.
func (h TCPHdr) SYN() bool {
	return h.b[13]&0x02 != 0
}

// RST reports whether the RST flag is set.
func (h TCPHdr) RST() bool {
	return h.b[13]&0x04 != 0
}

// ACK reports whether the ACK flag is set.
func (h TCPHdr) ACK() bool {
	return h.b[13]&0x10 != 0
}
