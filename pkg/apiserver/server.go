/**
 * Copyright (c) 2025, Simeon Miteff.
 *
 * See LICENSE.TXT in the root directory of this source tree.
 */

// Package apiserver exposes the control-plane RPC surface of the load
// balancer: Update and Delete calls that mutate the VIP-to-backend mapping
// consumed by the packet pipelines.
//
// The service is constructed with the control plane's write handles to the
// BACKENDS and GATEWAY_INDEXES maps and never hands them out. BACKENDS has
// no other writer; GATEWAY_INDEXES is also written by the ingress pipeline,
// which advances the round-robin cursor. Every mutation the service makes
// is serialised through one mutex even though the RPC framework dispatches
// handlers concurrently; data-path readers observe whole values.
package apiserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/simeonmiteff/go-viplb/pkg/apiserver/backendspb"
	"github.com/simeonmiteff/go-viplb/pkg/bpfmaps"
)

// Service implements the Backends RPC service.
type Service struct {
	backendspb.UnimplementedBackendsServer

	mu       sync.Mutex
	backends *bpfmaps.Hash[bpfmaps.BackendKey, bpfmaps.BackendList]
	gateways *bpfmaps.Hash[bpfmaps.BackendKey, uint16]
	log      logrus.FieldLogger
}

// New wraps the map mutator handles in a Service. The caller must not
// retain other writers to the maps, apart from the ingress pipeline's
// cursor updates to gateways.
func New(backends *bpfmaps.Hash[bpfmaps.BackendKey, bpfmaps.BackendList], gateways *bpfmaps.Hash[bpfmaps.BackendKey, uint16], log logrus.FieldLogger) *Service {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Service{
		backends: backends,
		gateways: gateways,
		log:      log,
	}
}

func ipString(ip uint32) string {
	return net.IPv4(byte(ip>>24), byte(ip>>16), byte(ip>>8), byte(ip)).String()
}

// Update binds a target to a VIP. The first Update for a VIP creates its
// backend list and seeds the round-robin cursor; subsequent Updates append
// further targets, or refresh the interface index of a target already in
// the list. Flows pinned before an Update keep their original backend.
func (s *Service) Update(ctx context.Context, targets *backendspb.Targets) (*backendspb.Confirmation, error) {
	vip := targets.GetVip()
	if vip == nil {
		return nil, status.Error(codes.InvalidArgument, "missing vip ip and port")
	}
	target := targets.GetTarget()
	if target == nil {
		return nil, status.Error(codes.InvalidArgument, "missing targets for vip")
	}

	key := bpfmaps.BackendKey{
		IP:   vip.GetIp(),
		Port: vip.GetPort(),
	}
	backend := bpfmaps.Backend{
		Daddr:   target.GetDaddr(),
		Dport:   target.GetDport(),
		Ifindex: uint16(target.GetIfindex()),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, existed := s.backends.Lookup(key)
	replaced := false
	for i := 0; i < int(list.BackendsLen); i++ {
		if list.Backends[i].Daddr == backend.Daddr && list.Backends[i].Dport == backend.Dport {
			list.Backends[i] = backend
			replaced = true
			break
		}
	}
	if !replaced {
		if int(list.BackendsLen) >= bpfmaps.BackendsArrayCapacity {
			return nil, status.Errorf(codes.ResourceExhausted, "vip %s:%d already has %d backends", ipString(key.IP), key.Port, bpfmaps.BackendsArrayCapacity)
		}
		list.Backends[list.BackendsLen] = backend
		list.BackendsLen++
	}

	if err := s.backends.Update(key, list); err != nil {
		return nil, status.Errorf(codes.Internal, "failure: %s", err)
	}
	if !existed {
		if err := s.gateways.Update(key, 0); err != nil {
			// Roll the list back so a later Update retries from scratch.
			if derr := s.backends.Delete(key); derr != nil {
				s.log.WithError(derr).Error("failed to roll back backend list")
			}
			return nil, status.Errorf(codes.Internal, "failure: %s", err)
		}
	}

	s.log.WithFields(logrus.Fields{
		"vip":      key,
		"daddr":    ipString(backend.Daddr),
		"dport":    backend.Dport,
		"ifindex":  backend.Ifindex,
		"backends": list.BackendsLen,
	}).Info("updated vip")

	return &backendspb.Confirmation{
		Confirmation: fmt.Sprintf("success, vip %s:%d was updated", ipString(vip.GetIp()), vip.GetPort()),
	}, nil
}

// Delete removes a VIP and its round-robin cursor. Deleting a VIP that
// does not exist is a success: delete is idempotent. Flows already pinned
// keep their backend until they terminate.
func (s *Service) Delete(ctx context.Context, vip *backendspb.Vip) (*backendspb.Confirmation, error) {
	if vip == nil {
		return nil, status.Error(codes.InvalidArgument, "missing vip ip and port")
	}

	key := bpfmaps.BackendKey{
		IP:   vip.GetIp(),
		Port: vip.GetPort(),
	}
	addr := ipString(vip.GetIp())

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.backends.Delete(key)
	switch {
	case err == nil:
	case errors.Is(err, bpfmaps.ErrNotFound):
		return &backendspb.Confirmation{
			Confirmation: fmt.Sprintf("success, vip %s:%d did not exist", addr, vip.GetPort()),
		}, nil
	default:
		return nil, status.Errorf(codes.Internal, "failure: %s", err)
	}

	if err := s.gateways.Delete(key); err != nil && !errors.Is(err, bpfmaps.ErrNotFound) {
		return nil, status.Errorf(codes.Internal, "failure: %s", err)
	}

	s.log.WithField("vip", key).Info("deleted vip")

	return &backendspb.Confirmation{
		Confirmation: fmt.Sprintf("success, vip %s:%d was deleted", addr, vip.GetPort()),
	}, nil
}

// NewServer builds a grpc.Server with the service and logging interceptor
// registered.
func NewServer(svc *Service, log logrus.FieldLogger) *grpc.Server {
	srv := grpc.NewServer(grpc.UnaryInterceptor(UnaryLogging(log)))
	backendspb.RegisterBackendsServer(srv, svc)
	return srv
}

// Serve runs the RPC server on lis until it fails or is stopped.
func Serve(lis net.Listener, svc *Service, log logrus.FieldLogger) error {
	return NewServer(svc, log).Serve(lis)
}

// ListenAndServe binds addr and runs the RPC server on it.
func ListenAndServe(addr string, svc *Service, log logrus.FieldLogger) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return Serve(lis, svc, log)
}
