/**
 * Copyright (c) 2025, Simeon Miteff.
 *
 * See LICENSE.TXT in the root directory of this source tree.
 */

// Command viplbctl is a small client for the Backends RPC service.
//
// Usage:
//
//	viplbctl -server 127.0.0.1:9874 update -vip 10.0.0.1:80 -target 192.168.0.101:8080 -ifindex 3
//	viplbctl -server 127.0.0.1:9874 delete -vip 10.0.0.1:80
package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/simeonmiteff/go-viplb/pkg/apiserver/backendspb"
)

var (
	server  = flag.String("server", "127.0.0.1:9874", "Backends RPC server address")
	timeout = flag.Duration("timeout", 10*time.Second, "RPC timeout")
)

// parseHostPort turns "10.0.0.1:80" into the numeric address and port the
// RPC schema carries.
func parseHostPort(s string) (uint32, uint32, error) {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return 0, 0, err
	}
	ip := net.ParseIP(host).To4()
	if ip == nil {
		return 0, 0, fmt.Errorf("%q is not an IPv4 address", host)
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid port %q: %w", portStr, err)
	}
	return binary.BigEndian.Uint32(ip), uint32(port), nil
}

func main() {
	lg := logrus.New()
	flag.Parse()

	if flag.NArg() < 1 {
		lg.Fatal("expected a subcommand: update or delete")
	}
	sub := flag.Arg(0)

	conn, err := grpc.Dial(*server, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		lg.WithError(err).Fatal("failed to dial server")
	}
	defer conn.Close()
	client := backendspb.NewBackendsClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch sub {
	case "update":
		fs := flag.NewFlagSet("update", flag.ExitOnError)
		vip := fs.String("vip", "", "VIP as ip:port")
		target := fs.String("target", "", "backend as ip:port")
		ifindex := fs.Uint("ifindex", 0, "backend interface index")
		fs.Parse(flag.Args()[1:])

		vipIP, vipPort, err := parseHostPort(*vip)
		if err != nil {
			lg.WithError(err).Fatal("invalid -vip")
		}
		tIP, tPort, err := parseHostPort(*target)
		if err != nil {
			lg.WithError(err).Fatal("invalid -target")
		}

		resp, err := client.Update(ctx, &backendspb.Targets{
			Vip:    &backendspb.Vip{Ip: vipIP, Port: vipPort},
			Target: &backendspb.Target{Daddr: tIP, Dport: tPort, Ifindex: uint32(*ifindex)},
		})
		if err != nil {
			lg.WithError(err).Fatal("update failed")
		}
		fmt.Println(resp.GetConfirmation())

	case "delete":
		fs := flag.NewFlagSet("delete", flag.ExitOnError)
		vip := fs.String("vip", "", "VIP as ip:port")
		fs.Parse(flag.Args()[1:])

		vipIP, vipPort, err := parseHostPort(*vip)
		if err != nil {
			lg.WithError(err).Fatal("invalid -vip")
		}

		resp, err := client.Delete(ctx, &backendspb.Vip{Ip: vipIP, Port: vipPort})
		if err != nil {
			lg.WithError(err).Fatal("delete failed")
		}
		fmt.Println(resp.GetConfirmation())

	default:
		lg.WithField("subcommand", sub).Fatal("unknown subcommand")
	}
}
