/**
 * Copyright (c) 2025, Simeon Miteff.
 *
 * See LICENSE.TXT in the root directory of this source tree.
 */

package apiserver

import (
	"context"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

// UnaryLogging returns an interceptor that logs every RPC with a unique
// request ID.
func UnaryLogging(log logrus.FieldLogger) grpc.UnaryServerInterceptor {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		entry := log.WithFields(logrus.Fields{
			"rpc":        info.FullMethod,
			"request_id": xid.New().String(),
		})
		resp, err := handler(ctx, req)
		if err != nil {
			entry.WithError(err).Warn("rpc failed")
		} else {
			entry.Debug("rpc handled")
		}
		return resp, err
	}
}
