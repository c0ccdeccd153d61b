package utils

import (
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

// TypeUrl returns the any-wrapped type URL of a message, empty on failure.
func TypeUrl(src proto.Message) string {
	any, err := anypb.New(src)
	if err != nil {
		logger.Log.Error(err)
		return ""
	}
	return any.GetTypeUrl()
}

// ToAny wraps a message for embedding in a host server's envelope.
func ToAny(msg proto.Message) *anypb.Any {
	data, err := anypb.New(msg)
	if err != nil {
		logger.Log.Error(err)
		return nil
	}
	return data
}
