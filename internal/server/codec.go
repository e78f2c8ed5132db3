package server

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec replaces Connect's protobuf JSON codec so that plain Go structs can be used as messages.
type jsonCodec struct{}

var _ connect.Codec = jsonCodec{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (jsonCodec) Unmarshal(data []byte, message any) error {
	return json.Unmarshal(data, message)
}

// WithJSONCodec is the codec option both handlers and clients of this service need.
func WithJSONCodec() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
