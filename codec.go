package main

import (
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

const (
	CODEC_JSONITER string = "jsoniter"
	CODEC_STD      string = "std"
)

// codec is the serialization strategy picked once at startup. Both
// implementations produce the same field layout; only speed differs.
type codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

type jsoniterCodec struct {
	api jsoniter.API
}

func (c *jsoniterCodec) Marshal(v any) ([]byte, error) {
	return c.api.Marshal(v)
}

func (c *jsoniterCodec) Unmarshal(data []byte, v any) error {
	return c.api.Unmarshal(data, v)
}

func (c *jsoniterCodec) Name() string {
	return CODEC_JSONITER
}

type stdCodec struct{}

func (c *stdCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (c *stdCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (c *stdCodec) Name() string {
	return CODEC_STD
}

func selectCodec(name string) (codec, error) {
	switch name {
	case CODEC_JSONITER:
		return &jsoniterCodec{api: jsoniter.ConfigCompatibleWithStandardLibrary}, nil
	case CODEC_STD:
		return &stdCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}
