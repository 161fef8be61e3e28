package cache

import "github.com/vmihailenco/msgpack/v5"

// Codec encodes cache entries
type Codec interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

type msgpackCodec struct{}

// NewMsgpackCodec returns msgpack entry codec
func NewMsgpackCodec() Codec {
	return msgpackCodec{}
}

func (c msgpackCodec) Marshal(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (c msgpackCodec) Unmarshal(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}
