// contains codec implementations to serialize records
package codecs

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

const (
	JSON       = "json"
	Base64JSON = "b64json"
)

type Codec[T any] interface {
	Encode(T) ([]byte, error)
	Decode([]byte) (T, error)
}

// ByName resolves one of the codec names JSON or Base64JSON.
func ByName[T any](name string) (Codec[T], error) {
	switch name {
	case JSON:
		return NewJsonCodec[T](), nil
	case Base64JSON:
		return NewBase64JsonCodec[T](), nil
	default:
		return nil, fmt.Errorf("unknown encoding %q, expected %s or %s", name, JSON, Base64JSON)
	}
}

func NewBase64JsonCodec[T any]() Codec[T] {
	return NewBase64WrapperCodec[T](NewJsonCodec[T]())
}

type JsonCodec[T any] struct{}

func NewJsonCodec[T any]() *JsonCodec[T] {
	return &JsonCodec[T]{}
}

func (codec JsonCodec[T]) Encode(value T) (bytes []byte, err error) {
	return json.Marshal(value)
}

func (codec JsonCodec[T]) Decode(bytes []byte) (value T, err error) {
	err = json.Unmarshal(bytes, &value)
	return value, err
}

type Base64WrapperCodec[T any] struct {
	delegate Codec[T]
	encoding *base64.Encoding
}

func NewBase64WrapperCodec[T any](delegate Codec[T]) *Base64WrapperCodec[T] {
	return &Base64WrapperCodec[T]{
		delegate: delegate,
		encoding: base64.RawStdEncoding,
	}
}

func (codec Base64WrapperCodec[T]) Encode(value T) (bytes []byte, err error) {
	encoded, err := codec.delegate.Encode(value)
	if err != nil {
		return bytes, err
	}
	bytes = make([]byte, codec.encoding.EncodedLen(len(encoded)))
	codec.encoding.Encode(bytes, encoded)
	return bytes, nil
}

func (codec Base64WrapperCodec[T]) Decode(bytes []byte) (value T, err error) {
	decoded := make([]byte, codec.encoding.DecodedLen(len(bytes)))
	n, err := codec.encoding.Decode(decoded, bytes)
	if err != nil {
		return value, err
	}
	return codec.delegate.Decode(decoded[:n])
}
