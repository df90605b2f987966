// Package osc implements a minimal OSC 1.0 codec: encoding and decoding of
// address patterns, type-tagged arguments, and bundles over a byte slice.
// The transport layer (internal/udptransport) hands decoded datagrams up
// as (address, args) pairs; it never sees the wire format directly.
package osc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrMalformedPacket is returned by Decode when a datagram is truncated,
// mis-padded, or carries an unknown type tag. Decoding never partially
// succeeds: a bad packet is rejected whole, so a garbled datagram can't
// silently eat part of the stream.
var ErrMalformedPacket = errors.New("osc: malformed packet")

// ErrBadArgument is returned by Encode when an argument's type has no OSC
// wire representation.
var ErrBadArgument = errors.New("osc: unsupported argument type")

// Bool is the OSC 1.0 boolean argument type: it carries no payload bytes,
// only the 'T' or 'F' type tag.
type Bool bool

// Blob is an OSC binary blob argument (size-prefixed, then padded).
type Blob []byte

// Message is a decoded, non-bundle OSC packet.
type Message struct {
	Address string
	Args    []any
}

// Bundle is a decoded OSC bundle: a timetag plus a sequence of nested
// elements, each itself a Message or Bundle. The core never emits bundles
// (§4.1) but must be able to decode one arriving from a well-behaved peer.
type Bundle struct {
	TimeTag  uint64
	Elements []any // Message or *Bundle
}

// Encode serializes address and args into an OSC 1.0 message datagram.
// Supported argument types: int32/int, float32/float64, string, Blob,
// and Bool. Any other type is rejected with ErrBadArgument.
func Encode(address string, args []any) ([]byte, error) {
	var buf bytes.Buffer

	writePaddedString(&buf, address)

	tags := make([]byte, 0, len(args)+1)
	tags = append(tags, ',')

	var argBuf bytes.Buffer
	for _, a := range args {
		tag, err := writeArg(&argBuf, a)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	writePaddedBytes(&buf, append(tags, 0))
	buf.Write(argBuf.Bytes())

	return buf.Bytes(), nil
}

func writeArg(buf *bytes.Buffer, a any) (byte, error) {
	switch v := a.(type) {
	case int32:
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], uint32(v))
		buf.Write(tmp[:])
		return 'i', nil
	case int:
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], uint32(int32(v)))
		buf.Write(tmp[:])
		return 'i', nil
	case float32:
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], math.Float32bits(v))
		buf.Write(tmp[:])
		return 'f', nil
	case float64:
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], math.Float32bits(float32(v)))
		buf.Write(tmp[:])
		return 'f', nil
	case string:
		writePaddedString(buf, v)
		return 's', nil
	case Blob:
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], uint32(len(v)))
		buf.Write(tmp[:])
		writePaddedBytes(buf, []byte(v))
		return 'b', nil
	case []byte:
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], uint32(len(v)))
		buf.Write(tmp[:])
		writePaddedBytes(buf, v)
		return 'b', nil
	case Bool:
		if v {
			return 'T', nil
		}
		return 'F', nil
	case bool:
		if v {
			return 'T', nil
		}
		return 'F', nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrBadArgument, a)
	}
}

// writePaddedString writes s, a null terminator, and zero-pad bytes up to
// the next 4-byte boundary (OSC 1.0 §3: strings are always terminated).
func writePaddedString(buf *bytes.Buffer, s string) {
	writePaddedBytes(buf, append([]byte(s), 0))
}

// writePaddedBytes pads b (which must already include any terminator) to a
// 4-byte boundary with zero bytes.
func writePaddedBytes(buf *bytes.Buffer, b []byte) {
	buf.Write(b)
	if pad := (4 - len(b)%4) % 4; pad > 0 {
		buf.Write(make([]byte, pad))
	}
}

// Decode parses a raw UDP datagram into either a *Message or a *Bundle.
// It returns ErrMalformedPacket for truncated data, bad padding, or an
// unrecognized type tag — never a partially-decoded result.
func Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty packet", ErrMalformedPacket)
	}
	if bytes.HasPrefix(data, []byte("#bundle\x00")) {
		return decodeBundle(data)
	}
	return decodeMessage(data)
}

func decodeMessage(data []byte) (*Message, error) {
	address, rest, err := readPaddedString(data)
	if err != nil {
		return nil, err
	}
	if address == "" || address[0] != '/' {
		return nil, fmt.Errorf("%w: address must start with '/'", ErrMalformedPacket)
	}

	if len(rest) == 0 {
		return &Message{Address: address}, nil
	}

	tagStr, rest, err := readPaddedString(rest)
	if err != nil {
		return nil, err
	}
	if len(tagStr) == 0 || tagStr[0] != ',' {
		return nil, fmt.Errorf("%w: missing type tag comma", ErrMalformedPacket)
	}
	tags := tagStr[1:]

	args := make([]any, 0, len(tags))
	for _, tag := range []byte(tags) {
		var arg any
		switch tag {
		case 'i':
			if len(rest) < 4 {
				return nil, fmt.Errorf("%w: truncated int32", ErrMalformedPacket)
			}
			arg = int32(binary.BigEndian.Uint32(rest[:4]))
			rest = rest[4:]
		case 'f':
			if len(rest) < 4 {
				return nil, fmt.Errorf("%w: truncated float32", ErrMalformedPacket)
			}
			arg = math.Float32frombits(binary.BigEndian.Uint32(rest[:4]))
			rest = rest[4:]
		case 's':
			var s string
			s, rest, err = readPaddedString(rest)
			if err != nil {
				return nil, err
			}
			arg = s
		case 'b':
			if len(rest) < 4 {
				return nil, fmt.Errorf("%w: truncated blob length", ErrMalformedPacket)
			}
			n := int(binary.BigEndian.Uint32(rest[:4]))
			rest = rest[4:]
			padded := n + (4-n%4)%4
			if n < 0 || padded > len(rest) {
				return nil, fmt.Errorf("%w: truncated blob", ErrMalformedPacket)
			}
			arg = Blob(append([]byte(nil), rest[:n]...))
			rest = rest[padded:]
		case 'T':
			arg = Bool(true)
		case 'F':
			arg = Bool(false)
		default:
			return nil, fmt.Errorf("%w: unknown type tag %q", ErrMalformedPacket, tag)
		}
		args = append(args, arg)
	}

	return &Message{Address: address, Args: args}, nil
}

func decodeBundle(data []byte) (*Bundle, error) {
	_, rest, err := readPaddedString(data) // "#bundle\0"
	if err != nil {
		return nil, err
	}
	if len(rest) < 8 {
		return nil, fmt.Errorf("%w: truncated bundle timetag", ErrMalformedPacket)
	}
	timeTag := binary.BigEndian.Uint64(rest[:8])
	rest = rest[8:]

	var elements []any
	for len(rest) > 0 {
		if len(rest) < 4 {
			return nil, fmt.Errorf("%w: truncated bundle element size", ErrMalformedPacket)
		}
		size := int(binary.BigEndian.Uint32(rest[:4]))
		rest = rest[4:]
		if size < 0 || size > len(rest) {
			return nil, fmt.Errorf("%w: truncated bundle element", ErrMalformedPacket)
		}
		elem, err := Decode(rest[:size])
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
		rest = rest[size:]
	}

	return &Bundle{TimeTag: timeTag, Elements: elements}, nil
}

// readPaddedString reads a null-terminated, 4-byte-padded string from the
// front of data and returns it along with the remaining bytes.
func readPaddedString(data []byte) (string, []byte, error) {
	idx := bytes.IndexByte(data, 0)
	if idx < 0 {
		return "", nil, fmt.Errorf("%w: unterminated string", ErrMalformedPacket)
	}
	s := string(data[:idx])

	total := idx + 1
	padded := total + (4-total%4)%4
	if padded > len(data) {
		return "", nil, fmt.Errorf("%w: bad string padding", ErrMalformedPacket)
	}
	for _, b := range data[total:padded] {
		if b != 0 {
			return "", nil, fmt.Errorf("%w: non-zero padding byte", ErrMalformedPacket)
		}
	}

	return s, data[padded:], nil
}
