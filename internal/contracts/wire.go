package contracts

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Message is implemented by every gateway contract message.
type Message interface {
	Marshal() ([]byte, error)
	Unmarshal(data []byte) error
}

// encoder appends proto3 fields. Zero values are omitted.
type encoder struct {
	buf []byte
	err error
}

func (e *encoder) string(num protowire.Number, v string) {
	if v == "" {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendString(e.buf, v)
}

func (e *encoder) double(num protowire.Number, v float64) {
	if v == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.Fixed64Type)
	e.buf = protowire.AppendFixed64(e.buf, math.Float64bits(v))
}

func (e *encoder) enum(num protowire.Number, v int32) {
	if v == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, uint64(int64(v)))
}

func (e *encoder) message(num protowire.Number, m Message) {
	if e.err != nil {
		return
	}
	data, err := m.Marshal()
	if err != nil {
		e.err = fmt.Errorf("encode field %d: %w", num, err)
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, data)
}

func (e *encoder) timestamp(num protowire.Number, ts *timestamppb.Timestamp) {
	if ts == nil || e.err != nil {
		return
	}
	data, err := proto.Marshal(ts)
	if err != nil {
		e.err = fmt.Errorf("encode timestamp %d: %w", num, err)
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, data)
}

func (e *encoder) result() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.buf, nil
}

// field is one decoded wire field.
type field struct {
	num    protowire.Number
	typ    protowire.Type
	varint uint64
	fixed  uint64
	bytes  []byte
}

func (f field) string() string { return string(f.bytes) }

func (f field) double() float64 { return math.Float64frombits(f.fixed) }

func (f field) enum() int32 { return int32(f.varint) }

func (f field) message(m Message) error {
	if err := m.Unmarshal(f.bytes); err != nil {
		return fmt.Errorf("decode field %d: %w", f.num, err)
	}
	return nil
}

func (f field) timestamp() (*timestamppb.Timestamp, error) {
	ts := &timestamppb.Timestamp{}
	if err := proto.Unmarshal(f.bytes, ts); err != nil {
		return nil, fmt.Errorf("decode timestamp %d: %w", f.num, err)
	}
	return ts, nil
}

// decode walks the fields of data. Unknown fields are handed to fn and may be ignored.
func decode(data []byte, fn func(f field) error) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("decode tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(data)
		case protowire.Fixed64Type:
			f.fixed, n = protowire.ConsumeFixed64(data)
		case protowire.Fixed32Type:
			var v uint32
			v, n = protowire.ConsumeFixed32(data)
			f.fixed = uint64(v)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(data)
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
		}
		if n < 0 {
			return fmt.Errorf("decode field %d: %w", num, protowire.ParseError(n))
		}
		data = data[n:]

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// enumTable maps proto enum numbers (the slice index) to domain values.
type enumTable[E ~int32, M comparable] []M

func (t enumTable[E, M]) toModel(e E) M {
	if e < 0 || int(e) >= len(t) {
		var zero M
		return zero
	}
	return t[e]
}

func (t enumTable[E, M]) fromModel(m M) E {
	for i, v := range t {
		if v == m {
			return E(i)
		}
	}
	return 0
}
