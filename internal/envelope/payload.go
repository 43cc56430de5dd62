package envelope

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Kind tags the shape a payload holds.
type Kind int

const (
	Absent Kind = iota
	Entity
	Collection
)

func (k Kind) String() string {
	switch k {
	case Entity:
		return "entity"
	case Collection:
		return "list"
	default:
		return "absent"
	}
}

// Payload is the result field of a Response.
//
// Produced payloads hold a Go value; decoded payloads hold the raw JSON and
// are converted only by Decode.
type Payload struct {
	kind  Kind
	value any
	raw   jsoniter.RawMessage
}

// EntityPayload holds a single entity, or nothing when v is nil.
func EntityPayload(v any) Payload {
	if v == nil {
		return Payload{}
	}
	return Payload{kind: Entity, value: v}
}

// ListPayload holds a list of entities.
func ListPayload[T any](items []T) Payload {
	if items == nil {
		items = []T{}
	}
	return Payload{kind: Collection, value: items}
}

// Kind reports the payload's shape.
func (p Payload) Kind() Kind { return p.kind }

// IsAbsent reports whether the payload carries no result.
func (p Payload) IsAbsent() bool { return p.kind == Absent }

// MarshalJSON implements json.Marshaler.
func (p Payload) MarshalJSON() ([]byte, error) {
	switch {
	case p.kind == Absent:
		return []byte("null"), nil
	case p.raw != nil:
		return p.raw, nil
	default:
		return json.Marshal(p.value)
	}
}

// UnmarshalJSON implements json.Unmarshaler. The shape is taken from the
// first token: null is absent, an array is a list, anything else an entity.
func (p *Payload) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*p = Payload{}
	case trimmed[0] == '[':
		*p = Payload{kind: Collection, raw: append(jsoniter.RawMessage(nil), trimmed...)}
	default:
		*p = Payload{kind: Entity, raw: append(jsoniter.RawMessage(nil), trimmed...)}
	}
	return nil
}

// Decode converts the payload into T. It fails with ErrAbsent when there is
// no result and with a descriptive error when the shape does not fit T.
func Decode[T any](p Payload) (T, error) {
	var out T
	if p.kind == Absent {
		return out, ErrAbsent
	}
	raw := p.raw
	if raw == nil {
		b, err := json.Marshal(p.value)
		if err != nil {
			return out, fmt.Errorf("envelope: encode %s result: %w", p.kind, err)
		}
		raw = b
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("envelope: decode %s result into %T: %w", p.kind, out, err)
	}
	return out, nil
}
