package shape

import (
	"encoding/json"
	"fmt"
)

// The wire encoding is a discriminated record: the variant's fields
// plus a "type" tag. Field names are the contract between
// heterogeneous clients, so they never change.

// Marshal encodes a shape for the wire.
func Marshal(s Shape) ([]byte, error) {
	switch v := s.(type) {
	case *Rect:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			*Rect
		}{KindRect, v})
	case *Circle:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			*Circle
		}{KindCircle, v})
	case *Diamond:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			*Diamond
		}{KindDiamond, v})
	case *Line:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			*Line
		}{KindLine, v})
	case *Arrow:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			*Arrow
		}{KindArrow, v})
	case *Pencil:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			*Pencil
		}{KindPencil, v})
	default:
		return nil, fmt.Errorf("marshal shape: unknown variant %T", s)
	}
}

// Unmarshal decodes a wire record back into its variant.
func Unmarshal(data []byte) (Shape, error) {
	var head struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("unmarshal shape: %w", err)
	}

	var (
		s   Shape
		err error
	)
	switch head.Type {
	case KindRect:
		v := &Rect{}
		err = json.Unmarshal(data, v)
		s = v
	case KindCircle:
		v := &Circle{}
		err = json.Unmarshal(data, v)
		s = v
	case KindDiamond:
		v := &Diamond{}
		err = json.Unmarshal(data, v)
		s = v
	case KindLine:
		v := &Line{}
		err = json.Unmarshal(data, v)
		s = v
	case KindArrow:
		v := &Arrow{}
		err = json.Unmarshal(data, v)
		s = v
	case KindPencil:
		v := &Pencil{}
		err = json.Unmarshal(data, v)
		s = v
	default:
		return nil, fmt.Errorf("unmarshal shape: unknown type %q", head.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", head.Type, err)
	}
	return s, nil
}

// MarshalScene encodes an ordered shape list, preserving order.
func MarshalScene(sc Scene) ([]byte, error) {
	records := make([]json.RawMessage, len(sc))
	for i, s := range sc {
		b, err := Marshal(s)
		if err != nil {
			return nil, err
		}
		records[i] = b
	}
	return json.Marshal(records)
}

// UnmarshalScene decodes an ordered shape list.
func UnmarshalScene(data []byte) (Scene, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal scene: %w", err)
	}
	sc := make(Scene, 0, len(records))
	for _, r := range records {
		s, err := Unmarshal(r)
		if err != nil {
			return nil, err
		}
		sc = append(sc, s)
	}
	return sc, nil
}
