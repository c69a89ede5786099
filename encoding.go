package xangle

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"deedles.dev/xangle/approx"
	"gopkg.in/yaml.v3"
)

// Angles are encoded as their bare radian value with no unit attached,
// and decoding reproduces that value exactly.

// ErrBadLength indicates binary data of the wrong size for the angle
// being decoded into.
var ErrBadLength = errors.New("bad length")

func (a Angle[F]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.rad)
}

func (a *Angle[F]) UnmarshalJSON(data []byte) error {
	var r F
	err := json.Unmarshal(data, &r)
	if err != nil {
		return fmt.Errorf("unmarshal angle: %w", err)
	}

	a.rad = r
	return nil
}

func (a Angle[F]) MarshalYAML() (any, error) {
	return a.rad, nil
}

func (a *Angle[F]) UnmarshalYAML(node *yaml.Node) error {
	var r F
	err := node.Decode(&r)
	if err != nil {
		return fmt.Errorf("unmarshal angle: %w", err)
	}

	a.rad = r
	return nil
}

func (a Angle[F]) MarshalText() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(a.rad), 'g', -1, approx.Bits[F]()), nil
}

func (a *Angle[F]) UnmarshalText(text []byte) error {
	r, err := strconv.ParseFloat(string(text), approx.Bits[F]())
	if err != nil {
		return fmt.Errorf("unmarshal angle: %w", err)
	}

	a.rad = F(r)
	return nil
}

// MarshalBinary encodes the angle as the little-endian IEEE 754 bits of
// its radian value, four bytes for float32 and eight for float64.
func (a Angle[F]) MarshalBinary() ([]byte, error) {
	if approx.Bits[F]() == 32 {
		return binary.LittleEndian.AppendUint32(nil, math.Float32bits(float32(a.rad))), nil
	}
	return binary.LittleEndian.AppendUint64(nil, math.Float64bits(float64(a.rad))), nil
}

func (a *Angle[F]) UnmarshalBinary(data []byte) error {
	size := approx.Bits[F]() / 8
	if len(data) != size {
		return fmt.Errorf("unmarshal angle: expected %v bytes, got %v: %w", size, len(data), ErrBadLength)
	}

	if size == 4 {
		a.rad = F(math.Float32frombits(binary.LittleEndian.Uint32(data)))
		return nil
	}
	a.rad = F(math.Float64frombits(binary.LittleEndian.Uint64(data)))
	return nil
}
