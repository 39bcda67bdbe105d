package mandel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// UniformsSize is the byte size of the uniform record read by the renderer.
const UniformsSize = 32

// OrbitBufferSize is the byte size of an encoded OrbitBuffer.
const OrbitBufferSize = MaxIter * 8

// FrameUniforms are the per-frame parameters handed to the renderer. The
// encoded layout is fixed: zoom@0, aspect@4, offset@8, iter_count@16, then
// 12 bytes of zero padding.
type FrameUniforms struct {
	Zoom      float32
	Aspect    float32
	Offset    [2]float32
	IterCount uint32
	_         [3]uint32
}

// MarshalBinary encodes u in the renderer's little-endian layout.
func (u FrameUniforms) MarshalBinary() ([]byte, error) {
	return u.AppendBinary(make([]byte, 0, UniformsSize))
}

// AppendBinary appends the encoded record to b.
func (u FrameUniforms) AppendBinary(b []byte) ([]byte, error) {
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(u.Zoom))
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(u.Aspect))
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(u.Offset[0]))
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(u.Offset[1]))
	b = binary.LittleEndian.AppendUint32(b, u.IterCount)
	b = append(b, make([]byte, 12)...)
	return b, nil
}

func (u *FrameUniforms) UnmarshalBinary(b []byte) error {
	if len(b) != UniformsSize {
		return fmt.Errorf("uniforms: got %d bytes, want %d", len(b), UniformsSize)
	}
	u.Zoom = math.Float32frombits(binary.LittleEndian.Uint32(b[0:]))
	u.Aspect = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	u.Offset[0] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
	u.Offset[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[12:]))
	u.IterCount = binary.LittleEndian.Uint32(b[16:])
	return nil
}

// OrbitBuffer is the fixed-size orbit storage uploaded to the renderer in
// full every frame. Entries past the frame's IterCount are zero.
type OrbitBuffer [MaxIter]OrbitPoint

// AppendBinary appends the buffer as MaxIter little-endian (re, im) float32
// pairs.
func (o *OrbitBuffer) AppendBinary(b []byte) ([]byte, error) {
	for _, p := range o {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(p[0]))
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(p[1]))
	}
	return b, nil
}

func (o *OrbitBuffer) UnmarshalBinary(b []byte) error {
	if len(b) != OrbitBufferSize {
		return fmt.Errorf("orbit: got %d bytes, want %d", len(b), OrbitBufferSize)
	}
	for i := range o {
		o[i][0] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*8:]))
		o[i][1] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*8+4:]))
	}
	return nil
}

// ErrFrameSize is returned when a frame message has the wrong length.
var ErrFrameSize = errors.New("frame: unexpected message size")

// EncodeFrame appends the wire form of a frame (uniform record followed by
// the orbit buffer) to dst.
func EncodeFrame(dst []byte, u FrameUniforms, orbit *OrbitBuffer) []byte {
	dst, _ = u.AppendBinary(dst)
	dst, _ = orbit.AppendBinary(dst)
	return dst
}

// DecodeFrame parses a message produced by EncodeFrame.
func DecodeFrame(b []byte) (FrameUniforms, *OrbitBuffer, error) {
	var u FrameUniforms
	if len(b) != UniformsSize+OrbitBufferSize {
		return u, nil, fmt.Errorf("%w: %d bytes", ErrFrameSize, len(b))
	}
	if err := u.UnmarshalBinary(b[:UniformsSize]); err != nil {
		return u, nil, err
	}
	orbit := new(OrbitBuffer)
	if err := orbit.UnmarshalBinary(b[UniformsSize:]); err != nil {
		return u, nil, err
	}
	return u, orbit, nil
}
