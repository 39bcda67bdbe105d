package mandel

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
	"unsafe"
)

func TestFrameUniformsLayout(t *testing.T) {
	if s := unsafe.Sizeof(FrameUniforms{}); s != UniformsSize {
		t.Fatalf("sizeof(FrameUniforms) = %d", s)
	}

	u := FrameUniforms{Zoom: 1.5, Aspect: 16.0 / 9, Offset: [2]float32{-0.25, 3}, IterCount: 1234}
	b, err := u.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(b) != UniformsSize {
		t.Fatalf("len = %d, want %d", len(b), UniformsSize)
	}

	f32 := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b[off:])) }
	if f32(0) != 1.5 || f32(4) != float32(16.0/9) || f32(8) != -0.25 || f32(12) != 3 {
		t.Fatalf("float fields = %v %v %v %v", f32(0), f32(4), f32(8), f32(12))
	}
	if n := binary.LittleEndian.Uint32(b[16:]); n != 1234 {
		t.Fatalf("iter_count = %d", n)
	}
	for i := 20; i < UniformsSize; i++ {
		if b[i] != 0 {
			t.Fatalf("padding byte %d = %#x", i, b[i])
		}
	}

	var back FrameUniforms
	if err := back.UnmarshalBinary(b); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if back != u {
		t.Fatalf("got %+v, want %+v", back, u)
	}
}

func TestEncodeFrame(t *testing.T) {
	v := NewViewState(320, 200)
	f := NewFrameUpdater().Update(v)

	msg := EncodeFrame(nil, f.Uniforms, f.Orbit)
	if len(msg) != UniformsSize+MaxIter*8 {
		t.Fatalf("len = %d", len(msg))
	}

	u, orbit, err := DecodeFrame(msg)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if u != f.Uniforms || *orbit != *f.Orbit {
		t.Fatalf("decoded frame differs")
	}

	if _, _, err := DecodeFrame(msg[:len(msg)-8]); !errors.Is(err, ErrFrameSize) {
		t.Fatalf("short frame: err = %v", err)
	}
}
