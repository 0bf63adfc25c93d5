package sound

import (
	"encoding/binary"
	"math"
	"testing"
)

func frame(buf []byte, i int) (l, r float32) {
	l = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*BytesPerFrame:]))
	r = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*BytesPerFrame+4:]))
	return l, r
}

func TestChimeShape(t *testing.T) {
	buf := Chime(0.5)
	if len(buf)%BytesPerFrame != 0 {
		t.Fatalf("len %d is not a whole number of frames", len(buf))
	}
	frames := len(buf) / BytesPerFrame
	if want := int(0.42 * SampleRate); frames != want {
		t.Errorf("frames = %d, want %d", frames, want)
	}

	var peak float64
	for i := 0; i < frames; i++ {
		l, r := frame(buf, i)
		if l != r {
			t.Fatalf("frame %d not mono-in-stereo: %v %v", i, l, r)
		}
		if math.IsNaN(float64(l)) || math.Abs(float64(l)) > 1 {
			t.Fatalf("frame %d out of range: %v", i, l)
		}
		peak = math.Max(peak, math.Abs(float64(l)))
	}
	if peak < 0.05 {
		t.Errorf("chime is silent: peak %v", peak)
	}
	if l, _ := frame(buf, 0); l != 0 {
		t.Errorf("first sample = %v, want 0 (attack from silence)", l)
	}
}

func TestChimePitchClamped(t *testing.T) {
	if string(Chime(-3)) != string(Chime(0)) {
		t.Error("negative pitch not clamped to 0")
	}
	if string(Chime(7)) != string(Chime(1)) {
		t.Error("pitch above 1 not clamped")
	}
}

func TestADSR(t *testing.T) {
	tests := []struct {
		p, want float64
	}{
		{0, 0},
		{0.05, 0.5},
		{0.1, 1},
		{0.5, 0.5},
		{1, 0},
	}
	for _, tt := range tests {
		if got := adsr(tt.p, 0.1, 0.2, 0.5, 0.2); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("adsr(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestSoftSatBounded(t *testing.T) {
	for _, x := range []float64{-10, -1.5, -1, 0, 0.5, 1, 1.5, 10} {
		if y := softSat(x); y < -1 || y > 1 {
			t.Errorf("softSat(%v) = %v", x, y)
		}
	}
}
