package audioio

import (
	"bytes"
	"math"
	"testing"
)

// seekBuffer is the io.WriteSeeker the encoder needs, backed by an
// in-memory byte slice so tests never touch disk.
type seekBuffer struct {
	buf []byte
	pos int64
}

func (s *seekBuffer) Write(p []byte) (int, error) {
	end := s.pos + int64(len(p))
	if end > int64(len(s.buf)) {
		grown := make([]byte, end)
		copy(grown, s.buf)
		s.buf = grown
	}
	copy(s.buf[s.pos:end], p)
	s.pos = end
	return len(p), nil
}

func (s *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		s.pos = offset
	case 1:
		s.pos += offset
	case 2:
		s.pos = int64(len(s.buf)) + offset
	}
	return s.pos, nil
}

func TestWriteReadWAVRoundTrip(t *testing.T) {
	sampleRate := 8000
	n := 1024
	data := make([]float32, n)
	for i := range data {
		data[i] = float32(math.Sin(2 * math.Pi * 200.0 * float64(i) / float64(sampleRate)))
	}

	var sb seekBuffer
	if err := WriteMonoWAVWriter(&sb, data, sampleRate); err != nil {
		t.Fatalf("WriteMonoWAVWriter failed: %v", err)
	}

	signal, rate, err := ReadWAVReader(bytes.NewReader(sb.buf))
	if err != nil {
		t.Fatalf("ReadWAVReader failed: %v", err)
	}
	if rate != sampleRate {
		t.Errorf("sample rate = %d, want %d", rate, sampleRate)
	}
	if len(signal) != n {
		t.Fatalf("decoded %d samples, want %d", len(signal), n)
	}

	// 16-bit PCM round trip: expect close agreement, not bit-exactness.
	for i := 0; i < n; i += 64 {
		diff := signal[i] - float64(data[i])
		if diff > 0.01 || diff < -0.01 {
			t.Errorf("sample %d: got %v, want ~%v", i, signal[i], data[i])
		}
	}
}

func TestReadWAVReaderRejectsGarbage(t *testing.T) {
	_, _, err := ReadWAVReader(bytes.NewReader([]byte("not a wav file at all")))
	if err == nil {
		t.Error("expected an error decoding garbage input, got nil")
	}
}
