// Package audioio provides the WAV decode/encode collaborator the pitch
// tracker's library surface deliberately leaves external: signal framing
// and resampling are the core's job, turning bytes on disk into a PCM
// signal is not.
package audioio

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"
)

// ReadWAV decodes a WAV file at path into a mono float64 PCM signal,
// downmixing multi-channel input by averaging channels per frame, and
// returns its sample rate.
func ReadWAV(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return ReadWAVReader(f)
}

// ReadWAVReader is ReadWAV for an already-open stream, used by the CLI to
// support reading from stdin.
func ReadWAVReader(r io.ReadSeeker) ([]float64, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("audioio: not a valid WAV stream")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, fmt.Errorf("audioio: invalid WAV buffer")
	}

	ch := buf.Format.NumChannels
	frames := len(buf.Data) / ch
	signal := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < ch; c++ {
			sum += float64(buf.Data[i*ch+c])
		}
		signal[i] = sum / float64(ch)
	}
	return signal, buf.Format.SampleRate, nil
}

// WriteMonoWAV encodes a mono float32 PCM buffer to a 16-bit WAV file at
// path. It exists to build test fixtures in-process rather than shipping
// pre-rendered audio files alongside the tests.
func WriteMonoWAV(path string, data []float32, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteMonoWAVWriter(f, data, sampleRate)
}

// WriteMonoWAVWriter is WriteMonoWAV against an already-open writer.
func WriteMonoWAVWriter(w io.WriteSeeker, data []float32, sampleRate int) error {
	enc := wav.NewEncoder(w, sampleRate, 16, 1, 1)
	defer enc.Close()

	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: 1,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
	return enc.Write(buf)
}
