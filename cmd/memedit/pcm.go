// This file is part of MemEdit.
//
// MemEdit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MemEdit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MemEdit.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/memedit/archivefs"
	"github.com/jetsetilly/memedit/logger"
)

const pcmLogTag = "pcm"

type pcmData struct {
	totalTime  float64 // in seconds
	sampleRate float64

	// 16bit little endian mono samples. taken from the first channel in the
	// case of stereo source files
	data []byte
}

// loadPCM decodes a wav or mp3 file. the sample data is returned as bytes so
// that it can be mapped into the demonstration address space directly.
func loadPCM(fn string) (pcmData, error) {
	p := pcmData{
		data: make([]byte, 0),
	}

	f, _, err := archivefs.Open(fn)
	if err != nil {
		return p, fmt.Errorf("pcm: %w", err)
	}

	switch strings.ToLower(filepath.Ext(fn)) {
	case ".wav":
		dec := wav.NewDecoder(f)
		if dec == nil {
			return p, fmt.Errorf("wav: error decoding")
		}

		if !dec.IsValidFile() {
			return p, fmt.Errorf("wav: not a valid wav file")
		}

		logger.Log(pcmLogTag, "loading from wav file")

		// load all data at once
		var buf *audio.IntBuffer
		buf, err = dec.FullPCMBuffer()
		if err != nil {
			return p, fmt.Errorf("wav: %w", err)
		}

		step := int(dec.NumChans)
		if step < 1 {
			step = 1
		}

		// samples are shifted to a depth of 16 bits
		depth := int(dec.BitDepth)
		if depth == 0 {
			depth = 16
		}

		// copy first channel only of the data stream
		p.data = make([]byte, 0, len(buf.Data)/step*2)
		for i := 0; i < len(buf.Data); i += step {
			v := buf.Data[i]
			if depth > 16 {
				v >>= depth - 16
			} else if depth < 16 {
				v <<= 16 - depth
			}
			p.data = append(p.data, uint8(v), uint8(v>>8))
		}

		// sample rate
		p.sampleRate = float64(dec.SampleRate)

		// total time of recording in seconds
		dur, err := dec.Duration()
		if err != nil {
			return p, fmt.Errorf("wav: %w", err)
		}
		p.totalTime = dur.Seconds()

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return p, fmt.Errorf("mp3: %w", err)
		}

		logger.Log(pcmLogTag, "loading from mp3 file")

		// according to the go-mp3 docs:
		//
		// "The stream is always formatted as 16bit (little endian) 2
		// channels even if the source is single channel MP3. Thus, a
		// sample always consists of 4 bytes."
		p.data, err = leftChannel(dec)
		if err != nil {
			return p, fmt.Errorf("mp3: %w", err)
		}

		p.sampleRate = float64(dec.SampleRate())

		// total time of recording in seconds
		p.totalTime = float64(len(p.data)/2) / p.sampleRate

	default:
		return p, fmt.Errorf("pcm: unsupported file type (%s)", filepath.Ext(fn))
	}

	logger.Logf(pcmLogTag, "sample rate: %0.2fHz", p.sampleRate)
	logger.Logf(pcmLogTag, "total time: %.02fs", p.totalTime)

	return p, nil
}

// leftChannel takes a stream of 16bit stereo samples and returns the left
// channel, the first two bytes of every four. the stream is read through
// io.ReadFull so that a short read from the decoder cannot leave the loop
// misaligned with the sample boundaries.
func leftChannel(r io.Reader) ([]byte, error) {
	data := make([]byte, 0)

	// buffer length must be a multiple of the sample size
	chunk := make([]byte, 4096)

	for {
		n, err := io.ReadFull(r, chunk)
		for i := 0; i+1 < n; i += 4 {
			data = append(data, chunk[i], chunk[i+1])
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return data, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
