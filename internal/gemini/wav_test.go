package gemini

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWrapWAVHeader(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	wav := wrapWAV(pcm, 24000)

	if len(wav) != 44+len(pcm) {
		t.Fatalf("expected %d bytes, got %d", 44+len(pcm), len(wav))
	}

	// Golden header for 6 bytes of 24kHz mono 16-bit PCM.
	want := []byte{
		'R', 'I', 'F', 'F',
		42, 0, 0, 0, // 36 + dataSize
		'W', 'A', 'V', 'E',
		'f', 'm', 't', ' ',
		16, 0, 0, 0, // fmt chunk size
		1, 0, // PCM format code
		1, 0, // mono
		0xC0, 0x5D, 0x00, 0x00, // 24000 Hz
		0x80, 0xBB, 0x00, 0x00, // byte rate 48000
		2, 0, // block align
		16, 0, // bits per sample
		'd', 'a', 't', 'a',
		6, 0, 0, 0, // data size
	}
	if !bytes.Equal(wav[:44], want) {
		t.Errorf("header mismatch:\ngot  %v\nwant %v", wav[:44], want)
	}
	if !bytes.Equal(wav[44:], pcm) {
		t.Errorf("payload not copied verbatim")
	}
}

func TestWrapWAVSampleRateDerivedFields(t *testing.T) {
	wav := wrapWAV(make([]byte, 100), 44100)

	if got := binary.LittleEndian.Uint32(wav[24:28]); got != 44100 {
		t.Errorf("sample rate: got %d", got)
	}
	if got := binary.LittleEndian.Uint32(wav[28:32]); got != 88200 {
		t.Errorf("byte rate: got %d, want 88200", got)
	}
	if got := binary.LittleEndian.Uint32(wav[4:8]); got != 136 {
		t.Errorf("riff size: got %d, want 136", got)
	}
}
