package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleTranscript is a short consultation as the transcription service
// would return it.
const SampleTranscript = "Der Patient klagt über Kopfschmerzen. Verdacht auf Migräne. Es wird Ruhe empfohlen."

// SampleReport is a four-line report as the generator would return it.
const SampleReport = "1. Symptome: Kopfschmerzen seit drei Tagen.\n" +
	"2. Verdachtsdiagnose: Migräne.\n" +
	"3. Therapieempfehlung: Es wird Ruhe empfohlen.\n" +
	"4. Abschluss: Wiedervorstellung bei Bedarf."

// SampleSession holds the form fields of a typical submission.
var SampleSession = struct {
	Practice  string
	Patient   string
	BirthDate string
}{
	Practice:  "Hausarztpraxis Dr. Meier",
	Patient:   "Max Müller",
	BirthDate: "01.02.1960",
}

// CreateTestAudioFile creates a minimal valid WAV file in a temp directory
func CreateTestAudioFile(t *testing.T, filename string) string {
	t.Helper()

	fullPath := filepath.Join(t.TempDir(), filepath.Base(filename))

	wavHeader := []byte{
		0x52, 0x49, 0x46, 0x46, // "RIFF"
		0x24, 0x08, 0x00, 0x00, // File size (2084 bytes)
		0x57, 0x41, 0x56, 0x45, // "WAVE"
		0x66, 0x6D, 0x74, 0x20, // "fmt "
		0x10, 0x00, 0x00, 0x00, // Chunk size
		0x01, 0x00, // Audio format (PCM)
		0x01, 0x00, // Channels (mono)
		0x80, 0x3E, 0x00, 0x00, // Sample rate (16000)
		0x00, 0x7D, 0x00, 0x00, // Byte rate
		0x02, 0x00, // Block align
		0x10, 0x00, // Bits per sample
		0x64, 0x61, 0x74, 0x61, // "data"
		0x00, 0x08, 0x00, 0x00, // Data size (2048 bytes)
	}

	// silence
	data := append(wavHeader, make([]byte, 2048)...)
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		t.Fatalf("Failed to create test audio file: %v", err)
	}

	return fullPath
}
