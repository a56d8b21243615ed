package handlers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// AudioExtensions are the upload types the transcription service accepts
var AudioExtensions = []string{".mp3", ".wav", ".m4a", ".mp4", ".mpeg", ".mpga", ".ogg", ".webm", ".flac"}

// IsAudioFile reports whether name has a supported audio extension
func IsAudioFile(name string) bool {
	return lo.Contains(AudioExtensions, strings.ToLower(filepath.Ext(name)))
}

// SaveUpload writes an uploaded file into dir under a random name that keeps
// the original extension. The caller removes the file after use.
func SaveUpload(c *gin.Context, header *multipart.FileHeader, dir string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	path := filepath.Join(dir, name)
	if err := c.SaveUploadedFile(header, path); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return path, nil
}
