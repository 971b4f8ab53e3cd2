package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// AudioStore persists uploaded audio files to local disk for the duration
// of a transcription request.
type AudioStore struct {
	dir string
}

// NewAudioStore creates an audio store rooted at dir.
func NewAudioStore(dir string) *AudioStore {
	return &AudioStore{dir: dir}
}

// Save writes an uploaded audio file and returns its path on disk. The
// filename is prefixed with a timestamp so concurrent uploads never collide.
func (s *AudioStore) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	dst := filepath.Join(s.dir, name)

	if err := saveMultipartFile(file, dst); err != nil {
		return "", fmt.Errorf("save audio file: %w", err)
	}

	return dst, nil
}

// Remove deletes a previously saved audio file.
func (s *AudioStore) Remove(path string) error {
	return os.Remove(path)
}

func saveMultipartFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.ReadFrom(src)
	return err
}
