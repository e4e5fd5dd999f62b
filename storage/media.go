package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/emanuelalzate12-bit/Proyecto/utils"
)

// PublicPrefix is the URL path uploaded files are served under.
const PublicPrefix = "/uploads"

// MediaStore keeps uploaded images in a single directory on disk.
// Stored files are addressed by the relative URL returned from Save.
type MediaStore struct {
	dir string
}

func NewMediaStore(dir string) *MediaStore {
	return &MediaStore{dir: dir}
}

// Dir returns the directory files are written to.
func (s *MediaStore) Dir() string {
	return s.dir
}

// Save writes the uploaded file under a generated name and returns the
// URL it will be served at, e.g. /uploads/1712345_ab12cd.png. The name
// combines the current time with a random component so two uploads with
// the same original filename never collide.
func (s *MediaStore) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.NewString(), ext)
	dstPath := filepath.Join(s.dir, filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", err
	}

	return PublicPrefix + "/" + filename, nil
}

// Delete removes the file behind a URL returned from Save. Failures are
// logged and swallowed: a missing image must not block deleting the
// record that pointed at it.
func (s *MediaStore) Delete(imageURL string) {
	if imageURL == "" {
		return
	}
	path := filepath.Join(s.dir, filepath.Base(imageURL))
	if err := os.Remove(path); err != nil {
		utils.LogError(err, "media delete "+imageURL)
	}
}

// Exists reports whether the file behind a URL returned from Save is
// still on disk.
func (s *MediaStore) Exists(imageURL string) bool {
	if imageURL == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.dir, filepath.Base(imageURL)))
	return err == nil
}
