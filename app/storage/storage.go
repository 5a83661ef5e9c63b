package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"
)

// Storage persists uploaded files and yields their public paths.
type Storage interface {
	Save(file *multipart.FileHeader) (SavedFile, error)
	Remove(storedName string) error
}

// SavedFile describes where an upload landed on disk.
type SavedFile struct {
	StoredName string // timestamp-derived name under the upload dir
	PublicPath string // path to serve under /public
}

// DiskStorage writes uploads under <publicDir>/<uploadDir>.
type DiskStorage struct {
	publicDir string
	uploadDir string
	seq       atomic.Int64
}

func NewDiskStorage(publicDir, uploadDir string) (*DiskStorage, error) {
	dir := filepath.Join(publicDir, uploadDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStorage{publicDir: publicDir, uploadDir: uploadDir}, nil
}

// Save stores the multipart file under a collision-resistant name built from the
// current timestamp plus the original extension. A process-local sequence breaks
// ties when two uploads land on the same nanosecond.
func (s *DiskStorage) Save(file *multipart.FileHeader) (SavedFile, error) {
	name := s.storedName(file.Filename)

	src, err := file.Open()
	if err != nil {
		return SavedFile{}, err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.publicDir, s.uploadDir, name))
	if err != nil {
		return SavedFile{}, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return SavedFile{}, err
	}

	return SavedFile{
		StoredName: name,
		PublicPath: "/" + s.uploadDir + "/" + name,
	}, nil
}

func (s *DiskStorage) Remove(storedName string) error {
	return os.Remove(filepath.Join(s.publicDir, s.uploadDir, storedName))
}

func (s *DiskStorage) storedName(original string) string {
	ts := time.Now().UnixNano()
	n := s.seq.Add(1)
	return strconv.FormatInt(ts, 10) + "-" + strconv.FormatInt(n, 10) + filepath.Ext(original)
}
