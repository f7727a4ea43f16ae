package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"
)

// StorageService uploads public assets (quiz covers, blog images, avatars)
// to Supabase storage buckets.
type StorageService struct {
	client *storage_go.Client
}

func NewStorageService(supabaseURL, supabaseKey string) *StorageService {
	if supabaseURL == "" || supabaseKey == "" {
		return &StorageService{}
	}
	return &StorageService{
		client: storage_go.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil),
	}
}

// Upload stores the file under a random name in the given bucket and returns
// the object path plus its public URL.
func (s *StorageService) Upload(bucket string, file *multipart.FileHeader) (string, string, error) {
	if s.client == nil {
		return "", "", fmt.Errorf("storage is not configured")
	}

	body, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer body.Close()

	head := make([]byte, 512)
	n, err := body.Read(head)
	if err != nil && err != io.EOF {
		return "", "", err
	}
	contentType := http.DetectContentType(head[:n])

	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return "", "", err
	}

	objectPath := uuid.New().String() + filepath.Ext(file.Filename)
	_, err = s.client.UploadFile(bucket, objectPath, body, storage_go.FileOptions{ContentType: &contentType})
	if err != nil {
		return "", "", err
	}

	public := s.client.GetPublicUrl(bucket, objectPath)
	return objectPath, public.SignedURL, nil
}

// Remove deletes an object; a missing object is not an error worth failing
// the request over, so callers usually ignore the result.
func (s *StorageService) Remove(bucket, objectPath string) error {
	if s.client == nil || objectPath == "" {
		return nil
	}
	_, err := s.client.RemoveFile(bucket, []string{objectPath})
	return err
}
