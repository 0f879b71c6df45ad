package blobstore

import (
	"bytes"
	"fmt"

	"remotesync/internal/lib"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

// Client uploads audio blobs into a Supabase storage bucket.
type Client struct {
	storage *storage.Client
	bucket  string
}

func New(baseURL, serviceKey, bucket string) *Client {
	return &Client{
		storage: storage.NewClient(baseURL+"/storage/v1", serviceKey, nil),
		bucket:  bucket,
	}
}

// UploadAudio stores the blob under {teamID}/{userID}/{uuid}.wav and
// returns its public URL.
func (c *Client) UploadAudio(teamID, userID string, audio []byte, contentType string) (string, error) {
	const op = "blobstore.UploadAudio"

	if contentType == "" {
		contentType = "audio/wav"
	}

	objectPath := fmt.Sprintf("%s/%s/%s.wav", teamID, userID, uuid.NewString())

	upsert := true
	options := storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}

	if _, err := c.storage.UploadFile(c.bucket, objectPath, bytes.NewReader(audio), options); err != nil {
		return "", lib.Err(op, err)
	}

	publicURL := c.storage.GetPublicUrl(c.bucket, objectPath)
	return publicURL.SignedURL, nil
}
