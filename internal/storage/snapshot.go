// Package storage publishes the anonymous-read content snapshot blob.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// SnapshotKey is the fixed identifier the public site reads from.
const SnapshotKey = "public/content-snapshot.json"

type SnapshotStore struct {
	client *s3.Client
	bucket string
}

func NewSnapshotStore(client *s3.Client, bucket string) *SnapshotStore {
	return &SnapshotStore{client: client, bucket: bucket}
}

// Publish replaces the published blob with the given snapshot.
func (s *SnapshotStore) Publish(ctx context.Context, snap *types.PublishedSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(SnapshotKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put snapshot object: %w", err)
	}

	return nil
}

// Fetch reads the published blob. A missing blob means no import has
// ever succeeded and maps to types.ErrNotSynced, not a fetch failure.
func (s *SnapshotStore) Fetch(ctx context.Context) (*types.PublishedSnapshot, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(SnapshotKey),
	})
	if err != nil {
		var noKey *s3types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, types.ErrNotSynced
		}
		return nil, fmt.Errorf("get snapshot object: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read snapshot object: %w", err)
	}

	var snap types.PublishedSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot object: %w", err)
	}

	return &snap, nil
}
