package blob

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gstorage "google.golang.org/api/storage/v1"
)

const gcsPublicBase = "https://storage.googleapis.com"

var _ Store = (*GCSStore)(nil)

// GCSStore writes objects to a Cloud Storage bucket through the JSON API.
type GCSStore struct {
	objects *gstorage.ObjectsService
	bucket  string
	baseURL string
}

// NewGCSStore builds the store. credentialsFile may be empty to use application default
// credentials; extra options are appended last.
func NewGCSStore(ctx context.Context, bucket, credentialsFile string, opts ...option.ClientOption) (*GCSStore, error) {
	clientOpts := []option.ClientOption{option.WithScopes(gstorage.DevstorageReadWriteScope)}
	if credentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credentialsFile))
	}
	clientOpts = append(clientOpts, opts...)

	svc, err := gstorage.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create storage service: %w", err)
	}

	return &GCSStore{
		objects: gstorage.NewObjectsService(svc),
		bucket:  bucket,
		baseURL: gcsPublicBase + "/" + bucket,
	}, nil
}

func (s *GCSStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	object := &gstorage.Object{
		Name:         key,
		ContentType:  contentType,
		CacheControl: "no-cache",
	}

	_, err := s.objects.Insert(s.bucket, object).
		Media(body, googleapi.ContentType(contentType)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("upload %s to bucket %s: %w", key, s.bucket, err)
	}

	return publicURL(s.baseURL, key), nil
}
