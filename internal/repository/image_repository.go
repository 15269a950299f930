package repository

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ImageRepository keeps uploaded images in a GridFS bucket, one file per key.
type ImageRepository struct {
	bucket *gridfs.Bucket
}

func NewImageRepository(client *mongo.Client, dbName, bucketName string) (*ImageRepository, error) {
	bucket, err := gridfs.NewBucket(
		client.Database(dbName),
		options.GridFSBucket().SetName(bucketName),
	)
	if err != nil {
		return nil, fmt.Errorf("ImageRepository: new bucket: %w", err)
	}
	return &ImageRepository{bucket: bucket}, nil
}

// Put stores the content under key with its content type.
func (r *ImageRepository) Put(ctx context.Context, key, contentType string, content io.Reader) error {
	stream, err := r.bucket.OpenUploadStream(
		key,
		options.GridFSUpload().SetMetadata(bson.D{{Key: "contentType", Value: contentType}}),
	)
	if err != nil {
		return fmt.Errorf("ImageRepository.Put: open stream: %w", err)
	}
	defer stream.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := stream.SetWriteDeadline(deadline); err != nil {
			return fmt.Errorf("ImageRepository.Put: deadline: %w", err)
		}
	}

	if _, err := io.Copy(stream, content); err != nil {
		_ = stream.Abort()
		return fmt.Errorf("ImageRepository.Put: copy: %w", err)
	}
	if err := stream.Close(); err != nil {
		return fmt.Errorf("ImageRepository.Put: close: %w", err)
	}
	return nil
}

// Open returns a reader over the newest file stored under key and its
// content type. The caller closes the reader.
func (r *ImageRepository) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	stream, err := r.bucket.OpenDownloadStreamByName(key)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("ImageRepository.Open: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetReadDeadline(deadline)
	}

	contentType := "application/octet-stream"
	if file := stream.GetFile(); file != nil && file.Metadata != nil {
		if v, ok := file.Metadata.Lookup("contentType").StringValueOK(); ok && v != "" {
			contentType = v
		}
	}
	return stream, contentType, nil
}
