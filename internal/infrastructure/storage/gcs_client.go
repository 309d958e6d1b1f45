package storage

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	domainservice "arunika/internal/domain/service"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	projectID  string
}

// NewCloudStorageClient connects to GCS. credentialsJSON may be empty, in
// which case the client falls back to application default credentials.
func NewCloudStorageClient(ctx context.Context, bucketName, projectID, credentialsJSON string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
		projectID:  projectID,
	}, nil
}

func objectName(folder, contentType string) string {
	name := fmt.Sprintf("%s/%s-%s", folder, uuid.New().String(), time.Now().Format("20060102150405"))

	switch contentType {
	case "image/jpeg", "image/jpg":
		name += ".jpg"
	case "image/png":
		name += ".png"
	case "image/gif":
		name += ".gif"
	case "image/webp":
		name += ".webp"
	case "image/svg+xml":
		name += ".svg"
	default:
		name += ".bin"
	}

	return name
}

func (c *CloudStorageClient) UploadImage(ctx context.Context, file io.Reader, contentType string, preset domainservice.ImagePreset) (*domainservice.StoredObject, error) {
	folder := "images"
	if preset.Name != "" {
		folder = preset.Name
	}
	name := objectName(folder, contentType)

	obj := c.client.Bucket(c.bucketName).Object(name)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	// Transformation parameters travel with the object; the image CDN in
	// front of the bucket applies them on delivery.
	wc.Metadata = map[string]string{
		"transform-width":  strconv.Itoa(preset.Width),
		"transform-height": strconv.Itoa(preset.Height),
		"transform-crop":   preset.Crop,
	}
	if preset.Gravity != "" {
		wc.Metadata["transform-gravity"] = preset.Gravity
	}

	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		return nil, fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return nil, fmt.Errorf("failed to set ACL: %v", err)
	}

	return &domainservice.StoredObject{
		URL:      c.publicURL(name),
		RemoteID: name,
	}, nil
}

// UploadRaw stores the payload on the generic-asset path with no
// transformation metadata. Used for vector images.
func (c *CloudStorageClient) UploadRaw(ctx context.Context, file io.Reader, contentType, filename string) (*domainservice.StoredObject, error) {
	name := objectName("assets", contentType)
	if strings.HasSuffix(strings.ToLower(filename), ".svg") && !strings.HasSuffix(name, ".svg") {
		name = strings.TrimSuffix(name, ".bin") + ".svg"
	}

	obj := c.client.Bucket(c.bucketName).Object(name)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		return nil, fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return nil, fmt.Errorf("failed to set ACL: %v", err)
	}

	return &domainservice.StoredObject{
		URL:      c.publicURL(name),
		RemoteID: name,
	}, nil
}

func (c *CloudStorageClient) Delete(ctx context.Context, remoteID string) error {
	obj := c.client.Bucket(c.bucketName).Object(remoteID)
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object %s: %v", remoteID, err)
	}

	return nil
}

func (c *CloudStorageClient) publicURL(name string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, name)
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
