package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/kjk/properties"
)

// Config describes an S3-compatible bucket holding config documents.
type Config struct {
	Access       string
	Secret       string
	Bucket       string
	Endpoint     string
	Region       string
	RequestTrace io.Writer
}

// Client talks to one bucket.
type Client struct {
	Client *minio.Client
	config *Config
	Bucket string
}

// New connects to the bucket described by config and verifies it exists.
func New(config *Config) (*Client, error) {
	if config == nil {
		return nil, errors.New("must provide config")
	}
	c := config
	if c.Access == "" || c.Secret == "" || c.Bucket == "" || c.Endpoint == "" {
		return nil, errors.New("must provide all fields in config")
	}

	mc, err := minio.New(c.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.Access, c.Secret, ""),
		Region: c.Region,
		Secure: true,
	})
	if err != nil {
		return nil, err
	}
	if c.RequestTrace != nil {
		mc.TraceOn(c.RequestTrace)
	}
	found, err := mc.BucketExists(ctx(), c.Bucket)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("bucket '%s' doesn't exist", c.Bucket)
	}

	return &Client{
		Client: mc,
		config: config,
		Bucket: c.Bucket,
	}, nil
}

func ctx() context.Context {
	return context.Background()
}

// Exists reports whether an object exists at remotePath.
func (c *Client) Exists(remotePath string) bool {
	_, err := c.Client.StatObject(ctx(), c.Bucket, remotePath, minio.StatObjectOptions{})
	return err == nil
}

// Remove deletes the object at remotePath.
func (c *Client) Remove(remotePath string) error {
	err := c.Client.RemoveObject(ctx(), c.Bucket, remotePath, minio.RemoveObjectOptions{})
	if err != nil {
		Logf("Remove %s failed: %v\n", remotePath, err)
	}
	return err
}

// DownloadProperties fetches and parses the document at remotePath.
func (c *Client) DownloadProperties(remotePath string) (*properties.Properties, error) {
	obj, err := c.Client.GetObject(ctx(), c.Bucket, remotePath, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	p := properties.New()
	if err = p.Load(obj); err != nil {
		Logf("DownloadProperties %s failed: %v\n", remotePath, err)
		return nil, err
	}
	Logf("DownloadProperties %s: %d entries\n", remotePath, p.Size())
	return p, nil
}

// UploadProperties stores p as the object at remotePath. public marks
// the object world-readable.
func (c *Client) UploadProperties(remotePath string, p *properties.Properties, comment string, public bool) error {
	var buf bytes.Buffer
	if err := p.Store(&buf, comment); err != nil {
		return err
	}
	contentType := mime.TypeByExtension(path.Ext(remotePath))
	if contentType == "" {
		contentType = propertiesContentType
	}
	opts := minio.PutObjectOptions{
		ContentType: contentType,
	}
	if public {
		setPublicObjectMetadata(&opts)
	}
	d := buf.Bytes()
	_, err := c.Client.PutObject(ctx(), c.Bucket, remotePath, bytes.NewReader(d), int64(len(d)), opts)
	if err != nil {
		Logf("UploadProperties %s failed: %v\n", remotePath, err)
		return err
	}
	Logf("UploadProperties %s: %d bytes\n", remotePath, len(d))
	return nil
}

func setPublicObjectMetadata(opts *minio.PutObjectOptions) {
	if opts.UserMetadata == nil {
		opts.UserMetadata = map[string]string{}
	}
	opts.UserMetadata["x-amz-acl"] = "public-read"
}
