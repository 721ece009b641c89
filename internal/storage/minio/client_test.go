package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      bool

	policy    string
	policyErr error

	putErr         error
	putKey         string
	putSize        int64
	putContentType string

	removeErr error

	statErr error
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}
func (f *fakeMinio) MakeBucket(_ context.Context, _ string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = true
	return f.makeBucketErr
}
func (f *fakeMinio) SetBucketPolicy(_ context.Context, _ string, policy string) error {
	f.policy = policy
	return f.policyErr
}
func (f *fakeMinio) PutObject(_ context.Context, _ string, key string, _ io.Reader, size int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.putKey = key
	f.putSize = size
	f.putContentType = opts.ContentType
	return minioLib.UploadInfo{}, f.putErr
}
func (f *fakeMinio) RemoveObject(_ context.Context, _ string, _ string, _ minioLib.RemoveObjectOptions) error {
	return f.removeErr
}
func (f *fakeMinio) StatObject(_ context.Context, _ string, _ string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	return minioLib.ObjectInfo{}, f.statErr
}

func TestNewClientWithAPI_BucketExists(t *testing.T) {
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "b", "http://localhost:9000/")
	require.NoError(t, err)
	assert.Equal(t, "b", c.bucket)
	assert.Equal(t, "http://localhost:9000", c.publicURL)
	assert.False(t, api.madeBucket)
}

func TestNewClientWithAPI_CreateBucket(t *testing.T) {
	api := &fakeMinio{bucketExists: false}
	_, err := NewClientWithAPI(context.Background(), api, "uploads", "http://localhost:9000")
	require.NoError(t, err)
	assert.True(t, api.madeBucket)
	assert.Contains(t, api.policy, "arn:aws:s3:::uploads/*")
}

func TestNewClientWithAPI_Errors(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeMinio
	}{
		{"bucket exists error", &fakeMinio{bucketExistsErr: errors.New("boom")}},
		{"make bucket error", &fakeMinio{makeBucketErr: errors.New("fail")}},
		{"policy error", &fakeMinio{policyErr: errors.New("denied")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClientWithAPI(context.Background(), tt.api, "bucket", "http://localhost:9000")
			assert.Nil(t, c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to ensure bucket exists")
		})
	}
}

func TestClient_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{}
		c := &Client{api: api, bucket: "b"}
		err := c.Upload(ctx, "projects/k.png", bytes.NewReader([]byte("data")), 4, "image/png")
		require.NoError(t, err)
		assert.Equal(t, "projects/k.png", api.putKey)
		assert.Equal(t, int64(4), api.putSize)
		assert.Equal(t, "image/png", api.putContentType)
	})

	t.Run("unknown size streams", func(t *testing.T) {
		api := &fakeMinio{}
		c := &Client{api: api, bucket: "b"}
		require.NoError(t, c.Upload(ctx, "k", bytes.NewReader(nil), 0, ""))
		assert.Equal(t, int64(-1), api.putSize)
	})

	t.Run("error", func(t *testing.T) {
		api := &fakeMinio{putErr: errors.New("put-fail")}
		c := &Client{api: api, bucket: "b"}
		err := c.Upload(ctx, "k", bytes.NewReader([]byte("data")), 4, "image/png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upload object")
	})
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()

	c := &Client{api: &fakeMinio{}, bucket: "b"}
	assert.NoError(t, c.Delete(ctx, "k"))

	c = &Client{api: &fakeMinio{removeErr: errors.New("rm")}, bucket: "b"}
	err := c.Delete(ctx, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete object")
}

func TestClient_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		c := &Client{api: &fakeMinio{}, bucket: "b"}
		ok, err := c.Exists(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("not found", func(t *testing.T) {
		c := &Client{api: &fakeMinio{statErr: minioLib.ErrorResponse{Code: "NoSuchKey"}}, bucket: "b"}
		ok, err := c.Exists(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("other error", func(t *testing.T) {
		c := &Client{api: &fakeMinio{statErr: errors.New("network")}, bucket: "b"}
		_, err := c.Exists(ctx, "k")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to stat object")
	})
}

func TestClient_URLAndKey(t *testing.T) {
	c := &Client{bucket: "uploads", publicURL: "https://cdn.example.com"}

	ref := c.URL("projects/site-1.png")
	assert.Equal(t, "https://cdn.example.com/uploads/projects/site-1.png", ref)

	key, ok := c.Key(ref)
	require.True(t, ok)
	assert.Equal(t, "projects/site-1.png", key)

	_, ok = c.Key("/assets/uploads/projects/site-1.png")
	assert.False(t, ok)
}
