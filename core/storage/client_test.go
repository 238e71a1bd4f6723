package storage_test

import (
	"context"
	"errors"
	"testing"

	"athlete-dashboard/core/storage"
	"athlete-dashboard/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "avatars",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "b").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(ctx, m, "b", ""))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "b").Return(false, nil)
		m.On("MakeBucket", mock.Anything, "b", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		assert.NoError(t, storage.EnsureBucket(ctx, m, "b", "eu-west-1"))
		m.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "b").Return(false, errors.New("denied"))

		err := storage.EnsureBucket(ctx, m, "b", "")
		assert.ErrorContains(t, err, "denied")
	})
}

func TestObjectURL(t *testing.T) {
	cfg := storage.Config{Endpoint: "http://localhost:9000", Bucket: "athlete-dashboard"}
	assert.Equal(t, "http://localhost:9000/athlete-dashboard/avatars/1/a.png", storage.ObjectURL(cfg, "avatars/1/a.png"))

	cfg.UseSSL = true
	assert.Equal(t, "https://localhost:9000/athlete-dashboard/x", storage.ObjectURL(cfg, "/x"))

	cfg.PublicURL = "https://cdn.example.com/"
	assert.Equal(t, "https://cdn.example.com/x", storage.ObjectURL(cfg, "x"))
}
