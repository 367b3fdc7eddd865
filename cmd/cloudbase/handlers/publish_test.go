package handlers

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcbcafe/cloud-base/internal/config"
	"github.com/abcbcafe/cloud-base/internal/platform/s3"
)

type memoryStore struct {
	mu      sync.Mutex
	exists  bool
	objects map[string]string
}

func (m *memoryStore) BucketExists(context.Context, string) (bool, error) {
	return m.exists, nil
}

func (m *memoryStore) PutObject(_ context.Context, bucket, key, _ string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[bucket+"/"+key] = string(data)
	return nil
}

func useMemoryStore(t *testing.T) (*memoryStore, *s3.Options) {
	t.Helper()
	store := &memoryStore{exists: true, objects: make(map[string]string)}
	var got s3.Options
	newObjectStore = func(_ context.Context, opts s3.Options) (s3.ObjectStore, error) {
		got = opts
		return store, nil
	}
	getenv = func(key string) string {
		switch key {
		case envS3AccessKey:
			return "AKIDEXAMPLE"
		case envS3SecretKey:
			return "secret"
		}
		return ""
	}
	return store, &got
}

func TestPublish_NoBucket(t *testing.T) {
	useFakes(t)

	err := Publish(context.Background(), PublishOptions{OutDir: t.TempDir()})
	require.ErrorIs(t, err, errNoBucket)
}

func TestPublish_UploadsAssembly(t *testing.T) {
	useFakes(t)
	store, opts := useMemoryStore(t)

	var err error
	output := captureOutput(func() {
		err = Publish(context.Background(), PublishOptions{
			OutDir:   t.TempDir(),
			Bucket:   "artifacts",
			Prefix:   "stacks",
			Region:   "eu-west-1",
			Endpoint: "http://localhost:9000",
		})
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(output, "s3://artifacts/stacks/General/"), output)
	assert.Equal(t, "eu-west-1", opts.Region)
	assert.Equal(t, "http://localhost:9000", opts.Endpoint)
	assert.Equal(t, "AKIDEXAMPLE", opts.AccessKey)
	assert.Equal(t, "secret", opts.SecretKey)

	var keys []string
	for k := range store.objects {
		keys = append(keys, k)
	}
	assert.Contains(t, keys, "artifacts/stacks/General/LATEST")
	assert.Len(t, keys, 3, "manifest, template and LATEST")
}

func TestPublish_ClientError(t *testing.T) {
	useFakes(t)
	newObjectStore = func(context.Context, s3.Options) (s3.ObjectStore, error) {
		return nil, errors.New("no credentials")
	}

	err := Publish(context.Background(), PublishOptions{OutDir: t.TempDir(), Bucket: "artifacts"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create S3 client: no credentials")
}

func TestPublish_MissingBucket(t *testing.T) {
	useFakes(t)
	store, _ := useMemoryStore(t)
	store.exists = false

	err := Publish(context.Background(), PublishOptions{OutDir: t.TempDir(), Bucket: "artifacts"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket artifacts does not exist")
}

func TestResolvePublishTarget(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		cfg    func(*config.Config)
		opts   PublishOptions
		expect config.PublishConfig
	}{
		{
			name: "config only",
			cfg: func(c *config.Config) {
				c.Publish = config.PublishConfig{Bucket: "cfg-bucket", Prefix: "cfg", Region: "us-east-1"}
			},
			expect: config.PublishConfig{Bucket: "cfg-bucket", Prefix: "cfg", Region: "us-east-1"},
		},
		{
			name: "flags override config",
			cfg: func(c *config.Config) {
				c.Publish = config.PublishConfig{Bucket: "cfg-bucket", Prefix: "cfg", Region: "us-east-1"}
			},
			opts:   PublishOptions{Bucket: "flag-bucket", Region: "eu-west-1", Endpoint: "http://minio:9000"},
			expect: config.PublishConfig{Bucket: "flag-bucket", Prefix: "cfg", Region: "eu-west-1", Endpoint: "http://minio:9000"},
		},
		{
			name:   "region falls back to stack region",
			cfg:    func(c *config.Config) { c.Stack.Region = "ap-southeast-2" },
			opts:   PublishOptions{Bucket: "b"},
			expect: config.PublishConfig{Bucket: "b", Region: "ap-southeast-2"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			tt.cfg(cfg)
			assert.Equal(t, tt.expect, resolvePublishTarget(cfg, tt.opts))
		})
	}
}
