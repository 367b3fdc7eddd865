package s3

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/go-logr/logr"

	"github.com/abcbcafe/cloud-base/internal/assembly"
	"github.com/abcbcafe/cloud-base/internal/util/naming"
	"github.com/abcbcafe/cloud-base/internal/util/retry"
)

// ObjectStore is the subset of Client used by Publisher.
type ObjectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	PutObject(ctx context.Context, bucketName, key, contentType string, data []byte) error
}

// PublishResult lists what was uploaded.
type PublishResult struct {
	Bucket  string
	Prefix  string
	Keys    []string
	Release string
}

// Publisher uploads cloud assemblies to a bucket.
type Publisher struct {
	store    ObjectStore
	retry    []retry.Option
	now      func() time.Time
	log      logr.Logger
	readFile func(string) ([]byte, error)
}

// NewPublisher creates a publisher writing to store.
func NewPublisher(store ObjectStore, log logr.Logger, opts ...retry.Option) *Publisher {
	return &Publisher{
		store:    store,
		retry:    opts,
		now:      time.Now,
		log:      log,
		readFile: os.ReadFile,
	}
}

// Publish uploads every file of the assembly in dir under
// {prefix}/{stack}/{release}/ and then points {prefix}/{stack}/LATEST at
// the release.
func (p *Publisher) Publish(ctx context.Context, dir, stack, bucket, prefix string) (*PublishResult, error) {
	exists, err := p.store.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	a, err := assembly.Read(dir)
	if err != nil {
		return nil, err
	}
	if _, err := a.Stack(stack); err != nil {
		return nil, err
	}
	files, err := a.Files()
	if err != nil {
		return nil, err
	}

	release := naming.Release(p.now())
	base := naming.AssemblyPrefix(prefix, stack, release)
	result := &PublishResult{Bucket: bucket, Prefix: base, Release: release}

	for _, file := range files {
		// #nosec G304
		data, err := p.readFile(filepath.Join(dir, filepath.FromSlash(file)))
		if err != nil {
			return result, fmt.Errorf("failed to read %s: %w", file, err)
		}

		key := naming.ObjectKey(base, file)
		if err := p.put(ctx, bucket, key, contentType(file), data); err != nil {
			return result, err
		}
		result.Keys = append(result.Keys, key)
		p.log.V(1).Info("uploaded", "key", key, "bytes", len(data))
	}

	latest := naming.LatestKey(prefix, stack)
	if err := p.put(ctx, bucket, latest, "text/plain", []byte(base+"\n")); err != nil {
		return result, err
	}
	result.Keys = append(result.Keys, latest)

	p.log.Info("published cloud assembly", "bucket", bucket, "prefix", base, "objects", len(result.Keys))
	return result, nil
}

func (p *Publisher) put(ctx context.Context, bucket, key, ct string, data []byte) error {
	opts := append([]retry.Option{
		retry.WithOnRetry(func(attempt int, err error, next time.Duration) {
			p.log.Info("upload failed, retrying", "key", key, "attempt", attempt, "next", next, "error", err.Error())
		}),
	}, p.retry...)

	return retry.Do(ctx, func(ctx context.Context) error {
		return p.store.PutObject(ctx, bucket, key, ct, data)
	}, opts...)
}

func contentType(file string) string {
	switch path.Ext(file) {
	case ".json":
		return "application/json"
	case ".yaml", ".yml":
		return "application/yaml"
	default:
		return "application/octet-stream"
	}
}
