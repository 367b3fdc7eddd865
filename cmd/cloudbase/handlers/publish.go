package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/abcbcafe/cloud-base/internal/config"
	"github.com/abcbcafe/cloud-base/internal/logging"
	"github.com/abcbcafe/cloud-base/internal/platform/s3"
)

// Environment variables holding static object storage credentials. When
// unset the default AWS credential chain is used.
const (
	envS3AccessKey = "CLOUDBASE_S3_ACCESS_KEY"
	envS3SecretKey = "CLOUDBASE_S3_SECRET_KEY"
)

var errNoBucket = errors.New("no bucket configured: set publish.bucket in the config file or pass --bucket")

var (
	// newObjectStore creates the object storage client.
	newObjectStore = func(ctx context.Context, opts s3.Options) (s3.ObjectStore, error) {
		return s3.NewClient(ctx, opts)
	}

	// getenv reads credentials from the environment.
	getenv = os.Getenv
)

// PublishOptions holds the flags of the publish command. Empty values fall
// back to the publish section of the configuration.
type PublishOptions struct {
	ConfigPath string
	OutDir     string
	Bucket     string
	Prefix     string
	Region     string
	Endpoint   string
}

// Publish synthesizes the stack and uploads the cloud assembly to S3.
func Publish(ctx context.Context, opts PublishOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	target := resolvePublishTarget(cfg, opts)
	if target.Bucket == "" {
		return errNoBucket
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = cfg.Output.Dir
	}
	result, err := newSynthesizer(cfg, outDir, nil).Synthesize(ctx)
	if err != nil {
		return err
	}

	store, err := newObjectStore(ctx, s3.Options{
		Region:    target.Region,
		Endpoint:  target.Endpoint,
		AccessKey: getenv(envS3AccessKey),
		SecretKey: getenv(envS3SecretKey),
	})
	if err != nil {
		return fmt.Errorf("failed to create S3 client: %w", err)
	}

	published, err := s3.NewPublisher(store, logging.FromContext(ctx)).
		Publish(ctx, result.Dir, result.StackName, target.Bucket, target.Prefix)
	if err != nil {
		return fmt.Errorf("failed to publish cloud assembly: %w", err)
	}

	fmt.Printf("s3://%s/%s\n", published.Bucket, published.Prefix)
	return nil
}

// resolvePublishTarget merges flags over the configured publish section.
// The region falls back to the stack region.
func resolvePublishTarget(cfg *config.Config, opts PublishOptions) config.PublishConfig {
	target := cfg.Publish
	if opts.Bucket != "" {
		target.Bucket = opts.Bucket
	}
	if opts.Prefix != "" {
		target.Prefix = opts.Prefix
	}
	if opts.Region != "" {
		target.Region = opts.Region
	}
	if opts.Endpoint != "" {
		target.Endpoint = opts.Endpoint
	}
	if target.Region == "" {
		target.Region = cfg.Stack.Region
	}
	return target
}
