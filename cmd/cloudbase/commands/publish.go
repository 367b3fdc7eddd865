package commands

import (
	"github.com/spf13/cobra"

	"github.com/abcbcafe/cloud-base/cmd/cloudbase/handlers"
)

// Publish returns the command that uploads the cloud assembly to S3.
//
// Environment variables:
//
//	CLOUDBASE_S3_ACCESS_KEY, CLOUDBASE_S3_SECRET_KEY: static credentials (optional)
func Publish() *cobra.Command {
	var opts handlers.PublishOptions

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Synthesize the stack and upload it to S3",
		Long: `Synthesize the stack and upload the cloud assembly to an S3 bucket.

Files are written under <prefix>/<stack>/<release>/ and
<prefix>/<stack>/LATEST is updated to name the new release.

Flags override the publish section of the configuration file. Without
static credentials in the environment the default AWS credential chain
is used.

Examples:
  # Publish using the configured bucket
  cloudbase publish

  # Publish to a local MinIO
  cloudbase publish --bucket stacks --endpoint http://localhost:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Publish(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: cloudbase.yaml)")
	cmd.Flags().StringVarP(&opts.OutDir, "output-dir", "o", "", "Cloud assembly output directory")
	cmd.Flags().StringVar(&opts.Bucket, "bucket", "", "Destination bucket")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "Key prefix inside the bucket")
	cmd.Flags().StringVar(&opts.Region, "region", "", "Bucket region (default: stack region)")
	cmd.Flags().StringVar(&opts.Endpoint, "endpoint", "", "Custom S3 endpoint, e.g. MinIO")

	return cmd
}
