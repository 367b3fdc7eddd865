package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcbcafe/cloud-base/internal/config"
)

func TestValidators(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		fn      func(string) error
		input   string
		wantErr error
	}{
		{"stack name ok", validateStackName, "General", nil},
		{"stack name empty", validateStackName, "  ", errStackNameRequired},
		{"stack name digit", validateStackName, "1General", errStackNameInvalid},
		{"stack name underscore", validateStackName, "Gen_eral", errStackNameInvalid},
		{"account empty", validateAccount, "", nil},
		{"account ok", validateAccount, "123456789012", nil},
		{"account short", validateAccount, "1234", errAccountInvalid},
		{"region empty", validateRegion, "", nil},
		{"region ok", validateRegion, "eu-central-1", nil},
		{"region gov", validateRegion, "us-gov-west-1", nil},
		{"region bad", validateRegion, "frankfurt", errRegionInvalid},
		{"cidr ok", validateCIDR, "10.0.0.0/8", nil},
		{"cidr empty", validateCIDR, "", errCIDRRequired},
		{"cidr bad", validateCIDR, "10.0.0.0", errCIDRInvalid},
		{"cidr ipv6", validateCIDR, "fd00::/8", errCIDRInvalid},
		{"cluster ok", validateClusterName, "General_Cluster-1", nil},
		{"cluster empty", validateClusterName, "", nil},
		{"cluster space", validateClusterName, "my cluster", errClusterNameInvalid},
		{"bucket empty", validateBucket, "", nil},
		{"bucket ok", validateBucket, "my-assemblies.example", nil},
		{"bucket upper", validateBucket, "MyBucket", errBucketInvalid},
		{"bucket short", validateBucket, "ab", errBucketInvalid},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.fn(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewDefaultResult_BuildsReferenceConfig(t *testing.T) {
	t.Parallel()
	cfg := BuildConfig(newDefaultResult())

	assert.Equal(t, config.Default(), cfg)
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()
	result := &WizardResult{
		StackName:             " Staging ",
		Description:           "staging base",
		TerminationProtection: false,
		Account:               "123456789012",
		Region:                "eu-central-1",
		Retention:             "one_month",
		IngressCIDR:           "172.16.0.0/12",
		ClusterName:           "staging",
		Fargate:               true,
		Bucket:                "assemblies",
		Prefix:                "/team/",
	}

	cfg := BuildConfig(result)

	assert.Equal(t, "Staging", cfg.Stack.Name)
	assert.Equal(t, "staging base", cfg.Stack.Description)
	assert.False(t, cfg.Stack.TerminationProtection)
	assert.Equal(t, "123456789012", cfg.Stack.Account)
	assert.Equal(t, config.RetentionOneMonth, cfg.Logging.Retention)
	assert.Equal(t, "172.16.0.0/12", cfg.FileShare.Ingress[0].CIDR)
	assert.Equal(t, config.NFSPort, cfg.FileShare.Ingress[0].Port)
	assert.Equal(t, "staging", cfg.Cluster.Name)
	assert.Equal(t, config.PublishConfig{Bucket: "assemblies", Prefix: "team", Region: "eu-central-1"}, cfg.Publish)
	require.NoError(t, cfg.Validate())
}

func TestRetentionsToOptions(t *testing.T) {
	t.Parallel()
	opts := RetentionsToOptions()

	require.Len(t, opts, len(config.ValidRetentions()))
	var found bool
	for _, o := range opts {
		if o.Value == string(config.RetentionFiveMonths) {
			found = true
			assert.Equal(t, "five_months (150 days)", o.Key)
		}
		if o.Value == string(config.RetentionInfinite) {
			assert.Equal(t, "infinite (never expire)", o.Key)
		}
	}
	assert.True(t, found)
}

func TestValidators_AgreeWithConfig(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"General", "General-2", "1General", "Gen_eral", "Gen.eral"} {
		cfg := config.Default()
		cfg.Stack.Name = name
		configOK := cfg.Validate() == nil
		assert.Equal(t, configOK, validateStackName(name) == nil, "stack name %q", name)
	}
	for _, name := range []string{"general", "general_cluster-1", "general cluster", "general/cluster"} {
		cfg := config.Default()
		cfg.Cluster.Name = name
		configOK := cfg.Validate() == nil
		assert.Equal(t, configOK, validateClusterName(name) == nil, "cluster name %q", name)
	}
	for _, account := range []string{"123456789012", "12345", "12345678901a"} {
		cfg := config.Default()
		cfg.Stack.Account = account
		configOK := cfg.Validate() == nil
		assert.Equal(t, configOK, validateAccount(account) == nil, "account %q", account)
	}
}
