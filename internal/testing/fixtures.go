package testing

import (
	"context"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"

	"github.com/abcbcafe/cloud-base/internal/config"
	"github.com/abcbcafe/cloud-base/internal/provisioning"
)

// NewStackContext returns a provisioning context for cfg bound to a fresh
// environment-agnostic app and stack, with a RecordingObserver attached.
func NewStackContext(cfg *config.Config) *provisioning.Context {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String(cfg.Stack.Name), nil)

	ctx := provisioning.NewContext(context.Background(), cfg, stack)
	ctx.Observer = NewRecordingObserver()
	return ctx
}

// Template returns the CloudFormation template of the context's stack.
func Template(ctx *provisioning.Context) assertions.Template {
	return assertions.Template_FromStack(ctx.Stack, nil)
}

// ResourceProperties returns the Properties block of every resource of the
// given CloudFormation type in the template. Resources without properties
// yield an empty map.
func ResourceProperties(template assertions.Template, resourceType string) []map[string]interface{} {
	var out []map[string]interface{}

	doc := *template.ToJSON()
	resources, _ := doc["Resources"].(map[string]interface{})
	for _, raw := range resources {
		res, _ := raw.(map[string]interface{})
		if res["Type"] != resourceType {
			continue
		}
		props, _ := res["Properties"].(map[string]interface{})
		if props == nil {
			props = map[string]interface{}{}
		}
		out = append(out, props)
	}
	return out
}
