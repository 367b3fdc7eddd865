package infrastructure

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awslogs"
	"github.com/aws/jsii-runtime-go"

	"github.com/abcbcafe/cloud-base/internal/config"
	"github.com/abcbcafe/cloud-base/internal/provisioning"
)

var retentionDays = map[config.Retention]awslogs.RetentionDays{
	config.RetentionOneDay:         awslogs.RetentionDays_ONE_DAY,
	config.RetentionThreeDays:      awslogs.RetentionDays_THREE_DAYS,
	config.RetentionFiveDays:       awslogs.RetentionDays_FIVE_DAYS,
	config.RetentionOneWeek:        awslogs.RetentionDays_ONE_WEEK,
	config.RetentionTwoWeeks:       awslogs.RetentionDays_TWO_WEEKS,
	config.RetentionOneMonth:       awslogs.RetentionDays_ONE_MONTH,
	config.RetentionTwoMonths:      awslogs.RetentionDays_TWO_MONTHS,
	config.RetentionThreeMonths:    awslogs.RetentionDays_THREE_MONTHS,
	config.RetentionFourMonths:     awslogs.RetentionDays_FOUR_MONTHS,
	config.RetentionFiveMonths:     awslogs.RetentionDays_FIVE_MONTHS,
	config.RetentionSixMonths:      awslogs.RetentionDays_SIX_MONTHS,
	config.RetentionOneYear:        awslogs.RetentionDays_ONE_YEAR,
	config.RetentionThirteenMonths: awslogs.RetentionDays_THIRTEEN_MONTHS,
	config.RetentionEighteenMonths: awslogs.RetentionDays_EIGHTEEN_MONTHS,
	config.RetentionTwoYears:       awslogs.RetentionDays_TWO_YEARS,
	config.RetentionFiveYears:      awslogs.RetentionDays_FIVE_YEARS,
	config.RetentionTenYears:       awslogs.RetentionDays_TEN_YEARS,
	config.RetentionInfinite:       awslogs.RetentionDays_INFINITE,
}

// RetentionDays maps a configured retention window to the library enum.
func RetentionDays(r config.Retention) (awslogs.RetentionDays, error) {
	rd, ok := retentionDays[r]
	if !ok {
		return "", fmt.Errorf("unknown log retention %q", r)
	}
	return rd, nil
}

// ProvisionLogGroup declares the runtime log group inside the network scope.
func (p *Provisioner) ProvisionLogGroup(ctx *provisioning.Context) error {
	scope, err := ctx.NetworkScope()
	if err != nil {
		return err
	}

	logCfg := ctx.Config.Logging
	retention, err := RetentionDays(logCfg.Retention)
	if err != nil {
		return err
	}

	ctx.Observer.Printf("[%s] Declaring log group %s (retention %d days)...", phase, logCfg.ID, logCfg.Retention.Days())

	props := &awslogs.LogGroupProps{
		Retention: retention,
	}
	if logCfg.LogGroupName != "" {
		props.LogGroupName = jsii.String(logCfg.LogGroupName)
	}

	ctx.State.LogGroup = awslogs.NewLogGroup(scope, jsii.String(logCfg.ID), props)
	provisioning.LogResourceDeclared(ctx.Observer, phase, "AWS::Logs::LogGroup", logCfg.ID)
	return nil
}
