package config

// SubnetType is the visibility class of a subnet group.
type SubnetType string

const (
	// SubnetPublic subnets route to an internet gateway.
	SubnetPublic SubnetType = "public"
	// SubnetPrivate subnets reach the internet through NAT gateways.
	SubnetPrivate SubnetType = "private"
	// SubnetIsolated subnets have no route outside the network.
	SubnetIsolated SubnetType = "isolated"
)

// ValidSubnetTypes returns all valid subnet types.
func ValidSubnetTypes() []SubnetType {
	return []SubnetType{SubnetPublic, SubnetPrivate, SubnetIsolated}
}

// IsValid returns true if the subnet type is known.
func (t SubnetType) IsValid() bool {
	switch t {
	case SubnetPublic, SubnetPrivate, SubnetIsolated:
		return true
	default:
		return false
	}
}

// Retention is a log retention window. Only the windows CloudWatch Logs
// accepts are valid.
type Retention string

const (
	RetentionOneDay         Retention = "one_day"
	RetentionThreeDays      Retention = "three_days"
	RetentionFiveDays       Retention = "five_days"
	RetentionOneWeek        Retention = "one_week"
	RetentionTwoWeeks       Retention = "two_weeks"
	RetentionOneMonth       Retention = "one_month"
	RetentionTwoMonths      Retention = "two_months"
	RetentionThreeMonths    Retention = "three_months"
	RetentionFourMonths     Retention = "four_months"
	RetentionFiveMonths     Retention = "five_months"
	RetentionSixMonths      Retention = "six_months"
	RetentionOneYear        Retention = "one_year"
	RetentionThirteenMonths Retention = "thirteen_months"
	RetentionEighteenMonths Retention = "eighteen_months"
	RetentionTwoYears       Retention = "two_years"
	RetentionFiveYears      Retention = "five_years"
	RetentionTenYears       Retention = "ten_years"
	RetentionInfinite       Retention = "infinite"
)

var retentionDays = map[Retention]int{
	RetentionOneDay:         1,
	RetentionThreeDays:      3,
	RetentionFiveDays:       5,
	RetentionOneWeek:        7,
	RetentionTwoWeeks:       14,
	RetentionOneMonth:       30,
	RetentionTwoMonths:      60,
	RetentionThreeMonths:    90,
	RetentionFourMonths:     120,
	RetentionFiveMonths:     150,
	RetentionSixMonths:      180,
	RetentionOneYear:        365,
	RetentionThirteenMonths: 400,
	RetentionEighteenMonths: 545,
	RetentionTwoYears:       731,
	RetentionFiveYears:      1827,
	RetentionTenYears:       3653,
	RetentionInfinite:       0,
}

// ValidRetentions returns all valid retention windows, shortest first.
func ValidRetentions() []Retention {
	return []Retention{
		RetentionOneDay, RetentionThreeDays, RetentionFiveDays, RetentionOneWeek,
		RetentionTwoWeeks, RetentionOneMonth, RetentionTwoMonths, RetentionThreeMonths,
		RetentionFourMonths, RetentionFiveMonths, RetentionSixMonths, RetentionOneYear,
		RetentionThirteenMonths, RetentionEighteenMonths, RetentionTwoYears,
		RetentionFiveYears, RetentionTenYears, RetentionInfinite,
	}
}

// IsValid returns true if the retention window is known.
func (r Retention) IsValid() bool {
	_, ok := retentionDays[r]
	return ok
}

// Days returns the retention in days. Infinite retention is 0.
func (r Retention) Days() int {
	return retentionDays[r]
}

// Lifecycle is the idle period after which filesystem data moves to the
// infrequent access storage class.
type Lifecycle string

const (
	LifecycleAfter7Days  Lifecycle = "after_7_days"
	LifecycleAfter14Days Lifecycle = "after_14_days"
	LifecycleAfter30Days Lifecycle = "after_30_days"
	LifecycleAfter60Days Lifecycle = "after_60_days"
	LifecycleAfter90Days Lifecycle = "after_90_days"
)

// ValidLifecycles returns all valid lifecycle transitions.
func ValidLifecycles() []Lifecycle {
	return []Lifecycle{
		LifecycleAfter7Days, LifecycleAfter14Days, LifecycleAfter30Days,
		LifecycleAfter60Days, LifecycleAfter90Days,
	}
}

// IsValid returns true if the lifecycle transition is known.
func (l Lifecycle) IsValid() bool {
	switch l {
	case LifecycleAfter7Days, LifecycleAfter14Days, LifecycleAfter30Days,
		LifecycleAfter60Days, LifecycleAfter90Days:
		return true
	default:
		return false
	}
}
