package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetention_Days(t *testing.T) {
	t.Parallel()
	tests := []struct {
		retention Retention
		days      int
	}{
		{RetentionOneDay, 1},
		{RetentionOneWeek, 7},
		{RetentionFiveMonths, 150},
		{RetentionOneYear, 365},
		{RetentionInfinite, 0},
		{Retention("bogus"), 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.retention), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.days, tt.retention.Days())
		})
	}
}

func TestValidRetentions_AllValid(t *testing.T) {
	t.Parallel()
	all := ValidRetentions()
	assert.Len(t, all, len(retentionDays))
	for _, r := range all {
		assert.True(t, r.IsValid(), string(r))
	}
	assert.False(t, Retention("").IsValid())
}

func TestLifecycle_IsValid(t *testing.T) {
	t.Parallel()
	for _, l := range ValidLifecycles() {
		assert.True(t, l.IsValid(), string(l))
	}
	assert.False(t, Lifecycle("after_1_day").IsValid())
}

func TestSubnetType_IsValid(t *testing.T) {
	t.Parallel()
	for _, st := range ValidSubnetTypes() {
		assert.True(t, st.IsValid(), string(st))
	}
	assert.False(t, SubnetType("PUBLIC").IsValid())
}
