package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubmissionDate(t *testing.T) {
	d, err := ParseSubmissionDate(" 2025-06-30 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseSubmissionDate("")
	assert.ErrorContains(t, err, "required")

	_, err = ParseSubmissionDate("2025-13-01")
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestParseSundayAnswer(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{in: "y", want: true},
		{in: "Y", want: true},
		{in: "yes", want: true},
		{in: " N ", want: false},
		{in: "no", want: false},
		{in: "maybe", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSundayAnswer(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseHoursRequired(t *testing.T) {
	v, err := ParseHoursRequired("120")
	require.NoError(t, err)
	assert.Equal(t, 120, v)

	for _, bad := range []string{"0", "-3", "1.5", "lots", ""} {
		_, err := ParseHoursRequired(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestPlanRequest_Validate(t *testing.T) {
	req := NewPlanRequest(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), 100)
	require.NoError(t, req.Validate())
	assert.True(t, req.IncludeSunday)

	var empty PlanRequest
	err := empty.Validate()
	var perr *PlanError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, PlanErrMissingSubmission, perr.Code)
	assert.Equal(t, "MISSING_SUBMISSION_DATE: submission date is required", err.Error())
}
