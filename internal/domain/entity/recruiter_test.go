package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmailOTP(t *testing.T) {
	issued := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	expiry := issued.Add(time.Minute)

	tests := []struct {
		name      string
		presented string
		now       time.Time
		want      OTPOutcome
	}{
		{name: "correct code before expiry", presented: "042137", now: issued.Add(30 * time.Second), want: OTPAccepted},
		{name: "wrong code before expiry", presented: "111111", now: issued.Add(30 * time.Second), want: OTPMismatch},
		{name: "correct code after expiry", presented: "042137", now: expiry.Add(time.Second), want: OTPExpired},
		{name: "correct code at exact expiry", presented: "042137", now: expiry, want: OTPExpired},
		{name: "wrong code after expiry reports expired", presented: "111111", now: expiry.Add(time.Second), want: OTPExpired},
		{name: "one nanosecond before expiry still accepted", presented: "042137", now: expiry.Add(-time.Nanosecond), want: OTPAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Recruiter{}
			r.IssueEmailOTP("042137", expiry)

			assert.Equal(t, tt.want, r.ValidateEmailOTP(tt.presented, tt.now))
		})
	}
}

func TestValidateEmailOTP_NoPendingChallenge(t *testing.T) {
	r := &Recruiter{}

	assert.Equal(t, OTPExpired, r.ValidateEmailOTP("042137", time.Now()))
}

func TestIssueEmailOTP_SupersedesPendingChallenge(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	r := &Recruiter{}
	r.IssueEmailOTP("111111", now.Add(time.Minute))
	r.IssueEmailOTP("042137", now.Add(2*time.Minute))

	assert.Equal(t, OTPMismatch, r.ValidateEmailOTP("111111", now))
	assert.Equal(t, OTPAccepted, r.ValidateEmailOTP("042137", now))
}

func TestConsumeEmailOTP_ClearsChallenge(t *testing.T) {
	r := &Recruiter{}
	r.IssueEmailOTP("042137", time.Now().Add(time.Minute))

	r.ConsumeEmailOTP()

	assert.True(t, r.EmailVerified)
	require.Nil(t, r.EmailOTP)
	require.Nil(t, r.EmailOTPExpiry)
}
