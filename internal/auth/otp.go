// Package auth runs the two-step WhatsApp OTP login.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bassista/tourdesk/internal/form"
	"github.com/bassista/tourdesk/internal/logger"
	"github.com/bassista/tourdesk/internal/session"
)

// Step is the position in the login flow.
type Step string

const (
	AwaitingMobile Step = "awaiting_mobile"
	AwaitingOTP    Step = "awaiting_otp"
	LoggedIn       Step = "logged_in"
)

var (
	ErrInvalidMobile = errors.New("mobile must be exactly 10 digits")
	ErrInvalidOTP    = errors.New("otp must be numeric")
	ErrNoOTPSent     = errors.New("request an otp first")
)

// OTPService delivers and checks one-time passwords.
type OTPService interface {
	SendOTP(ctx context.Context, mobile string) error
	VerifyOTP(ctx context.Context, mobile, otp string) error
}

// ViewCloser discards view state on logout.
type ViewCloser interface {
	CloseAll()
}

// State is what the login screen renders.
type State struct {
	Step   Step   `json:"step"`
	Mobile string `json:"mobile,omitempty"`
}

// Flow is the login state machine for the single admin.
type Flow struct {
	otp     OTPService
	session *session.Session
	views   ViewCloser

	mu     sync.Mutex
	step   Step
	mobile string
}

func NewFlow(otp OTPService, sess *session.Session, views ViewCloser) *Flow {
	return &Flow{otp: otp, session: sess, views: views, step: AwaitingMobile}
}

// SendOTP requests a code for mobile and waits for it.
func (f *Flow) SendOTP(ctx context.Context, mobile string) error {
	if !form.IsMobile(mobile) {
		return ErrInvalidMobile
	}
	if err := f.otp.SendOTP(ctx, mobile); err != nil {
		logger.WithComponent("auth").Warnf("send otp failed: %v", err)
		return err
	}
	f.mu.Lock()
	f.step = AwaitingOTP
	f.mobile = mobile
	f.mu.Unlock()
	return nil
}

// VerifyOTP checks otp for the mobile that requested it and logs the session in.
// A rejected code keeps the flow waiting for another attempt.
func (f *Flow) VerifyOTP(ctx context.Context, otp string) error {
	f.mu.Lock()
	step, mobile := f.step, f.mobile
	f.mu.Unlock()

	if step != AwaitingOTP {
		return ErrNoOTPSent
	}
	if !isDigits(otp) {
		return ErrInvalidOTP
	}
	if err := f.otp.VerifyOTP(ctx, mobile, otp); err != nil {
		logger.WithComponent("auth").Warnf("verify otp failed: %v", err)
		return err
	}
	if err := f.session.Login(ctx, mobile); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	f.mu.Lock()
	f.step = LoggedIn
	f.mu.Unlock()
	return nil
}

// Reset goes back to entering a mobile number.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.step = AwaitingMobile
	f.mobile = ""
}

// Logout clears the session and every view's cached state.
func (f *Flow) Logout(ctx context.Context) error {
	f.Reset()
	if f.views != nil {
		f.views.CloseAll()
	}
	return f.session.Logout(ctx)
}

func (f *Flow) State(ctx context.Context) State {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session.IsAuthenticated(ctx) {
		return State{Step: LoggedIn, Mobile: f.session.Info(ctx).Mobile}
	}
	if f.step == LoggedIn {
		// session was cleared elsewhere
		f.step = AwaitingMobile
		f.mobile = ""
	}
	return State{Step: f.step, Mobile: f.mobile}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
