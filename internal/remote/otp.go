package remote

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	otpSendPath   = "/otp/send-whatsapp"
	otpVerifyPath = "/otp/verify"
)

type otpSendRequest struct {
	Mobile string `json:"mobile"`
}

type otpVerifyRequest struct {
	Mobile string `json:"mobile"`
	OTP    string `json:"otp"`
}

type otpVerifyResponse struct {
	Verified *bool  `json:"verified"`
	Message  string `json:"message"`
}

// SendOTP asks the service to deliver a one-time password over WhatsApp.
func (c *Client) SendOTP(ctx context.Context, mobile string) error {
	if _, err := c.post(ctx, otpSendPath, otpSendRequest{Mobile: mobile}); err != nil {
		return fmt.Errorf("sending otp: %w", err)
	}
	return nil
}

// VerifyOTP checks the code. A 2xx answer with "verified": false is a rejection too.
func (c *Client) VerifyOTP(ctx context.Context, mobile, otp string) error {
	body, err := c.post(ctx, otpVerifyPath, otpVerifyRequest{Mobile: mobile, OTP: otp})
	if err != nil {
		return fmt.Errorf("verifying otp: %w", err)
	}
	if len(body) == 0 {
		return nil
	}

	var resp otpVerifyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return &EnvelopeError{Path: otpVerifyPath, Reason: fmt.Sprintf("body is not an object: %v", err)}
	}
	if resp.Verified != nil && !*resp.Verified {
		if resp.Message != "" {
			return fmt.Errorf("%w: %s", ErrOTPRejected, resp.Message)
		}
		return ErrOTPRejected
	}
	return nil
}
