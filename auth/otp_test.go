package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestVerifyOTPRejectsMalformedBody(t *testing.T) {
	h := New(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-otp", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.VerifyOTP(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestVerifyOTPRequiresEmail(t *testing.T) {
	h := New(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-otp", strings.NewReader(`{"otp":"123456"}`))
	rec := httptest.NewRecorder()
	h.VerifyOTP(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
