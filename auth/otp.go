package auth

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"net/smtp"
	"os"
	"strings"
	"time"

	"petalia/db"
	"petalia/rdx"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func GenerateOTP(length int) string {
	digits := "0123456789"
	var otp strings.Builder
	for i := 0; i < length; i++ {
		otp.WriteByte(digits[rand.Intn(len(digits))])
	}
	return otp.String()
}

func SendEmailOTP(toEmail, otp string) error {
	from := os.Getenv("SMTP_FROM")
	pass := os.Getenv("SMTP_PASSWORD")
	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpPort == "" {
		smtpPort = "587"
	}

	msg := []byte("Subject: Email Verification\n\nYour OTP is: " + otp)

	a := smtp.PlainAuth("", from, pass, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, a, from, []string{toEmail}, msg)
}

func sendVerificationOTP(email string) {
	otp := GenerateOTP(6)
	if err := rdx.RdxSetWithTTL("otp:"+email, otp, 10*time.Minute); err != nil {
		log.Println("OTP store error:", err)
		return
	}
	if err := SendEmailOTP(email, otp); err != nil {
		log.Println("OTP email error:", err)
	}
}

func (h *Handler) RequestOTP(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Email == "" {
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}

	sendVerificationOTP(input.Email)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "OTP sent"})
}

func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Email == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	storedOTP, err := rdx.RdxGet("otp:" + input.Email)
	if err != nil || storedOTP != input.OTP {
		http.Error(w, "Invalid or expired OTP", http.StatusUnauthorized)
		return
	}

	// Mark user as verified
	_, err = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"email": input.Email},
		bson.M{"$set": bson.M{"email_verified": true}},
	)
	if err != nil {
		http.Error(w, "Failed to verify user", http.StatusInternalServerError)
		return
	}

	rdx.RdxDel("otp:" + input.Email) // Clean up OTP
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "User verified successfully"})
}
