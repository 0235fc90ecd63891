package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"petalia/cart"
	"petalia/db"
	"petalia/middleware"
	"petalia/models"
	"petalia/rdx"
	"petalia/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

func sendError(w http.ResponseWriter, code int, msg string) {
	utils.RespondWithError(w, code, msg)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Username == "" || input.Password == "" || input.Email == "" {
		sendError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	err := db.UserCollection.FindOne(ctx, bson.M{"$or": []bson.M{
		{"username": input.Username},
		{"email": input.Email},
	}}).Err()
	if err == nil {
		sendError(w, http.StatusConflict, "User already exists")
		return
	} else if err != mongo.ErrNoDocuments {
		sendError(w, http.StatusInternalServerError, "Database error")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		UserID:    utils.GetUUID(),
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hashed),
		Role:      []string{"customer"},
		CreatedAt: time.Now(),
	}

	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		log.Println("Register InsertOne error:", err)
		sendError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	go sendVerificationOTP(user.Email)

	utils.SendResponse(w, http.StatusCreated, map[string]string{
		"userid": user.UserID,
	}, "Registration successful", nil)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Username == "" || input.Password == "" {
		sendError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	var storedUser models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"username": input.Username}).Decode(&storedUser)
	if err != nil {
		sendError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.Password), []byte(input.Password)); err != nil {
		sendError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	tokenString, err := generateAccessToken(storedUser)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to generate refresh token")
		return
	}

	hashedRefresh := hashToken(refreshToken)
	_, err = db.UserCollection.UpdateOne(
		ctx,
		bson.M{"userid": storedUser.UserID},
		bson.M{
			"$set": bson.M{
				"refresh_token":  hashedRefresh,
				"refresh_expiry": time.Now().Add(refreshTokenTTL),
				"last_login":     time.Now(),
			},
		},
	)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to store refresh token")
		return
	}

	if err := rdx.RdxHset("tokki", storedUser.UserID, tokenString); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	// Identity just became present: fold the guest cart in, once.
	if guestToken := r.Header.Get(cart.GuestCartHeader); guestToken != "" {
		h.carts.MergeOnLogin(ctx, storedUser.UserID, guestToken)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{
		"token":        tokenString,
		"refreshToken": refreshToken,
		"userid":       storedUser.UserID,
	}, "Login successful", nil)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		UserID       string `json:"userid"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var storedUser models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": input.UserID}).Decode(&storedUser)
	if err != nil {
		sendError(w, http.StatusUnauthorized, "Unknown user")
		return
	}

	if storedUser.RefreshToken != hashToken(input.RefreshToken) || time.Now().After(storedUser.RefreshExpiry) {
		sendError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	newTokenString, err := generateAccessToken(storedUser)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	if err := rdx.RdxHset("tokki", storedUser.UserID, newTokenString); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{
		"token": newTokenString,
	}, "Token refreshed", nil)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	token := r.Header.Get("Authorization")
	if len(token) >= 8 && token[:7] == "Bearer " {
		token = token[7:]
	}
	claims, err := middleware.ValidateJWT(token)
	if err != nil {
		sendError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := rdx.RdxHdel("tokki", claims.UserID); err != nil {
		log.Println("Logout token cleanup error:", err)
	}

	utils.SendResponse(w, http.StatusOK, nil, "Logged out successfully", nil)
}
