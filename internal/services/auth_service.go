package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/heritageroots/heritage-backend/internal/config"
	"github.com/heritageroots/heritage-backend/internal/dto"
	"github.com/heritageroots/heritage-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrTermsNotAgreed     = errors.New("terms must be accepted")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	google *GoogleOAuthClient
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:     db,
		cfg:    cfg,
		google: NewGoogleOAuthClient(cfg),
	}
}

func (s *AuthService) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if !req.AgreedToTerms {
		return nil, ErrTermsNotAgreed
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := models.User{
		ID:                  uuid.New(),
		Email:               email,
		Password:            string(hash),
		Role:                role,
		FullName:            req.FullName,
		Phone:               req.Phone,
		CulturalAffiliation: req.CulturalAffiliation,
		AgreedToTerms:       true,
		EthicsAgreed:        req.EthicsAgreed,
		SafetyAgreed:        req.SafetyAgreed,
		NewsletterAgreed:    req.NewsletterAgreed,
		TermsAgreedAt:       &now,
		AuthProvider:        "email",
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.openSession(&user)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Password == "" {
		// Google-only account, no password to check.
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.openSession(&user)
}

// Logout revokes the server-side session behind the presented token.
func (s *AuthService) Logout(rawToken string) error {
	return s.db.Model(&models.Session{}).
		Where("token_hash = ?", hashToken(rawToken)).
		Update("revoked", true).Error
}

// Status reports whether the session behind the token is still live and
// returns the current profile.
func (s *AuthService) Status(userID uuid.UUID, rawToken string) (*dto.StatusResponse, error) {
	var sess models.Session
	err := s.db.Where("token_hash = ? AND revoked = false", hashToken(rawToken)).First(&sess).Error
	if err != nil || time.Now().After(sess.ExpiresAt) {
		return &dto.StatusResponse{Authenticated: false}, nil
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return &dto.StatusResponse{Authenticated: false}, nil
	}
	summary := user.Summary()
	return &dto.StatusResponse{Authenticated: true, User: &summary}, nil
}

// GoogleAuthURL builds the consent-screen redirect for the login flow.
func (s *AuthService) GoogleAuthURL(state string) string {
	return s.google.AuthURL(state)
}

// GoogleCallback exchanges the OAuth code. Existing accounts get a live
// session; first-time users get a short-lived pending token so the
// cultural-profile step can finish signup.
func (s *AuthService) GoogleCallback(code string) (*dto.AuthResponse, string, error) {
	info, err := s.google.Exchange(code)
	if err != nil {
		slog.Error("google oauth exchange failed", "error", err)
		return nil, "", ErrInvalidToken
	}

	var user models.User
	err = s.db.Where("google_id = ? OR email = ?", info.Sub, strings.ToLower(info.Email)).First(&user).Error
	if err == nil {
		if user.GoogleID == nil {
			s.db.Model(&user).Updates(map[string]interface{}{
				"google_id":     info.Sub,
				"auth_provider": "google",
			})
		}
		resp, err := s.openSession(&user)
		return resp, "", err
	}

	pending, err := s.generatePendingToken(info)
	if err != nil {
		return nil, "", err
	}
	return nil, pending, nil
}

// CompleteCulturalSignup turns a pending Google profile into a full account.
func (s *AuthService) CompleteCulturalSignup(req *dto.CulturalSignupRequest) (*dto.AuthResponse, error) {
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if !req.AgreedToTerms {
		return nil, ErrTermsNotAgreed
	}

	claims, err := s.parsePendingToken(req.PendingToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	email := strings.ToLower(claims.Email)
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	now := time.Now()
	googleID := claims.Sub
	user := models.User{
		ID:                  uuid.New(),
		Email:               email,
		Role:                role,
		FullName:            claims.Name,
		Phone:               req.Phone,
		CulturalAffiliation: req.CulturalAffiliation,
		AvatarURL:           claims.Picture,
		AgreedToTerms:       true,
		EthicsAgreed:        req.EthicsAgreed,
		SafetyAgreed:        req.SafetyAgreed,
		NewsletterAgreed:    req.NewsletterAgreed,
		TermsAgreedAt:       &now,
		AuthProvider:        "google",
		GoogleID:            &googleID,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.openSession(&user)
}

// SubmitContributorApplication records a seeker's request to become a
// contributor. Pending applications are unique per user.
func (s *AuthService) SubmitContributorApplication(userID uuid.UUID, req *dto.ContributorApplicationRequest) (*models.ContributorApplication, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	var count int64
	s.db.Model(&models.ContributorApplication{}).
		Where("user_id = ? AND status = 'pending'", userID).Count(&count)
	if count > 0 {
		return nil, errors.New("application already pending")
	}

	app := models.ContributorApplication{
		ID:               uuid.New(),
		UserID:           userID,
		KnowledgeDomains: req.KnowledgeDomains,
		Experience:       req.Experience,
		Motivation:       req.Motivation,
		Status:           "pending",
	}
	if err := s.db.Create(&app).Error; err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &app, nil
}

func (s *AuthService) openSession(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	sess := models.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(token),
		ExpiresAt: time.Now().Add(s.cfg.SessionExpiry),
	}
	if err := s.db.Create(&sess).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &dto.AuthResponse{
		Token:        token,
		DashboardURL: models.DashboardFor(user.Role),
		User:         user.Summary(),
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

type pendingClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Sub     string `json:"google_sub"`
	jwt.RegisteredClaims
}

func (s *AuthService) generatePendingToken(info *GoogleUserInfo) (string, error) {
	claims := pendingClaims{
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
		Sub:     info.Sub,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "pending-signup",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) parsePendingToken(raw string) (*pendingClaims, error) {
	claims := &pendingClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid || claims.Subject != "pending-signup" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
