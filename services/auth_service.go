package services

import (
	"context"
	"errors"
	"net/mail"
	"strconv"
	"time"

	"anket.link/configs"
	"anket.link/configs/configslog"
	"anket.link/models"
	"anket.link/repositories"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrEmailInvalid         AuthServiceError = "geçerli bir e-posta adresi girilmelidir"
	ErrEmailTaken           AuthServiceError = "bu e-posta adresi zaten kayıtlı"
	ErrPasswordTooShort     AuthServiceError = "şifre en az 8 karakter olmalıdır"
	ErrInvalidCredentials   AuthServiceError = "e-posta veya şifre hatalı"
	ErrRegistrationFailed   AuthServiceError = "kayıt oluşturulamadı"
	ErrTokenGeneration      AuthServiceError = "oturum token'ı üretilemedi"
	ErrInvalidToken         AuthServiceError = "geçersiz veya süresi dolmuş token"
	ErrResponderNotFound    AuthServiceError = "responder bulunamadı"
	ErrPasswordHashingError AuthServiceError = "şifre hash'lenemedi"
)

const minPasswordLength = 8

// AuthResult başarılı bir kayıt veya girişin sonucudur.
type AuthResult struct {
	Token     string
	Responder *models.Responder
}

// IAuthService responder kimlik işlemleri için arayüz.
type IAuthService interface {
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetResponderByID(ctx context.Context, id uint) (*models.Responder, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	repo repositories.IResponderRepository
}

// NewAuthService yeni bir AuthService örneği oluşturur (DI ile).
func NewAuthService() IAuthService {
	return &AuthService{repo: repositories.NewResponderRepository()}
}

// Register yeni bir responder kaydeder ve oturum token'ı üretir.
func (s *AuthService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrEmailInvalid
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, ErrRegistrationFailed
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashedPasswordBytes, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if hashErr != nil {
		return nil, ErrPasswordHashingError
	}

	responder := models.Responder{
		Email:        email,
		PasswordHash: string(hashedPasswordBytes),
	}
	if err := s.repo.Create(ctx, &responder); err != nil {
		// ExistsByEmail ile Create arasında araya giren eşzamanlı kayıt,
		// unique kısıtına takılır ve aynı "zaten kayıtlı" cevabını alır.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, ErrRegistrationFailed
	}

	token, err := GenerateResponderToken(responder.ID)
	if err != nil {
		configslog.Log.Error("Token üretilemedi", zap.Uint("responder_id", responder.ID), zap.Error(err))
		return nil, ErrTokenGeneration
	}

	configslog.SLog.Infof("Yeni responder kaydedildi: ID %d", responder.ID)
	return &AuthResult{Token: token, Responder: &responder}, nil
}

// Login kimlik bilgilerini doğrulayıp oturum token'ı üretir.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	responder, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(responder.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := GenerateResponderToken(responder.ID)
	if err != nil {
		configslog.Log.Error("Token üretilemedi", zap.Uint("responder_id", responder.ID), zap.Error(err))
		return nil, ErrTokenGeneration
	}

	return &AuthResult{Token: token, Responder: responder}, nil
}

// GetResponderByID token'dan çözülen kimliğin kaydını getirir.
func (s *AuthService) GetResponderByID(ctx context.Context, id uint) (*models.Responder, error) {
	responder, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrResponderNotFound
		}
		return nil, err
	}
	return responder, nil
}

var _ IAuthService = (*AuthService)(nil)

// GenerateResponderToken verilen responder için HS256 imzalı JWT üretir.
func GenerateResponderToken(responderID uint) (string, error) {
	secret := configs.GetJWTSecret()
	if secret == "" {
		return "", errors.New("JWT_SECRET tanımlı değil")
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(responderID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(configs.GetJWTTTL())),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseResponderToken bearer token'ı doğrulayıp responder ID'sini çözer.
// Yalnızca HS256 kabul edilir.
func ParseResponderToken(tokenString string) (uint, error) {
	secret := configs.GetJWTSecret()
	if secret == "" {
		return 0, ErrInvalidToken
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, ErrInvalidToken
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	responderID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || responderID == 0 {
		return 0, ErrInvalidToken
	}
	return uint(responderID), nil
}
