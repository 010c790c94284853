package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"unicode"

	"eshop/config"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/service"
	"eshop/internal/errors"
)

const saltSize = 16

// hmacPasswordHasher hashes passwords with HMAC-SHA256 keyed by a
// server-held secret. The stored value is base64(salt || mac) where the
// mac covers salt || password.
type hmacPasswordHasher struct {
	key      []byte
	strength *config.PasswordStrengthConfig
}

// NewHMACPasswordHasher creates a PasswordHasher from the hashing secret.
// An empty secret is a configuration error.
func NewHMACPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	if cfg.Hashing.SecretKey == "" {
		return nil, errors.New("hashing secret key is not configured")
	}

	return &hmacPasswordHasher{
		key:      []byte(cfg.Hashing.SecretKey),
		strength: cfg.PasswordStrength,
	}, nil
}

// Hash generates a salted HMAC digest of the password.
func (h *hmacPasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "generate salt")
	}

	mac := h.mac(salt, password)
	stored := make([]byte, 0, saltSize+len(mac))
	stored = append(stored, salt...)
	stored = append(stored, mac...)

	return base64.StdEncoding.EncodeToString(stored), nil
}

// Check reports whether password matches the stored hash. Malformed
// stored values never match.
func (h *hmacPasswordHasher) Check(hashed, password string) bool {
	stored, err := base64.StdEncoding.DecodeString(hashed)
	if err != nil || len(stored) <= saltSize {
		return false
	}

	salt, mac := stored[:saltSize], stored[saltSize:]

	return hmac.Equal(mac, h.mac(salt, password))
}

// ValidateStrength enforces the configured password strength rules.
func (h *hmacPasswordHasher) ValidateStrength(password string) error {
	rules := h.strength
	if rules == nil {
		return nil
	}

	length := len([]rune(password))
	if rules.MinLength > 0 && length < rules.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	}
	if rules.MaxLength > 0 && length > rules.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsNumber(r):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	switch {
	case rules.RequireUppercase && !hasUpper:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain an uppercase letter")
	case rules.RequireLowercase && !hasLower:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a lowercase letter")
	case rules.RequireNumbers && !hasNumber:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a digit")
	case rules.RequireSpecial && !hasSpecial:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a special character")
	}

	return nil
}

func (h *hmacPasswordHasher) mac(salt []byte, password string) []byte {
	mac := hmac.New(sha256.New, h.key)
	mac.Write(salt)
	mac.Write([]byte(password))

	return mac.Sum(nil)
}
