package utils

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"aidanwoods.dev/go-paseto"
)

// PasetoMaker verarbeitet lokale PASETO-Operationen der Version 4 (symmetrisch).
type PasetoMaker struct {
	symmetricKey paseto.V4SymmetricKey
}

// NewPasetoMaker creates instance with existing key
func NewPasetoMaker(keyHex string) (*PasetoMaker, error) {
	key, err := paseto.V4SymmetricKeyFromHex(keyHex)
	if err != nil {
		return nil, fmt.Errorf("Invalid symmetric key: %w", err)
	}

	return &PasetoMaker{
		symmetricKey: key,
	}, nil
}

// GenerateSymmetricKey generiert einen neuen symmetrischen V4-Schlüssel. Wird verwendet, wenn kein hexKey vorhanden ist, nur einmal.
func GenerateSymmetricKey() string {
	key := paseto.NewV4SymmetricKey()
	return hex.EncodeToString(key.ExportBytes())
}

// CreateToken erstellt ein lokales V4 Token (encrypted)
func (m *PasetoMaker) CreateToken(userID, username, email, sessionID string, isUserActive bool, duration time.Duration) (string, error) {
	token := paseto.NewToken()

	token.SetIssuedAt(time.Now())
	token.SetNotBefore(time.Now())
	token.SetExpiration(time.Now().Add(duration))
	token.SetAudience("Werkstatt-meister")
	token.SetIssuer("WM-service")
	token.SetSubject(userID)

	token.SetString("username", username)
	token.SetString("email", email)
	token.SetString("is_active", strconv.FormatBool(isUserActive))
	token.SetString("jti", sessionID)

	encrypted := token.V4Encrypt(m.symmetricKey, nil)

	return encrypted, nil
}

type PayloadPaseto struct {
	UserID   string
	Username string
	Email    string
	IsActive bool
	JTI      string
}

// VerifyToken entschlüsselt und validiert ein Token und liefert die Claims.
func (m *PasetoMaker) VerifyToken(tokenStr string) (*PayloadPaseto, error) {
	parser := paseto.NewParser()
	parser.AddRule(paseto.NotExpired())
	parser.AddRule(paseto.ValidAt(time.Now()))

	token, err := parser.ParseV4Local(m.symmetricKey, tokenStr, nil)
	if err != nil {
		return nil, fmt.Errorf("Token kann nicht verifiziert werden: %w", err)
	}

	userID, err := token.GetSubject()
	if err != nil {
		return nil, err
	}

	username, err := token.GetString("username")
	if err != nil {
		return nil, err
	}

	email, err := token.GetString("email")
	if err != nil {
		return nil, err
	}

	isActiveStr, err := token.GetString("is_active")
	if err != nil {
		return nil, err
	}
	isActive, _ := strconv.ParseBool(isActiveStr)

	jti, err := token.GetString("jti")
	if err != nil {
		return nil, err
	}

	return &PayloadPaseto{
		UserID:   userID,
		Username: username,
		Email:    email,
		IsActive: isActive,
		JTI:      jti,
	}, nil
}
