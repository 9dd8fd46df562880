package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"firebase.google.com/go/v4/auth"

	"altanzam/internal/domain/entity"
	"altanzam/internal/usecase"
	"altanzam/pkg/errors"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

type FirebaseAuthClient struct {
	client     *auth.Client
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client:     client,
		apiKey:     apiKey,
		endpoint:   signInEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", errors.Conflict("Email already in use")
		}
		return "", err
	}

	return user.UID, nil
}

// VerifyToken checks an ID token and builds the caller's session from its
// claims. The role comes from the "role" custom claim, or "admin": true.
func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, idToken string) (entity.Session, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return entity.Session{}, err
	}
	return SessionFromClaims(token.UID, token.Claims), nil
}

func SessionFromClaims(uid string, claims map[string]interface{}) entity.Session {
	session := entity.Session{UID: uid, Role: entity.RoleUser}
	if v, ok := claims["email"].(string); ok {
		session.Email = v
	}
	if v, ok := claims["name"].(string); ok {
		session.DisplayName = v
	}
	if v, ok := claims["picture"].(string); ok {
		session.PhotoURL = v
	}
	if v, ok := claims["role"].(string); ok && v == entity.RoleAdmin {
		session.Role = entity.RoleAdmin
	}
	if v, ok := claims["admin"].(bool); ok && v {
		session.Role = entity.RoleAdmin
	}
	return session
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID      string `json:"localId"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	Error        *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmailPassword verifies a password through the Identity Toolkit
// REST API. The Admin SDK has no password check.
func (f *FirebaseAuthClient) SignInWithEmailPassword(ctx context.Context, email, password string) (*usecase.AuthToken, error) {
	if f.apiKey == "" {
		return nil, fmt.Errorf("FIREBASE_API_KEY is not configured")
	}

	body, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint+"?key="+f.apiKey, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sign-in request failed: %v", err)
	}
	defer resp.Body.Close()

	var out signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode sign-in response: %v", err)
	}
	if resp.StatusCode != http.StatusOK || out.Error != nil {
		msg := resp.Status
		if out.Error != nil {
			msg = out.Error.Message
		}
		return nil, fmt.Errorf("sign-in rejected: %s", msg)
	}

	expiresIn, _ := strconv.Atoi(out.ExpiresIn)
	return &usecase.AuthToken{
		UID:          out.LocalID,
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

func (f *FirebaseAuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	params := (&auth.UserToUpdate{}).
		Password(newPassword)

	_, err := f.client.UpdateUser(ctx, uid, params)
	return err
}

func (f *FirebaseAuthClient) UpdateUserProfile(ctx context.Context, uid string, displayName, photoURL *string) error {
	params := &auth.UserToUpdate{}
	if displayName != nil {
		params = params.DisplayName(*displayName)
	}
	if photoURL != nil {
		params = params.PhotoURL(*photoURL)
	}

	_, err := f.client.UpdateUser(ctx, uid, params)
	return err
}
