package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"spotnere-backend/internal/dto"
	"spotnere-backend/internal/supabase"
)

// AuthService handles admin login and signup against Supabase Auth, keeping
// the admins table as the profile store.
type AuthService struct {
	sb  *supabase.Client
	log *zap.Logger
}

func NewAuthService(sb *supabase.Client, log *zap.Logger) *AuthService {
	return &AuthService{sb: sb, log: log}
}

// Login authenticates with email and password. The profile attached to the
// response comes from the admins table when one exists; otherwise the bare
// auth user id and email are used.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	session, err := s.sb.SignInWithPassword(ctx, email, password)
	if err != nil {
		if supabase.IsEmailNotConfirmed(err) {
			return nil, Unauthorizedf("Please confirm your email before logging in")
		}
		if supabase.IsInvalidCredentials(err) || supabase.IsAuthFailure(err) {
			return nil, Unauthorizedf("Invalid email or password")
		}
		return nil, err
	}
	if session.User == nil {
		return nil, Unauthorizedf("Invalid email or password")
	}
	if session.AccessToken == "" {
		return nil, Unauthorizedf("Authentication failed: No session created. Please check if email is confirmed.")
	}

	user := map[string]any{
		"id":    session.User.ID,
		"email": session.User.Email,
	}
	profile, err := s.sb.Select(ctx, "admins", supabase.Where("email", email))
	if err != nil {
		s.log.Warn("admin profile lookup failed, using auth user data", zap.Error(err))
	} else if len(profile) > 0 {
		user = profile[0]
	}

	return &dto.AuthResponse{
		Success:      true,
		Message:      "Login successful",
		User:         user,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	}, nil
}

// Signup registers a new admin in Supabase Auth and mirrors the profile into
// the admins table. A failed profile insert fails the whole signup.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	session, err := s.sb.SignUp(ctx, req.Email, req.Password, map[string]any{
		"first_name":   req.FirstName,
		"last_name":    req.LastName,
		"phone_number": req.PhoneNumber,
	})
	if err != nil {
		if supabase.IsAlreadyRegistered(err) {
			return nil, Validationf("An account with this email already exists")
		}
		return nil, err
	}
	if session.User == nil {
		return nil, Validationf("Failed to create user account")
	}

	profile := map[string]any{
		"id":           session.User.ID,
		"email":        req.Email,
		"first_name":   req.FirstName,
		"last_name":    req.LastName,
		"phone_number": req.PhoneNumber,
		"address":      req.Address,
		"city":         req.City,
		"state":        req.State,
		"country":      req.Country,
		"postal_code":  req.PostalCode,
	}
	created, err := s.sb.Insert(ctx, "admins", profile)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin profile: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("failed to create admin profile")
	}

	return &dto.AuthResponse{
		Success:      true,
		Message:      "Account created successfully",
		User:         created[0],
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	}, nil
}
