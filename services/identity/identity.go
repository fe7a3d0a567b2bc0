package identity

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// Provisioner creates login credentials with the identity provider.
// Towline never stores passwords itself.
type Provisioner interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
	DeleteAccount(ctx context.Context, id string) error
}

// FirebaseProvisioner provisions accounts in Firebase Auth.
type FirebaseProvisioner struct {
	Auth *auth.Client
}

func NewFirebaseProvisioner(client *auth.Client) *FirebaseProvisioner {
	return &FirebaseProvisioner{Auth: client}
}

// CreateAccount registers an email/password user and returns the provider UID.
func (p *FirebaseProvisioner) CreateAccount(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)
	user, err := p.Auth.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to create auth account: %w", err)
	}
	return user.UID, nil
}

// DeleteAccount removes the provider account. Used to roll back a
// registration whose database write failed.
func (p *FirebaseProvisioner) DeleteAccount(ctx context.Context, id string) error {
	if err := p.Auth.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete auth account %s: %w", id, err)
	}
	return nil
}
