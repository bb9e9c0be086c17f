package newsportal

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/noticeboard/internal/auth"
)

// Login authenticates a user. A pre-provisioned user without a password gets
// the supplied one stored on the first call and has to log in again for a token.
func (m *Manager) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, validationError("username and password are required")
	}

	user, err := m.db.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	} else if user == nil {
		return nil, authError("invalid username")
	}

	if user.Password == nil || *user.Password == "" {
		hash, err := m.hasher.Hash(password)
		if err != nil {
			return nil, err
		}

		if err := m.db.SetUserPassword(ctx, user.ID, hash); err != nil {
			return nil, fmt.Errorf("db set password: %w", err)
		}

		m.log.Info("initial password set", "userID", user.ID, "username", user.Username)
		return &LoginResult{PasswordSet: true}, nil
	}

	ok, err := m.hasher.Verify(*user.Password, password)
	if err != nil {
		return nil, err
	} else if !ok {
		return nil, authError("invalid password")
	}

	token, err := m.issuer.Issue(auth.Identity{
		ID:       user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token}, nil
}
