package keychain

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/ports"
)

// DefaultService is the credential-store service name the key is saved under,
// e.g. with `security add-generic-password -s "Google Sheets Service Account"`
// on macOS.
const DefaultService = "Google Sheets Service Account"

const fallbackAccount = "default"

type getFunc func(service, account string) (string, error)

type Source struct {
	service string
	account string
	get     getFunc
}

var _ ports.CredentialSource = (*Source)(nil)

// NewSource queries the OS credential store. Empty service falls back to
// DefaultService; empty account falls back to $USER at resolution time.
func NewSource(service, account string) *Source {
	if service == "" {
		service = DefaultService
	}

	return &Source{service: service, account: account, get: keyring.Get}
}

func (s *Source) Kind() domain.SourceKind { return domain.SourceKeychain }

func (s *Source) Resolve(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	account := s.account
	if account == "" {
		account = currentUser()
	}

	value, err := s.get(s.service, account)
	if err != nil {
		return "", fmt.Errorf("keychain read %q for account %q: %w", s.service, account, err)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("keychain entry %q for account %q is empty", s.service, account)
	}

	return value, nil
}

func currentUser() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return fallbackAccount
}
