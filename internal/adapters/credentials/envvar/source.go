package envvar

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/ports"
)

// Environment variables backing the env sources. They are read on every
// resolution, never cached, so a credential rotated mid-session takes effect
// on the next operation.
const (
	ServiceAccountVar     = "GOOGLE_SHEETS_SERVICE_ACCOUNT"
	ServiceAccountJSONVar = "GOOGLE_SHEETS_SERVICE_ACCOUNT_JSON"
)

type Source struct {
	kind     domain.SourceKind
	variable string
}

var _ ports.CredentialSource = (*Source)(nil)

// NewInlineJSONSource reads raw key JSON from GOOGLE_SHEETS_SERVICE_ACCOUNT_JSON.
func NewInlineJSONSource() *Source {
	return &Source{kind: domain.SourceInlineJSON, variable: ServiceAccountJSONVar}
}

// NewServiceAccountSource reads GOOGLE_SHEETS_SERVICE_ACCOUNT, whose value may
// be a key file path, inline key JSON, or an op:// reference.
func NewServiceAccountSource() *Source {
	return &Source{kind: domain.SourceEnv, variable: ServiceAccountVar}
}

func (s *Source) Kind() domain.SourceKind { return s.kind }

func (s *Source) Resolve(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	value := strings.TrimSpace(os.Getenv(s.variable))
	if value == "" {
		return "", fmt.Errorf("%s is not set", s.variable)
	}

	return value, nil
}
