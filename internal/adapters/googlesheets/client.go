package googlesheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/ports"
)

// Client is an authenticated session with the Sheets v4 values surface. One
// client serves one resolved credential; callers build a fresh client per
// operation so credential rotation is picked up between calls.
type Client struct {
	service *sheets.Service
	key     domain.KeyDocument
}

var _ ports.SpreadsheetAPI = (*Client)(nil)

// NewClient authenticates with the resolved credential. All failures here are
// authentication failures, from an unreadable key file to a rejected JWT
// config.
func NewClient(ctx context.Context, cred domain.Credential) (*Client, error) {
	slog.Debug("creating sheets service", "source", cred.Source, "credential", cred.Kind)

	key, data, err := LoadKeyDocument(cred)
	if err != nil {
		return nil, err
	}

	cfg, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%w: build jwt config: %v", domain.ErrAuthentication, err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		slog.Error("failed to create sheets service", "client_email", key.ClientEmail, "error", err)
		return nil, fmt.Errorf("%w: create sheets service: %v", domain.ErrAuthentication, err)
	}

	slog.Debug("sheets service created", "client_email", key.ClientEmail)

	return &Client{service: service, key: key}, nil
}

// ServiceAccount returns the identity the client authenticates as.
func (c *Client) ServiceAccount() string {
	return c.key.ClientEmail
}

// LoadKeyDocument reads and validates the key document behind a resolved
// credential without opening a session. Returns the parsed document and the
// raw bytes it was parsed from.
func LoadKeyDocument(cred domain.Credential) (domain.KeyDocument, []byte, error) {
	var data []byte
	switch cred.Kind {
	case domain.CredentialInline:
		data = []byte(cred.Value)
	default:
		b, err := os.ReadFile(cred.Value)
		if err != nil {
			return domain.KeyDocument{}, nil, fmt.Errorf("%w: read service account key: %v", domain.ErrAuthentication, err)
		}
		data = b
	}

	key, err := domain.ParseKeyDocument(data)
	if err != nil {
		return domain.KeyDocument{}, nil, fmt.Errorf("%w: %v", domain.ErrAuthentication, err)
	}

	return key, data, nil
}
