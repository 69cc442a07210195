package onepassword

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/ports"
)

// ItemPathVar overrides which op:// reference the source reads. Checked on
// every resolution.
const ItemPathVar = "GOOGLE_SHEETS_1PASSWORD_PATH"

// DefaultItemRef is where the service-account key lives when no override is
// set.
const DefaultItemRef = "op://Personal/Google Sheets Service Account/credential"

var ErrUnavailable = errors.New("op command unavailable")

type runFunc func(ctx context.Context, args ...string) (stdout string, err error)

type Source struct {
	run runFunc
}

var (
	_ ports.CredentialSource = (*Source)(nil)
	_ ports.ReferenceReader  = (*Source)(nil)
)

func NewSource() *Source {
	return &Source{run: runOpCommand}
}

func (s *Source) Kind() domain.SourceKind { return domain.SourceOnePassword }

// Resolve reads the configured item reference through the op CLI.
func (s *Source) Resolve(ctx context.Context) (string, error) {
	return s.ReadReference(ctx, itemRef())
}

// ReadReference reads an arbitrary op:// reference. The chain also calls it
// when another source yields a reference instead of a credential.
func (s *Source) ReadReference(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !domain.IsOnePasswordRef(ref) {
		return "", fmt.Errorf("not a 1password reference: %q", ref)
	}

	stdout, err := s.run(ctx, "read", ref)
	if err != nil {
		return "", fmt.Errorf("op read %q: %w", ref, err)
	}

	value := strings.TrimSpace(stdout)
	if value == "" {
		return "", fmt.Errorf("op read %q returned nothing", ref)
	}

	return value, nil
}

func itemRef() string {
	if ref := strings.TrimSpace(os.Getenv(ItemPathVar)); ref != "" {
		return ref
	}
	return DefaultItemRef
}

// runOpCommand shells out to the 1Password CLI. Stderr is discarded, not
// captured; op diagnostics can quote item fields and must never reach error
// messages.
func runOpCommand(ctx context.Context, args ...string) (string, error) {
	path, err := exec.LookPath("op")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrUnavailable
		}
		return "", fmt.Errorf("locate op command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return stdout.String(), nil
}
