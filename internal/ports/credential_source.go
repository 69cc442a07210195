package ports

import (
	"context"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
)

// CredentialSource is one strategy for locating a service-account credential.
// Resolve returns the raw value the strategy found; classification and
// indirect-reference handling happen in the chain.
type CredentialSource interface {
	Kind() domain.SourceKind
	Resolve(ctx context.Context) (string, error)
}

// ReferenceReader dereferences an indirect secret locator such as an
// "op://" reference.
type ReferenceReader interface {
	ReadReference(ctx context.Context, ref string) (string, error)
}
