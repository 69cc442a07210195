package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/adapters/credentials/envvar"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/adapters/credentials/keychain"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/adapters/credentials/onepassword"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/ports"
)

// Resolver walks credential sources in order and hands back the first
// non-empty value. It runs fresh on every call; nothing is cached between
// operations.
type Resolver struct {
	sources []ports.CredentialSource
	refs    ports.ReferenceReader
}

func NewResolver(sources []ports.CredentialSource, refs ports.ReferenceReader) *Resolver {
	return &Resolver{sources: sources, refs: refs}
}

// Options configure the built-in source set.
type Options struct {
	// Order lists source kind names to attempt. Empty means the default
	// json, env, keychain, 1password order. Unknown names never resolve
	// but are still named in resolution failures.
	Order []string

	KeychainService string
	KeychainAccount string
}

// NewDefaultResolver wires the built-in sources in the configured order. The
// 1Password source doubles as the reference reader for op:// redirects even
// when the order omits it.
func NewDefaultResolver(opts Options) *Resolver {
	op := onepassword.NewSource()

	order := opts.Order
	if len(order) == 0 {
		for _, kind := range domain.DefaultSourceOrder() {
			order = append(order, string(kind))
		}
	}

	sources := make([]ports.CredentialSource, 0, len(order))
	for _, name := range order {
		name = strings.ToLower(strings.TrimSpace(name))
		switch domain.SourceKind(name) {
		case domain.SourceInlineJSON:
			sources = append(sources, envvar.NewInlineJSONSource())
		case domain.SourceEnv:
			sources = append(sources, envvar.NewServiceAccountSource())
		case domain.SourceKeychain:
			sources = append(sources, keychain.NewSource(opts.KeychainService, opts.KeychainAccount))
		case domain.SourceOnePassword:
			sources = append(sources, op)
		default:
			if name != "" {
				sources = append(sources, unknownSource(name))
			}
		}
	}

	return NewResolver(sources, op)
}

// ParseSourceOrder splits a comma-separated order override such as
// "keychain,env". Blank entries are dropped, names are lowercased.
func ParseSourceOrder(raw string) []string {
	parts := strings.Split(raw, ",")
	order := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		order = append(order, part)
	}

	return order
}

// Resolve returns the first credential the chain produces. A winning value
// that is itself an op:// reference is dereferenced through the reference
// reader; a failure there fails the whole resolution, later sources are not
// consulted. On total failure the error names the attempted source kinds and
// nothing else.
func (r *Resolver) Resolve(ctx context.Context) (domain.Credential, error) {
	var attempted []string

	for _, source := range r.sources {
		if err := ctx.Err(); err != nil {
			return domain.Credential{}, err
		}

		kind := source.Kind()
		value, err := source.Resolve(ctx)
		if err != nil {
			if shouldAbort(err) {
				return domain.Credential{}, err
			}
			slog.Debug("credential source skipped", "source", kind)
			attempted = append(attempted, string(kind))
			continue
		}

		value = strings.TrimSpace(value)
		if value == "" {
			slog.Debug("credential source skipped", "source", kind)
			attempted = append(attempted, string(kind))
			continue
		}

		slog.Debug("credential resolved", "source", kind)

		if domain.IsOnePasswordRef(value) {
			return r.readReference(ctx, value, kind)
		}

		if kind == domain.SourceInlineJSON {
			return domain.InlineCredential(value, kind), nil
		}

		return domain.ClassifyCredential(value, kind), nil
	}

	return domain.Credential{}, fmt.Errorf("%w: no credential found (sources tried: %s)",
		domain.ErrAuthentication, strings.Join(attempted, ", "))
}

func (r *Resolver) readReference(ctx context.Context, ref string, from domain.SourceKind) (domain.Credential, error) {
	if r.refs == nil {
		return domain.Credential{}, fmt.Errorf("%w: no reference reader for %q", domain.ErrAuthentication, ref)
	}

	value, err := r.refs.ReadReference(ctx, ref)
	if err != nil {
		if shouldAbort(err) {
			return domain.Credential{}, err
		}
		return domain.Credential{}, fmt.Errorf("%w: %v", domain.ErrAuthentication, err)
	}

	return domain.ClassifyCredential(strings.TrimSpace(value), from), nil
}

func shouldAbort(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// unknownSource keeps a misspelled order entry visible in failure reports.
type unknownSource string

func (u unknownSource) Kind() domain.SourceKind {
	return domain.SourceKind(string(u) + " (unknown)")
}

func (u unknownSource) Resolve(context.Context) (string, error) {
	return "", fmt.Errorf("unknown credential source %q", string(u))
}
