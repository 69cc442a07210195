package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// SourceKind names a credential source strategy in the resolution chain.
type SourceKind string

const (
	// SourceInlineJSON reads raw key JSON from GOOGLE_SHEETS_SERVICE_ACCOUNT_JSON,
	// for sandboxed contexts where file access or subprocess execution is restricted.
	SourceInlineJSON SourceKind = "json"

	// SourceEnv reads GOOGLE_SHEETS_SERVICE_ACCOUNT, which may hold a key file
	// path, inline key JSON, or an indirect "op://" reference.
	SourceEnv SourceKind = "env"

	// SourceKeychain queries the OS credential store.
	SourceKeychain SourceKind = "keychain"

	// SourceOnePassword reads the key through the 1Password CLI.
	SourceOnePassword SourceKind = "1password"
)

// DefaultSourceOrder is the built-in attempt order, overridable via the
// GOOGLE_SHEETS_CREDENTIAL_SOURCES environment variable or the
// credentials.sources config key.
func DefaultSourceOrder() []SourceKind {
	return []SourceKind{SourceInlineJSON, SourceEnv, SourceKeychain, SourceOnePassword}
}

// OnePasswordRefPrefix marks an indirect secret reference. A winning chain
// value carrying this prefix is never used as a credential; it is forwarded to
// the 1Password strategy as a locator.
const OnePasswordRefPrefix = "op://"

// IsOnePasswordRef reports whether value is an indirect 1Password reference.
func IsOnePasswordRef(value string) bool {
	return strings.HasPrefix(value, OnePasswordRefPrefix)
}

// CredentialKind distinguishes a key file path from inline key content.
type CredentialKind int

const (
	// CredentialPath means Value is a filesystem path to a key JSON document.
	CredentialPath CredentialKind = iota

	// CredentialInline means Value is the key JSON document itself.
	CredentialInline
)

func (k CredentialKind) String() string {
	if k == CredentialInline {
		return "inline"
	}
	return "path"
}

// Credential is a resolved service-account credential together with the source
// that produced it. Exactly one credential is in play per operation; sources
// are never merged.
type Credential struct {
	Kind   CredentialKind
	Value  string
	Source SourceKind
}

// PathCredential tags value as a key file path.
func PathCredential(value string, source SourceKind) Credential {
	return Credential{Kind: CredentialPath, Value: value, Source: source}
}

// InlineCredential tags value as inline key JSON.
func InlineCredential(value string, source SourceKind) Credential {
	return Credential{Kind: CredentialInline, Value: value, Source: source}
}

// ClassifyCredential decides path-vs-inline for a value whose source does not
// tag it explicitly. A value whose first non-space character is '{' is inline
// JSON, anything else is a path. Sources that know their shape (the inline
// JSON variable) tag explicitly and skip the sniff.
func ClassifyCredential(value string, source SourceKind) Credential {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "{") {
		return InlineCredential(value, source)
	}
	return PathCredential(value, source)
}

// KeyDocument is the parsed form of a service-account key JSON document.
type KeyDocument struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
	UniverseDomain          string `json:"universe_domain"`
}

const keyDocumentType = "service_account"

// ParseKeyDocument parses and validates key JSON. Error messages never quote
// the document content.
func ParseKeyDocument(data []byte) (KeyDocument, error) {
	var key KeyDocument
	if err := json.Unmarshal(data, &key); err != nil {
		return KeyDocument{}, errors.New("service account key is not valid JSON")
	}
	if err := key.Validate(); err != nil {
		return KeyDocument{}, err
	}
	return key, nil
}

// Validate checks the fields an authenticated client cannot work without.
func (k KeyDocument) Validate() error {
	if k.Type != keyDocumentType {
		return fmt.Errorf("service account key has type %q, want %q", k.Type, keyDocumentType)
	}

	var missing []string
	if k.ClientEmail == "" {
		missing = append(missing, "client_email")
	}
	if k.PrivateKey == "" {
		missing = append(missing, "private_key")
	}
	if k.TokenURI == "" {
		missing = append(missing, "token_uri")
	}
	if len(missing) > 0 {
		return fmt.Errorf("service account key is missing fields: %s", strings.Join(missing, ", "))
	}

	return nil
}
