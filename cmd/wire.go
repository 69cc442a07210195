package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/adapters/credentials/chain"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/adapters/googlesheets"
	summaryadapter "github.com/The-Luminous-Group/google-sheets-api-integration/internal/adapters/render/summary"
	tomlregistry "github.com/The-Luminous-Group/google-sheets-api-integration/internal/adapters/registry/toml"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/application"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/ports"
)

// sourcesVar overrides the credential source order, e.g. "keychain,env".
const sourcesVar = "GOOGLE_SHEETS_CREDENTIAL_SOURCES"

type app struct {
	service  *application.Service
	resolver *chain.Resolver
	registry ports.SpreadsheetRegistry
	renderer func(application.Envelope, summaryadapter.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	cfg := viper.New()

	registry, err := tomlregistry.NewRegistry(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire spreadsheet registry: %w", err)
	}

	resolver := chain.NewDefaultResolver(chainOptions(cfg))

	connect := func(ctx context.Context) (ports.SpreadsheetAPI, error) {
		cred, err := resolver.Resolve(ctx)
		if err != nil {
			return nil, err
		}

		return googlesheets.NewClient(ctx, cred)
	}

	return &app{
		service:  application.NewService(connect),
		resolver: resolver,
		registry: registry,
		renderer: summaryadapter.Render,
	}, nil
}

// chainOptions reads the source order override. The environment wins over the
// config file; both fall back to the built-in order.
func chainOptions(cfg *viper.Viper) chain.Options {
	order := chain.ParseSourceOrder(os.Getenv(sourcesVar))
	if len(order) == 0 {
		order = cfg.GetStringSlice("credentials.sources")
	}

	return chain.Options{
		Order:           order,
		KeychainService: cfg.GetString("credentials.keychain_service"),
		KeychainAccount: cfg.GetString("credentials.keychain_account"),
	}
}
