package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/ports"
)

const (
	configName       = "config"
	configType       = "toml"
	registryPathKey  = "spreadsheets.path"
	registryFileMode = 0o600
	registryDirMode  = 0o700
	configDirName    = ".gsheets"
	registryFileName = "spreadsheets.toml"
	tempFilePattern  = ".spreadsheets-*.toml.tmp"
)

// Registry stores spreadsheet aliases in a TOML file under the user's config
// directory. Writes replace the whole file atomically.
type Registry struct {
	registryPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SpreadsheetRegistry = (*Registry)(nil)

// NewRegistry bootstraps cfg with the config file location and defaults, then
// resolves where the alias file lives. The same viper instance carries the
// credential settings read by the command layer.
func NewRegistry(cfg *viper.Viper) (*Registry, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, configDirName, registryFileName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault(registryPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	registryPath := cfg.GetString(registryPathKey)
	if registryPath == "" {
		return nil, errors.New("spreadsheets registry path is empty")
	}
	registryPath, err = normalizeRegistryPath(registryPath)
	if err != nil {
		return nil, err
	}

	return &Registry{registryPath: registryPath, mu: lockForPath(registryPath)}, nil
}

func (r *Registry) Save(ctx context.Context, alias domain.Alias) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := alias.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	encoded := toSchema(alias)
	updated := false
	for i := range file.Spreadsheets {
		if file.Spreadsheets[i].Name == encoded.Name {
			file.Spreadsheets[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Spreadsheets = append(file.Spreadsheets, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Registry) Get(ctx context.Context, name string) (domain.Alias, error) {
	if err := ctx.Err(); err != nil {
		return domain.Alias{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Alias{}, err
	}

	for _, entry := range file.Spreadsheets {
		if entry.Name == name {
			return fromSchema(entry), nil
		}
	}

	return domain.Alias{}, fmt.Errorf("%w: %q", domain.ErrAliasNotFound, name)
}

func (r *Registry) List(ctx context.Context) ([]domain.Alias, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	aliases := make([]domain.Alias, 0, len(file.Spreadsheets))
	for _, entry := range file.Spreadsheets {
		aliases = append(aliases, fromSchema(entry))
	}
	sort.Slice(aliases, func(i, j int) bool { return aliases[i].Name < aliases[j].Name })

	return aliases, nil
}

func (r *Registry) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	kept := file.Spreadsheets[:0]
	found := false
	for _, entry := range file.Spreadsheets {
		if entry.Name == name {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return fmt.Errorf("%w: %q", domain.ErrAliasNotFound, name)
	}
	file.Spreadsheets = kept

	return r.writeSchema(file)
}

func (r *Registry) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.registryPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read spreadsheets file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode spreadsheets file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Registry) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.registryPath), registryDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode spreadsheets file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.registryPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp spreadsheets file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp spreadsheets file: %w", err)
	}

	if err := tempFile.Chmod(registryFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp spreadsheets file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp spreadsheets file: %w", err)
	}

	if err := os.Rename(tempName, r.registryPath); err != nil {
		return fmt.Errorf("replace spreadsheets file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.registryPath, registryFileMode); err != nil {
		return fmt.Errorf("chmod spreadsheets file: %w", err)
	}

	return nil
}

func normalizeRegistryPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve spreadsheets path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(alias domain.Alias) aliasSchema {
	return aliasSchema{
		Name:  alias.Name,
		ID:    string(alias.SpreadsheetID),
		Sheet: alias.Sheet,
	}
}

func fromSchema(entry aliasSchema) domain.Alias {
	return domain.Alias{
		Name:          entry.Name,
		SpreadsheetID: domain.SpreadsheetID(entry.ID),
		Sheet:         entry.Sheet,
	}
}
