package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"

	"github.com/AlexZinkM/secp-wallet/internal/crypto"
	"github.com/AlexZinkM/secp-wallet/internal/model"
)

// Config contains all configuration parameters for the application.
// Passwords are never part of it: they come from the request, a flag, or ReadPassword().
type Config struct {
	Port       string `envconfig:"PORT" default:"8080"`
	ExportDir  string `envconfig:"EXPORT_DIR" default:"."`
	ExportMode string `envconfig:"EXPORT_MODE" default:"scrypt"`
	ScryptN    int    `envconfig:"SCRYPT_N" default:"262144"`
	ScryptR    int    `envconfig:"SCRYPT_R" default:"8"`
	ScryptP    int    `envconfig:"SCRYPT_P" default:"1"`
	QRSize     int    `envconfig:"QR_SIZE" default:"256"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty  bool   `envconfig:"LOG_PRETTY" default:"false"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads .env (if present) and then configuration from environment variables.
func Init() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg = c
	return nil
}

// Validate checks values envconfig cannot check on its own
func (c *Config) Validate() error {
	if !model.ExportMode(c.ExportMode).Valid() {
		return fmt.Errorf("EXPORT_MODE must be %q or %q", model.ExportModeScrypt, model.ExportModeFernet)
	}
	if err := c.KDFParams().Validate(); err != nil {
		return err
	}
	if c.QRSize < 21 {
		return errors.New("QR_SIZE must be at least 21 pixels")
	}
	return nil
}

// KDFParams returns the scrypt parameters as the crypto package expects them
func (c *Config) KDFParams() crypto.KDFParams {
	return crypto.KDFParams{N: c.ScryptN, R: c.ScryptR, P: c.ScryptP}
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetExportDir returns the directory .cwt files are written to
func GetExportDir() string {
	return Get().ExportDir
}

// GetExportMode returns how exports are encrypted
func GetExportMode() model.ExportMode {
	return model.ExportMode(Get().ExportMode)
}

// GetKDFParams returns scrypt parameters from configuration
func GetKDFParams() crypto.KDFParams {
	return Get().KDFParams()
}

// GetQRSize returns the QR code PNG size in pixels
func GetQRSize() int {
	return Get().QRSize
}

// ReadPassword prompts for a password in the terminal without echoing it.
// Caller must zero the returned slice after use for security.
func ReadPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: pass --password or run interactively")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	password := make([]byte, len(raw))
	copy(password, raw)
	clear(raw)
	return password, nil
}
