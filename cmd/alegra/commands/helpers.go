package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/einvoice-io/alegra-client/pkg/alegra"
	"github.com/einvoice-io/alegra-client/pkg/alegraclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	defaultYAMLIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrNoStdinData          = errors.New("no data on stdin")
	ErrInvalidFilterFormat  = errors.New("invalid filter, expected key=value")
	ErrDocumentFileRequired = errors.New("a document file is required (--file)")
	ErrNotDeleted           = errors.New("resource was not deleted")
)

// CreateClient builds an API client from the resolved configuration (flags,
// environment variables, config file).
func CreateClient() (alegra.Client, error) {
	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return nil, alegra.NewConfigurationError(
			"API key is required. Run 'alegra login' or set ALEGRA_API_KEY")
	}

	environment := alegra.Environment(viper.GetString("environment"))
	if environment == "" {
		environment = alegra.EnvironmentSandbox
	}

	config := &alegra.Config{
		APIKey:      apiKey,
		Environment: environment,
		BaseURL:     viper.GetString("base_url"),
	}

	if viper.GetBool("debug") {
		config.Debug = true
		config.Logger = NewZerologAdapter(os.Stderr)
	}

	return alegraclient.New(config)
}

// ZerologAdapter bridges the client's logger interface onto zerolog.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter builds a console-format logger writing to w.
func NewZerologAdapter(w *os.File) *ZerologAdapter {
	writer := zerolog.ConsoleWriter{Out: w}

	return &ZerologAdapter{
		logger: zerolog.New(writer).With().Timestamp().Logger(),
	}
}

func (a *ZerologAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug().Fields(fields).Msg(msg)
}

func (a *ZerologAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info().Fields(fields).Msg(msg)
}

func (a *ZerologAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn().Fields(fields).Msg(msg)
}

func (a *ZerologAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error().Fields(fields).Msg(msg)
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// loadDocumentFile reads a JSON document description from a file, or from
// stdin when the path is "-".
func loadDocumentFile[T any](path string) (*T, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = readAllStdin()
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("reading document file: %w", err)
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document file %s: %w", path, err)
	}

	return &doc, nil
}

func readAllStdin() ([]byte, error) {
	info, err := os.Stdin.Stat()
	if err != nil {
		return nil, err
	}

	if info.Mode()&os.ModeCharDevice != 0 {
		return nil, ErrNoStdinData
	}

	return io.ReadAll(os.Stdin)
}

// listParamsFromFlags assembles list query parameters from the shared
// --page/--per-page/--order-by/--filter flags.
func listParamsFromFlags(page, perPage int, orderBy string, filters []string) (*alegra.QueryParams, error) {
	params := alegra.NewQueryParams()

	if page > 0 {
		params.WithPage(page)
	}

	if perPage > 0 {
		params.WithPerPage(perPage)
	}

	params.OrderBy = orderBy

	for _, filter := range filters {
		key, value, ok := splitFilter(filter)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFilterFormat, filter)
		}

		params.WithFilter(key, value)
	}

	return params, nil
}

func splitFilter(filter string) (string, string, bool) {
	for i := 0; i < len(filter); i++ {
		if filter[i] == '=' {
			return filter[:i], filter[i+1:], i > 0
		}
	}

	return "", "", false
}

// orDash substitutes a placeholder for empty table cells.
func orDash(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
