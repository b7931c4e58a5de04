package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"clone-generator/internal/gen"
	"clone-generator/internal/pipeline"
	"clone-generator/internal/plan"
	"clone-generator/internal/policy"
)

// Configuration keys. Nested keys map to CLONEGEN_<SECTION>_<KEY>.
const (
	keyDir                = "dir"
	keyPackages           = "packages"
	keyOverrides          = "overrides"
	keyParallelism        = "parallelism"
	keyComments           = "comments"
	keyRuntimeImport      = "runtime_import"
	keyFileSuffix         = "file_suffix"
	keyVerbose            = "verbose"
	keyDevLog             = "dev_log"
	keyAllowSelfDeepClone = "policy.allow_self_deep_clone"
	keyDebounce           = "watch.debounce"
)

// envPrefix is the prefix of environment variables read by viper.
const envPrefix = "CLONEGEN"

// configName is the base name of the optional config file.
const configName = "clonegen"

// defaultDebounce is the quiet period of watch mode.
const defaultDebounce = 200 * time.Millisecond

// Settings is the resolved configuration of one invocation.
type Settings struct {
	Dir           string         `mapstructure:"dir"`
	Packages      []string       `mapstructure:"packages"`
	Overrides     string         `mapstructure:"overrides"`
	Parallelism   int            `mapstructure:"parallelism"`
	Comments      bool           `mapstructure:"comments"`
	RuntimeImport string         `mapstructure:"runtime_import"`
	FileSuffix    string         `mapstructure:"file_suffix"`
	Verbose       bool           `mapstructure:"verbose"`
	DevLog        bool           `mapstructure:"dev_log"`
	Policy        PolicySettings `mapstructure:"policy"`
	Watch         WatchSettings  `mapstructure:"watch"`
}

// PolicySettings tunes the clone policy.
type PolicySettings struct {
	AllowSelfDeepClone bool `mapstructure:"allow_self_deep_clone"`
}

// WatchSettings configures watch mode.
type WatchSettings struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// newViper creates a viper instance with defaults and environment binding.
func newViper() *viper.Viper {
	v := viper.New()

	genDefaults := gen.DefaultGeneratorConfig()

	v.SetDefault(keyDir, "")
	v.SetDefault(keyPackages, []string{"./..."})
	v.SetDefault(keyOverrides, "")
	v.SetDefault(keyParallelism, 0)
	v.SetDefault(keyComments, genDefaults.GenerateComments)
	v.SetDefault(keyRuntimeImport, genDefaults.RuntimeImport)
	v.SetDefault(keyFileSuffix, genDefaults.FileSuffix)
	v.SetDefault(keyVerbose, false)
	v.SetDefault(keyDevLog, false)
	v.SetDefault(keyAllowSelfDeepClone, false)
	v.SetDefault(keyDebounce, defaultDebounce)

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// bindFlags maps persistent flags to their configuration keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		keyDir:                "dir",
		keyPackages:           "packages",
		keyOverrides:          "overrides",
		keyParallelism:        "parallelism",
		keyComments:           "comments",
		keyRuntimeImport:      "runtime-import",
		keyFileSuffix:         "file-suffix",
		keyVerbose:            "verbose",
		keyDevLog:             "dev-log",
		keyAllowSelfDeepClone: "allow-self-deep-clone",
		keyDebounce:           "debounce",
	}

	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}

	return nil
}

// loadSettings reads the config file (if any) and resolves all settings.
// An explicit configFile must exist; the default clonegen.yaml is optional.
func loadSettings(v *viper.Viper, configFile string) (*Settings, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Settings) validate() error {
	if len(s.Packages) == 0 {
		return errors.New("at least one package pattern is required")
	}

	if s.Parallelism < 0 {
		return fmt.Errorf("parallelism must not be negative, got %d", s.Parallelism)
	}

	if !strings.HasSuffix(s.FileSuffix, ".go") || strings.HasSuffix(s.FileSuffix, "_test.go") {
		return fmt.Errorf("file suffix %q must end in .go and must not be a test file", s.FileSuffix)
	}

	return nil
}

// PipelineConfig converts the settings into a pipeline configuration.
func (s *Settings) PipelineConfig(log *zap.Logger) pipeline.Config {
	planConfig := plan.DefaultConfig()
	if s.Parallelism > 0 {
		planConfig.Parallelism = s.Parallelism
	}

	planConfig.Policy = policy.Options{AllowSelfDeepClone: s.Policy.AllowSelfDeepClone}

	return pipeline.Config{
		Dir:           s.Dir,
		Patterns:      s.Packages,
		OverridesPath: s.Overrides,
		Plan:          planConfig,
		Gen: gen.GeneratorConfig{
			RuntimeImport:    s.RuntimeImport,
			FileSuffix:       s.FileSuffix,
			GenerateComments: s.Comments,
		},
		Debounce: s.Watch.Debounce,
		Logger:   log,
	}
}
