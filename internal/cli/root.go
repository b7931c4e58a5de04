package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"clone-generator/internal/gen"
	"clone-generator/internal/pipeline"
)

var (
	// Version information, set at build time.
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// app carries state shared by the commands of one invocation.
type app struct {
	viper      *viper.Viper
	configFile string
	settings   *Settings
	log        *zap.Logger
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	a := &app{viper: newViper()}

	rootCmd := &cobra.Command{
		Use:   "clone-generator",
		Short: "Generate deep clone methods for Go structs",
		Long: color.CyanString(`clone-generator - deep clone code generator

Types marked with a "+clone" doc comment get two generated methods:
  Clone()                  fast deep copy, no cycle tracking
  CloneSafe(chain)         deep copy that tolerates reference cycles

Fields are controlled with struct tags:
  clone:"-"                never copied
  clone:"include"          copied in explicit mode ("+clone:explicit")
  clone:"include,nodeep"   copied by reference, never deep cloned`),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	def := gen.DefaultGeneratorConfig()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./clonegen.yaml if present)")
	flags.StringP("dir", "C", "", "directory package patterns are resolved from")
	flags.StringSliceP("packages", "p", []string{"./..."}, "package patterns to scan")
	flags.StringP("overrides", "o", "", "overrides YAML file")
	flags.Int("parallelism", 0, "types planned at once (0 = GOMAXPROCS)")
	flags.Bool("comments", def.GenerateComments, "emit doc comments on generated methods")
	flags.String("runtime-import", def.RuntimeImport, "import path of the reference chain package")
	flags.String("file-suffix", def.FileSuffix, "suffix of generated file names")
	flags.Bool("allow-self-deep-clone", false, "deep clone fields whose type is the declaring type")
	flags.Duration("debounce", defaultDebounce, "quiet period before watch mode regenerates")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.Bool("dev-log", false, "human readable development logging")

	if err := bindFlags(a.viper, flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(newGenerateCommand(a))
	rootCmd.AddCommand(newPlanCommand(a))
	rootCmd.AddCommand(newCheckCommand(a))
	rootCmd.AddCommand(newWatchCommand(a))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// setup resolves settings and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	s, err := loadSettings(a.viper, a.configFile)
	if err != nil {
		return err
	}

	log, err := newLogger(s)
	if err != nil {
		return err
	}

	a.settings = s
	a.log = log

	log.Debug("configuration loaded",
		zap.String("config", a.viper.ConfigFileUsed()),
		zap.Strings("packages", s.Packages),
		zap.String("overrides", s.Overrides))

	return nil
}

func (a *app) pipeline() *pipeline.Pipeline {
	return pipeline.New(a.settings.PipelineConfig(a.log))
}

// newLogger builds the process logger from the settings.
func newLogger(s *Settings) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if s.DevLog {
		config = zap.NewDevelopmentConfig()
	}

	if s.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	log, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return log, nil
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)

		return err
	}

	return nil
}
