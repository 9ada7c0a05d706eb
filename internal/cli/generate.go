package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/example/ubiquitous-gen/internal/config"
	"github.com/example/ubiquitous-gen/internal/glossary"
	"github.com/example/ubiquitous-gen/internal/logging"
	"github.com/example/ubiquitous-gen/internal/logging/logfields"
	"github.com/example/ubiquitous-gen/internal/scanner"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "cli")

func newGenerateCommand() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "generate [dir...]",
		Short: "Generate the HTML glossary",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only use positional arguments if no input flags were provided
			if len(args) > 0 && !cmd.Flags().Changed(config.FlagInput) {
				cfg.Inputs = args
			}
			// Positional inputs count as set so the config file cannot replace them
			changed := func(flag string) bool {
				if flag == config.FlagInput && len(args) > 0 {
					return true
				}
				return cmd.Flags().Changed(flag)
			}
			if err := cfg.Load(changed); err != nil {
				return err
			}
			_, err := Generate(&cfg, cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().StringSliceVarP(&cfg.Inputs, config.FlagInput, "i", cfg.Inputs, "Directories or files to scan")
	cmd.Flags().StringVarP(&cfg.Output, config.FlagOutput, "o", cfg.Output, "Path to output HTML file or '-' for stdout")
	cmd.Flags().StringVarP(&cfg.Language, config.FlagLang, "l", cfg.Language, "Source language: php or go")
	cmd.Flags().StringSliceVar(&cfg.Exclude, config.FlagExclude, nil, "Directory names to skip (vendor is always skipped)")
	cmd.Flags().BoolVar(&cfg.Atomic, config.FlagAtomic, false, "Write to a temporary file and rename it over the output")
	cmd.Flags().BoolVar(&cfg.EscapeHTML, config.FlagEscapeHTML, false, "Escape HTML characters in glossary values")
	cmd.Flags().StringVar(&cfg.ConfigPath, "config", "", "Path to "+config.DefaultFileName+" config file")

	return cmd
}

// Summary describes a finished generate run.
type Summary struct {
	Output   string
	Scanned  int // documented declarations found
	Recorded int // glossary records written
}

// Generate scans the configured inputs and writes the glossary.
func Generate(cfg *config.Config, stdout io.Writer) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	s, err := scanner.New(cfg.Language)
	if err != nil {
		return Summary{}, err
	}

	docs, err := scanner.Walk(cfg.Inputs, s, cfg.Exclude)
	if err != nil {
		return Summary{}, err
	}

	records := glossary.Extract(docs)
	summary := Summary{Output: cfg.Output, Scanned: len(docs), Recorded: len(records)}

	if err := writeOutput(records, cfg, stdout); err != nil {
		return summary, err
	}

	log.WithFields(logrus.Fields{
		logfields.Path:  cfg.Output,
		logfields.Lang:  cfg.Language,
		logfields.Count: len(records),
	}).Debug("Glossary written")

	if cfg.Output != "-" {
		fmt.Fprintf(stdout, "Glossary generated: %s (%d entries from %d documented types)\n",
			cfg.Output, summary.Recorded, summary.Scanned)
	}
	return summary, nil
}

// FileSystem interface for dependency injection
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
}

// DefaultFileSystem implements FileSystem
type DefaultFileSystem struct{}

func (fs *DefaultFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

var defaultFileSystem FileSystem = &DefaultFileSystem{}

func writeOutput(records []glossary.Record, cfg *config.Config, stdout io.Writer) error {
	return writeOutputWithFS(records, cfg, stdout, defaultFileSystem)
}

func writeOutputWithFS(records []glossary.Record, cfg *config.Config, stdout io.Writer, fs FileSystem) error {
	var opts []glossary.RenderOption
	if cfg.EscapeHTML {
		opts = append(opts, glossary.WithEscapeHTML())
	}

	if cfg.Output == "-" {
		return glossary.Render(stdout, records, opts...)
	}

	outDir := filepath.Dir(cfg.Output)
	if fi, err := fs.Stat(outDir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory %s does not exist, please create it first", outDir)
		}
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("output path %s is not a directory", outDir)
	}

	if cfg.Atomic {
		return glossary.WriteFileAtomic(cfg.Output, records, opts...)
	}
	return glossary.WriteFile(cfg.Output, records, opts...)
}
