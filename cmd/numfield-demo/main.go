package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/numfield"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logFile    string
	)

	cmd := &cobra.Command{
		Use:          "numfield-demo",
		Short:        "Numeric input fields in the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), configPath, logFile)
		},
	}

	cmd.Version = numfield.Version()
	cmd.SetVersionTemplate(versionLine(numfield.Version()) + "\n")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML form definition (default: built-in form)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write JSON debug logs to this file")
	return cmd
}

func run(out io.Writer, configPath, logFile string) error {
	log, err := newLogger(logFile)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	specs := defaultForm()
	if configPath != "" {
		specs, err = loadForm(configPath)
		if err != nil {
			return err
		}
	}

	f, err := newForm(specs, log)
	if err != nil {
		return err
	}
	defer f.close()
	log.Info("form started", zap.Int("fields", len(specs)), zap.String("version", numfield.VersionTag()))

	final, err := tea.NewProgram(f).Run()
	if err != nil {
		return fmt.Errorf("run form: %w", err)
	}

	done, ok := final.(form)
	if !ok || !done.submitted {
		log.Info("form cancelled")
		return nil
	}

	p := done.payload()
	log.Info("form submitted", zap.Strings("dirty", p.Dirty))
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// versionLine is what --version prints for the embedded version v.
func versionLine(v string) string {
	major, _, _, err := numfield.ParseVersion(v)
	switch {
	case err != nil:
		return fmt.Sprintf("numfield-demo %s (unrecognized version)", v)
	case major == 0:
		return "numfield-demo v" + v + " (unstable API)"
	default:
		return "numfield-demo v" + v
	}
}

// newLogger builds a file logger; the terminal belongs to the form.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}
