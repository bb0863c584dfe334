package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "v0.1.0"

type globalFlags struct {
	verbose bool
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "evbindgen",
		Short: "Generate typed Go bindings for deployed contracts",
		Long: `evbindgen expands contract interface descriptors (JSON ABIs) and their
per-network deployment tables into typed Go accessors for reading,
writing and subscribing to events.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newGenerateCmd(flags))
	root.AddCommand(newInspectCmd(flags))
	root.AddCommand(newVersionCmd())
	return root
}

func newGenerateCmd(flags *globalFlags) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "generate <manifest>",
		Short: "Write bindings for every contract in a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(flags.verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			logger.Info("generating evbindgen bindings", zap.String("manifest", args[0]))

			f, err := loadManifest(args[0])
			if err != nil {
				return err
			}
			src, err := generate(f, logger)
			if err != nil {
				return err
			}

			if outDir == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			path := filepath.Join(outDir, f.Output)
			if err := os.WriteFile(path, src, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			logger.Info("wrote bindings",
				zap.String("path", path),
				zap.Int("contracts", len(f.Bindings)),
				zap.Int("bytes", len(src)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory, or - for stdout")
	return cmd
}

func newInspectCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <manifest>",
		Short: "List the members, deployments and accessors of each contract in a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadManifest(args[0])
			if err != nil {
				return err
			}
			out, err := renderInspection(f)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func renderInspection(f *File) (string, error) {
	var sb strings.Builder
	for _, b := range f.Bindings {
		name := b.Descriptor.Name
		sb.WriteString(name + "\n")

		deployments := pterm.TableData{{"Network", "Address"}}
		for _, d := range b.Deployments {
			deployments = append(deployments, []string{strconv.FormatUint(d.Network, 10), d.Address.Hex()})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(deployments).Srender()
		if err != nil {
			return "", err
		}
		sb.WriteString(table + "\n")

		members := pterm.TableData{{"Kind", "Mutability", "Signature", "Accessors"}}
		for _, m := range b.Descriptor.Members {
			members = append(members, []string{
				m.Kind.String(),
				m.Mutability.String(),
				m.Sig,
				strings.Join(accessorNames(name, m), ", "),
			})
		}
		table, err = pterm.DefaultTable.WithHasHeader().WithData(members).Srender()
		if err != nil {
			return "", err
		}
		sb.WriteString(table + "\n\n")
	}
	return sb.String(), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the evbindgen version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
