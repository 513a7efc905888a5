package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/o11c/toolchain-arch-wrappers/pkg/catalog"
	"github.com/o11c/toolchain-arch-wrappers/pkg/config"
	"github.com/o11c/toolchain-arch-wrappers/pkg/generator"
	"github.com/o11c/toolchain-arch-wrappers/pkg/logging"
	"github.com/o11c/toolchain-arch-wrappers/pkg/safety"
	"github.com/o11c/toolchain-arch-wrappers/pkg/toolname"
	"github.com/o11c/toolchain-arch-wrappers/pkg/version"
)

var cfgFile string

func main() {
	root := rootCmd()
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.archwrap/config.yaml)")

	root.AddCommand(toolsCmd())
	root.AddCommand(archesCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		absolute bool
		symlinks bool
		output   string
		jobs     int
	)

	cmd := &cobra.Command{
		Use:           "archwrap <arch> [tool...]",
		Short:         "Generate architecture-prefixed toolchain wrappers",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			tables, err := loadTables(cfg)
			if err != nil {
				return err
			}

			if output == "" {
				output = cfg.OutputDir
			}
			if jobs == 0 {
				jobs = cfg.Jobs
			}

			gen := &generator.Generator{
				Tables: tables,
				Logger: logging.New(cfg.LogLevel, cfg.LogFormat),
			}
			return gen.Run(generator.Request{
				Arch:      args[0],
				Tools:     args[1:],
				Absolute:  absolute,
				Symlinks:  symlinks,
				OutputDir: output,
				Jobs:      jobs,
			})
		},
	}

	cmd.Flags().BoolVar(&absolute, "absolute", false, "hard-code PATH lookup")
	cmd.Flags().BoolVar(&symlinks, "symlinks", false, "when possible, use symlinks (implies --absolute)")
	cmd.Flags().StringVar(&output, "output", "", "output directory (default: bin)")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "worker pool size (0 = one per CPU)")
	return cmd
}

func toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tool catalog with safety classification",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			tables, err := loadTables(cfg)
			if err != nil {
				return err
			}

			for _, tool := range tables.Tools {
				canonical := toolname.Normalize(tool)
				status := safety.Classify(canonical, tables.Safety).String()
				if tables.Blacklisted(canonical) {
					status = "blacklisted"
				}
				fmt.Printf("%s\t%s\n", tool, status)
			}
			return nil
		},
	}
}

func archesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arches",
		Short: "List known architecture triples",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			tables, err := loadTables(cfg)
			if err != nil {
				return err
			}

			triples := make([]string, 0, len(tables.Arches))
			for triple := range tables.Arches {
				triples = append(triples, triple)
			}
			sort.Strings(triples)
			for _, triple := range triples {
				info := tables.Arches[triple]
				fmt.Printf("%s\twraps %s", triple, info.Wraps)
				if flags := info.FlagSet(catalog.GCCFlags); flags != "" {
					fmt.Printf("\t%s %s", catalog.GCCFlags, flags)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if def := config.DefaultPath(); def != "" {
			if _, err := os.Stat(def); err == nil {
				path = def
			}
		}
	}
	return config.Load(path)
}

func loadTables(cfg *config.Config) (catalog.Tables, error) {
	tables := catalog.Default()
	if cfg.TablesPath == "" {
		return tables, nil
	}
	overrides, err := catalog.LoadOverrides(cfg.TablesPath)
	if err != nil {
		return catalog.Tables{}, err
	}
	return tables.WithOverrides(overrides), nil
}
