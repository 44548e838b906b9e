package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/numcore/foundation/core/config"
	mdwerror "github.com/msto63/numcore/foundation/core/error"
	"github.com/msto63/numcore/foundation/core/i18n"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings after file, environment and flags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			source := a.configPath
			if source == "" {
				source = "defaults"
			}
			fmt.Fprintf(out, "# source: %s\n# locale: %s\n", source, i18n.DisplayName(a.settings.Locale))

			switch format {
			case "toml":
				return toml.NewEncoder(out).Encode(a.settings)
			case "yaml", "yml":
				data, err := yaml.Marshal(a.settings)
				if err != nil {
					return mdwerror.Wrap(err, "failed to encode settings").WithCode(mdwerror.CodeInternal)
				}
				_, err = out.Write(data)
				return err
			}
			return mdwerror.New("unknown output format: " + format).
				WithCode(mdwerror.CodeInvalidArgument).
				WithOperation("cmd.config.show")
		},
	}
	show.Flags().StringVarP(&format, "format", "f", "toml", "output format: toml or yaml")

	paths := &cobra.Command{
		Use:   "paths",
		Short: "List the files searched when --config is not given",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, p := range config.ListPossibleConfigFiles(config.DefaultDiscoveryOptions()) {
				mark := " "
				if info, err := os.Stat(p); err == nil && !info.IsDir() {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, p)
			}
			return nil
		},
	}

	cmd.AddCommand(show, paths)
	return cmd
}
