// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"djrun-cli/internal/config"
	"djrun-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `djrun config` command tree.
func newConfigCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage djrun configuration",
		Long: `Manage djrun configuration.

Configuration is stored in:
  - Linux: ~/.config/djrun/config.toml
  - macOS: ~/Library/Application Support/djrun/config.toml
  - Windows: %APPDATA%\djrun\config.toml

Every value can also be set via DJRUN_* environment variables
(DJRUN_PYTHON, DJRUN_SERVER_ADDR, DJRUN_UI_VERBOSE, ...).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			data, err := config.GenerateTOML(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	})

	return cfgCmd
}

func showConfig() error {
	cfg, err := config.Load()
	if err != nil {
		renderIssue(issue.ConfigLoadFailedId)
		return err
	}

	// Style definitions using shared color palette
	headerStyle := TitleStyle
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Println(headerStyle.Render("Current Configuration"))
	fmt.Println()

	cfgPath, pathErr := config.ConfigFilePath()
	if pathErr == nil && fileExistsCheck(cfgPath) {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), cfgPath)
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	python := cfg.Python
	if python == "" {
		python = "(auto: virtualenv, then python3/python on PATH)"
	}
	fmt.Printf("%s: %s\n", keyStyle.Render("python"), valueStyle.Render(python))
	fmt.Printf("%s: %s\n", keyStyle.Render("manage_py"), valueStyle.Render(cfg.ManagePy))
	fmt.Printf("%s: %s\n", keyStyle.Render("requirements"), valueStyle.Render(cfg.Requirements))
	fmt.Printf("%s: %s\n", keyStyle.Render("venv_dir"), valueStyle.Render(cfg.VenvDir))

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("server"))
	fmt.Printf("  addr: %s\n", valueStyle.Render(cfg.Server.Addr))

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("ui"))
	fmt.Printf("  color_scheme: %s\n", valueStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Printf("  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfigFile() error {
	path, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	if fileExistsCheck(path) {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := config.Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Printf("%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	fmt.Printf("Config directory: %s\n", cfgDir)
	fmt.Printf("Config file: %s\n", cfgPath)
	return nil
}

// fileExistsCheck checks if a file exists and is not a directory.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
