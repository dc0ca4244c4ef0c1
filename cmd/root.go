package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hance08/tally/cmd/account"
	"github.com/hance08/tally/cmd/transaction"
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/errhandler"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// DefaultFraction is minor units per major unit for a freshly created
// currency: 100 gives two decimal places.
const DefaultFraction = 100

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	defer cleanup()

	if err := initDefaultCommodity(application.Service); err != nil {
		if errhandler.IsCancellation(err) {
			pterm.Warning.Println("Setup cancelled")
			os.Exit(0)
		}
		pterm.Error.Println(err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "tally",
		Short:         "tally is a CLI based double-entry bookkeeping tool",
		Long:          `tally is a CLI based double-entry bookkeeping tool`,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(account.NewAccountCmd(application.Service))
	rootCmd.AddCommand(transaction.NewTransactionCmd(application.Service))

	rootCmd.AddCommand(NewAddCmd(application.Service))
	rootCmd.AddCommand(NewRegisterCmd(application.Service))
	rootCmd.AddCommand(NewReportCmd(application.Service))

	if err := rootCmd.Execute(); err != nil {
		if errhandler.IsCancellation(err) {
			pterm.Warning.Println("Operation Cancelled")
			os.Exit(0)
		}

		pterm.Error.Println(capitalize(err.Error()))
		os.Exit(1)
	}
}

// initDefaultCommodity makes sure the configured default currency exists as
// a commodity. On the very first run, with nothing configured, it asks.
func initDefaultCommodity(svc *service.Service) error {
	currency := viper.GetString("defaults.currency")

	if currency == "" {
		var err error
		currency, err = initWizard()
		if err != nil {
			return err
		}
	}
	cfg.Defaults.Currency = currency

	if _, err := svc.Account.EnsureDefaultCommodity(DefaultFraction); err != nil {
		return fmt.Errorf("failed to initialize default currency: %w", err)
	}

	return nil
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to ensure config file: %w", err)
	}

	viper.SetEnvPrefix("TALLY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	if cfg.Database.Path != "" {
		expanded, err := expandPath(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("invalid database path: %w", err)
		}
		cfg.Database.Path = expanded
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func initWizard() (string, error) {
	currency, err := prompts.PromptInitCurrency("USD")
	if err != nil {
		return "", err
	}

	viper.Set("defaults.currency", currency)

	if err := viper.WriteConfig(); err != nil {
		return "", fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved. Default currency set to: %s\n", currency)

	return currency, nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

func createDefaultConfig() error {
	appDir, err := app.AppDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
