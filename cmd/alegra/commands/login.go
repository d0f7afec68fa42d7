package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/einvoice-io/alegra-client/pkg/alegra"
	"github.com/einvoice-io/alegra-client/pkg/alegraclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiKey      string
		environment string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store API credentials",
		Long:  "Verify an API key against the Alegra e-provider API and store it for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if environment == "" {
				environment = viper.GetString("environment")
			}

			if environment == "" {
				environment = string(alegra.EnvironmentSandbox)
			}

			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = string(byteKey)

				fmt.Println()
			}

			client, err := alegraclient.New(&alegra.Config{
				APIKey:      apiKey,
				Environment: alegra.Environment(environment),
			})
			if err != nil {
				return err
			}

			// The DIAN catalog is readable by every authenticated account, so
			// listing it verifies the credential without side effects.
			if _, err := client.Dian().List(context.Background(), nil); err != nil {
				if alegra.IsAuthentication(err) {
					return fmt.Errorf("login failed: %w", err)
				}

				return fmt.Errorf("could not verify credentials: %w", err)
			}

			if err := persistCredentials(apiKey, environment); err != nil {
				return err
			}

			fmt.Printf("Logged in to %s environment\n", environment)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiKey, "api-key", "k", "", "API key (prompted when omitted)")
	cmd.Flags().StringVarP(&environment, "environment", "e", "", "environment (sandbox or production)")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored API credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("api_key", "")

			if err := writeConfigFile(); err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}

func persistCredentials(apiKey, environment string) error {
	viper.Set("api_key", apiKey)
	viper.Set("environment", environment)

	return writeConfigFile()
}

func writeConfigFile() error {
	if file := viper.ConfigFileUsed(); file != "" {
		if err := viper.WriteConfig(); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	path := filepath.Join(home, ".alegra", "config.yml")
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
