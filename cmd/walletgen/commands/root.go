package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/secp-wallet/internal/config"
)

var password string

// Execute runs the walletgen CLI
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "walletgen",
		Short:        "Generate secp256k1 wallets and encrypted exports",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(); err != nil {
				return err
			}
			config.SetupLogger()
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&password, "password", "p", "", "export password (prompted when empty)")

	root.AddCommand(generateCmd(), addressCmd(), exportCmd(), decryptCmd(), reencryptCmd())
	return root
}

// readPassword returns the --password value or prompts for one.
// Caller must zero the returned slice.
func readPassword(prompt string) ([]byte, error) {
	if password != "" {
		return []byte(password), nil
	}
	return config.ReadPassword(prompt)
}

// exportPath places relative output paths under EXPORT_DIR
func exportPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(config.GetExportDir(), p)
}
