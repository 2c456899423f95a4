package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/secp-wallet/internal/model"
	"github.com/AlexZinkM/secp-wallet/wallet"
)

func decryptCmd() *cobra.Command {
	var in, key string

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Print the contents of a .cwt file",
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := wallet.LoadExport(in)
			if err != nil {
				return err
			}

			var secret []byte
			if bundle.Mode == model.ExportModeFernet {
				if key == "" {
					return fmt.Errorf("--key required for fernet exports")
				}
				secret = []byte(key)
			} else {
				secret, err = readPassword("Enter export password: ")
				if err != nil {
					return err
				}
			}
			defer clear(secret)

			plaintext, err := wallet.OpenExport(bundle, secret)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), plaintext)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "path of the .cwt file")
	cmd.Flags().StringVar(&key, "key", "", "key printed by a fernet export")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
