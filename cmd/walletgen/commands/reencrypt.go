package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/secp-wallet/internal/config"
	"github.com/AlexZinkM/secp-wallet/wallet"
)

func reencryptCmd() *cobra.Command {
	var in, key, out string

	cmd := &cobra.Command{
		Use:   "reencrypt",
		Short: "Re-encrypt a fernet export under a password",
		RunE: func(cmd *cobra.Command, args []string) error {
			legacy, err := wallet.LoadExport(in)
			if err != nil {
				return err
			}

			pw, err := readPassword("Enter new password: ")
			if err != nil {
				return err
			}
			defer clear(pw)

			fixed, err := wallet.Reencrypt(legacy, []byte(key), pw, config.GetKDFParams())
			if err != nil {
				return err
			}
			out = exportPath(out)
			if err := wallet.SaveExport(out, fixed); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Re-encrypted", in, "->", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "fernet .cwt file")
	cmd.Flags().StringVar(&key, "key", "", "key printed by the fernet export")
	cmd.Flags().StringVarP(&out, "out", "o", "", "path of the new .cwt file")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
