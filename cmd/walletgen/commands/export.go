package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AlexZinkM/secp-wallet/internal/common"
	"github.com/AlexZinkM/secp-wallet/internal/config"
	"github.com/AlexZinkM/secp-wallet/internal/crypto"
	"github.com/AlexZinkM/secp-wallet/internal/model"
	"github.com/AlexZinkM/secp-wallet/wallet"
)

func exportCmd() *cobra.Command {
	var privateKey, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Encrypt an existing private key into a .cwt file",
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := common.DecodeHex(privateKey, crypto.PrivateKeyLen)
			if err != nil {
				return fmt.Errorf("invalid private key: %w", err)
			}

			w, err := wallet.WalletFromPrivateKey(priv, config.GetQRSize())
			if err != nil {
				clear(priv)
				return err
			}
			defer w.Wipe()

			return exportWallet(cmd, w, out)
		},
	}

	cmd.Flags().StringVar(&privateKey, "private-key", "", "32-byte private key (hex)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "path of the .cwt file to write")
	_ = cmd.MarkFlagRequired("private-key")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// exportWallet encrypts w with the configured mode and writes it to out.
// In fernet mode the key is printed once, it is not stored anywhere else.
func exportWallet(cmd *cobra.Command, w *model.Wallet, out string) error {
	pw, err := readPassword("Enter export password: ")
	if err != nil {
		return err
	}
	defer clear(pw)

	bundle, err := wallet.ExportGenerated(w, pw, wallet.ExportOptions{
		Mode: config.GetExportMode(),
		KDF:  config.GetKDFParams(),
	})
	if err != nil {
		return fmt.Errorf("failed to export wallet: %w", err)
	}

	out = exportPath(out)
	if err := wallet.SaveExport(out, bundle); err != nil {
		return err
	}
	log.Info().Str("path", out).Str("mode", string(bundle.Mode)).Msg("wallet exported")

	if bundle.Mode == model.ExportModeFernet {
		fmt.Fprintln(cmd.ErrOrStderr(), "WARNING: this file is NOT protected by your password.")
		fmt.Fprintln(cmd.ErrOrStderr(), "Keep this key, it is the only way to decrypt the file:")
		fmt.Fprintln(cmd.OutOrStdout(), "Key:", string(bundle.Key))
	}
	return nil
}
