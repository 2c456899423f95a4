package commands

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/secp-wallet/internal/config"
	"github.com/AlexZinkM/secp-wallet/wallet"
)

func generateCmd() *cobra.Command {
	var out, qrPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new keypair and address",
		RunE: func(cmd *cobra.Command, args []string) error {
			qrSize := 0
			if qrPath != "" || out != "" {
				qrSize = config.GetQRSize()
			}

			w, err := wallet.GenerateWallet(wallet.GenerateOptions{QRSize: qrSize})
			if err != nil {
				return err
			}
			defer w.Wipe()

			stdout := cmd.OutOrStdout()
			fmt.Fprintln(stdout, "Private Key:", hex.EncodeToString(w.PrivateKey))
			fmt.Fprintln(stdout, "Public Key:", hex.EncodeToString(w.PublicKey))
			fmt.Fprintln(stdout, "Wallet Address:", w.Address)

			if qrPath != "" {
				png, err := base64.StdEncoding.DecodeString(w.QR)
				if err != nil {
					return fmt.Errorf("failed to decode QR code: %w", err)
				}
				if err := os.WriteFile(qrPath, png, 0644); err != nil {
					return fmt.Errorf("failed to write QR code: %w", err)
				}
			}

			if out == "" {
				return nil
			}
			return exportWallet(cmd, w, out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write an encrypted .cwt export to this path")
	cmd.Flags().StringVar(&qrPath, "qr", "", "write the address QR code PNG to this path")
	return cmd
}
