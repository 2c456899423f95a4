package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/secp-wallet/internal/common"
	"github.com/AlexZinkM/secp-wallet/internal/crypto"
)

func addressCmd() *cobra.Command {
	var publicKey string

	cmd := &cobra.Command{
		Use:   "address",
		Short: "Derive the address of an uncompressed public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := common.DecodeHex(publicKey, crypto.PublicKeyLen)
			if err != nil {
				return fmt.Errorf("invalid public key: %w", err)
			}

			address, err := crypto.DeriveAddress(pub)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), address)
			return nil
		},
	}

	cmd.Flags().StringVar(&publicKey, "public-key", "", "65-byte uncompressed public key (hex)")
	_ = cmd.MarkFlagRequired("public-key")
	return cmd
}
