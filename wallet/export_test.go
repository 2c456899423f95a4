package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/secp-wallet/internal/crypto"
	"github.com/AlexZinkM/secp-wallet/internal/model"
)

var testKDF = crypto.KDFParams{N: 1 << 10, R: 8, P: 1}

func scryptOpts() ExportOptions {
	return ExportOptions{Mode: model.ExportModeScrypt, KDF: testKDF}
}

func fernetOpts() ExportOptions {
	return ExportOptions{Mode: model.ExportModeFernet}
}

func TestExportWalletScrypt(t *testing.T) {
	password := []byte("pw")

	a, err := ExportWallet("hello wallet", password, scryptOpts())
	require.NoError(t, err)
	b, err := ExportWallet("hello wallet", password, scryptOpts())
	require.NoError(t, err)

	assert.NotEqual(t, a.CipherText, b.CipherText)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Nil(t, a.Key)
	assert.NotEmpty(t, a.Salt)
	assert.Equal(t, testKDF.N, a.ScryptN)

	for _, bundle := range []*model.ExportBundle{a, b} {
		pt, err := OpenExport(bundle, password)
		require.NoError(t, err)
		assert.Equal(t, "hello wallet", pt)
	}

	_, err = OpenExport(a, []byte("other"))
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailure)
}

func TestExportWalletFernet(t *testing.T) {
	a, err := ExportWallet("hello wallet", []byte("pw"), fernetOpts())
	require.NoError(t, err)
	b, err := ExportWallet("hello wallet", []byte("pw"), fernetOpts())
	require.NoError(t, err)

	assert.NotEqual(t, a.CipherText, b.CipherText)
	require.NotEmpty(t, a.Key)
	assert.Empty(t, a.Salt)

	pt, err := OpenExport(a, a.Key)
	require.NoError(t, err)
	assert.Equal(t, "hello wallet", pt)

	pt, err = OpenExport(b, b.Key)
	require.NoError(t, err)
	assert.Equal(t, "hello wallet", pt)

	// the password plays no part in the key
	_, err = OpenExport(a, []byte("pw"))
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailure)
}

func TestExportWalletEmptyPlaintext(t *testing.T) {
	for name, opts := range map[string]ExportOptions{"scrypt": scryptOpts(), "fernet": fernetOpts()} {
		t.Run(name, func(t *testing.T) {
			bundle, err := ExportWallet("", []byte("pw"), opts)
			require.NoError(t, err)

			secret := []byte("pw")
			if bundle.Mode == model.ExportModeFernet {
				secret = bundle.Key
			}
			pt, err := OpenExport(bundle, secret)
			require.NoError(t, err)
			assert.Equal(t, "", pt)
		})
	}
}

func TestExportWalletRequiresPassword(t *testing.T) {
	_, err := ExportWallet("data", nil, scryptOpts())
	assert.ErrorIs(t, err, ErrEmptyPassword)

	_, err = ExportWallet("data", []byte{}, fernetOpts())
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestExportWalletUnknownMode(t *testing.T) {
	_, err := ExportWallet("data", []byte("pw"), ExportOptions{Mode: "rot13"})
	assert.ErrorIs(t, err, crypto.ErrEncryptionFailure)
}

func TestExportGenerated(t *testing.T) {
	w, err := WalletFromPrivateKey(scalarOne(), 64)
	require.NoError(t, err)

	bundle, err := ExportGenerated(w, []byte("pw"), scryptOpts())
	require.NoError(t, err)
	assert.Equal(t, w.Address, bundle.Address)
	assert.Equal(t, w.QR, bundle.QR)

	pt, err := OpenExport(bundle, []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, w.Summary(), pt)
}

func TestOpenExportRejectsFutureVersion(t *testing.T) {
	bundle, err := ExportWallet("data", []byte("pw"), scryptOpts())
	require.NoError(t, err)

	bundle.Version = bundleVersion + 1
	_, err = OpenExport(bundle, []byte("pw"))
	assert.ErrorIs(t, err, crypto.ErrMalformedBundle)

	_, err = OpenExport(nil, []byte("pw"))
	assert.ErrorIs(t, err, crypto.ErrMalformedBundle)
}

func TestOpenExportRejectsMalformedBundle(t *testing.T) {
	cases := map[string]func(b *model.ExportBundle){
		"huge scrypt N": func(b *model.ExportBundle) { b.ScryptN = 1 << 29 },
		"huge scrypt p": func(b *model.ExportBundle) { b.ScryptP = 1 << 10 },
		"bad salt":      func(b *model.ExportBundle) { b.Salt = "%%%" },
		"bad nonce":     func(b *model.ExportBundle) { b.Nonce = "%%%" },
		"bad cipher":    func(b *model.ExportBundle) { b.CipherText = "%%%" },
		"unknown mode":  func(b *model.ExportBundle) { b.Mode = "rot13" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			bundle, err := ExportWallet("data", []byte("pw"), scryptOpts())
			require.NoError(t, err)

			mutate(bundle)
			_, err = OpenExport(bundle, []byte("pw"))
			assert.ErrorIs(t, err, crypto.ErrMalformedBundle)
		})
	}
}

func TestReencrypt(t *testing.T) {
	legacy, err := ExportWallet("hello wallet", []byte("ignored"), ExportOptions{
		Mode:    model.ExportModeFernet,
		Address: "91b24bf9f5288532960ac687abb035127b1d28a5",
	})
	require.NoError(t, err)

	fixed, err := Reencrypt(legacy, legacy.Key, []byte("new password"), testKDF)
	require.NoError(t, err)
	assert.Equal(t, model.ExportModeScrypt, fixed.Mode)
	assert.Equal(t, legacy.Address, fixed.Address)

	pt, err := OpenExport(fixed, []byte("new password"))
	require.NoError(t, err)
	assert.Equal(t, "hello wallet", pt)

	_, err = Reencrypt(fixed, legacy.Key, []byte("pw"), testKDF)
	assert.ErrorIs(t, err, crypto.ErrMalformedBundle)

	_, err = Reencrypt(legacy, []byte("wrong key"), []byte("pw"), testKDF)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailure)
}
