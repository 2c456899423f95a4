package handler

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AlexZinkM/secp-wallet/internal/common"
	"github.com/AlexZinkM/secp-wallet/internal/config"
	"github.com/AlexZinkM/secp-wallet/internal/crypto"
	"github.com/AlexZinkM/secp-wallet/internal/model"
	"github.com/AlexZinkM/secp-wallet/wallet"
)

// maxBodyBytes caps request bodies; the largest request is a bundle with a QR code
const maxBodyBytes = 1 << 20

// WalletHandler holds configuration for wallet operations
type WalletHandler struct {
	exportMode model.ExportMode
	kdf        crypto.KDFParams
	qrSize     int
	// rand overrides the key entropy source; nil means crypto/rand
	rand io.Reader
}

// NewWalletHandler creates a new WalletHandler with config values
func NewWalletHandler() *WalletHandler {
	return &WalletHandler{
		exportMode: config.GetExportMode(),
		kdf:        config.GetKDFParams(),
		qrSize:     config.GetQRSize(),
	}
}

// Generate handles POST /wallet/generate
// @Summary      Generate new wallet
// @Description  Generates a secp256k1 keypair, its address and a QR code of the address
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /wallet/generate [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. should be POST", http.StatusMethodNotAllowed)
		return
	}

	generated, err := wallet.GenerateWallet(wallet.GenerateOptions{QRSize: h.qrSize, Rand: h.rand})
	if err != nil {
		writeCryptoError(w, err)
		return
	}
	defer generated.Wipe()

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		PrivateKey: hex.EncodeToString(generated.PrivateKey),
		PublicKey:  hex.EncodeToString(generated.PublicKey),
		Address:    generated.Address,
		QR:         generated.QR,
		CreatedAt:  generated.CreatedAt.Format(time.RFC3339),
	})
}

// Address handles GET /wallet/address
// @Summary      Derive address
// @Description  Derives the wallet address of an uncompressed public key
// @Tags         wallet
// @Produce      json
// @Param        publicKey  query     string  true  "65-byte uncompressed public key, hex"
// @Success      200  {object}  model.AddressResponse
// @Failure      400  {object}  model.ErrorResponse
// @Router       /wallet/address [get]
func (h *WalletHandler) Address(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	pub, err := common.DecodeHex(r.URL.Query().Get("publicKey"), crypto.PublicKeyLen)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.CodeInvalidPublicKey, "invalid publicKey: "+err.Error())
		return
	}

	address, err := crypto.DeriveAddress(pub)
	if err != nil {
		writeCryptoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.AddressResponse{Address: address})
}

// QR handles GET /wallet/qr
// @Summary      Address QR code
// @Description  Renders the given address as a PNG QR code
// @Tags         wallet
// @Produce      png
// @Param        address  query     string  true  "Wallet address"
// @Success      200
// @Failure      400  {object}  model.ErrorResponse
// @Router       /wallet/qr [get]
func (h *WalletHandler) QR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	address := r.URL.Query().Get("address")
	if !common.IsHexAddress(address) {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, "address must be 40 lowercase hex characters")
		return
	}

	png, err := wallet.GenerateQRCode(address, h.qrSize)
	if err != nil {
		log.Error().Err(err).Msg("qr rendering failed")
		writeError(w, http.StatusInternalServerError, model.CodeInternal, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// Export handles POST /wallet/export
// @Summary      Export wallet
// @Description  Encrypts the key summary of a private key. In fernet mode the random key is returned once in "key".
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ExportRequest  true  "Private key and password"
// @Success      200      {object}  model.ExportResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/export [post]
func (h *WalletHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ExportRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, err.Error())
		return
	}

	priv, err := common.DecodeHex(req.PrivateKey, crypto.PrivateKeyLen)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.CodeInvalidScalar, "invalid privateKey: "+err.Error())
		return
	}

	// Get password as []byte, use it, then zero it immediately
	password := []byte(req.Password)
	defer clear(password) // Always clear password from memory

	keyWallet, err := wallet.WalletFromPrivateKey(priv, h.qrSize)
	if err != nil {
		clear(priv)
		writeCryptoError(w, err)
		return
	}
	defer keyWallet.Wipe()

	bundle, err := wallet.ExportGenerated(keyWallet, password, wallet.ExportOptions{
		Mode: h.exportMode,
		KDF:  h.kdf,
	})
	if err != nil {
		writeCryptoError(w, err)
		return
	}

	log.Info().Str("address", bundle.Address).Str("mode", string(bundle.Mode)).Msg("wallet exported")

	writeJSON(w, http.StatusOK, model.ExportResponse{
		Bundle: bundle,
		Key:    string(bundle.Key),
	})
}

// Decrypt handles POST /wallet/decrypt
// @Summary      Decrypt exported wallet
// @Description  Opens a bundle with its password (scrypt) or key (fernet)
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.DecryptRequest  true  "Bundle and secret"
// @Success      200      {object}  model.DecryptResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      401      {object}  model.ErrorResponse
// @Router       /wallet/decrypt [post]
func (h *WalletHandler) Decrypt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.DecryptRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, err.Error())
		return
	}
	if req.Bundle == nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, "bundle is required")
		return
	}

	secret := []byte(req.Password)
	if req.Bundle.Mode == model.ExportModeFernet {
		secret = []byte(req.Key)
	}
	defer clear(secret)

	plaintext, err := wallet.OpenExport(req.Bundle, secret)
	if err != nil {
		writeCryptoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.DecryptResponse{Plaintext: plaintext})
}

// writeCryptoError maps core errors to HTTP statuses
func writeCryptoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, crypto.ErrInvalidScalar):
		writeError(w, http.StatusBadRequest, model.CodeInvalidScalar, err.Error())
	case errors.Is(err, crypto.ErrInvalidPublicKey):
		writeError(w, http.StatusBadRequest, model.CodeInvalidPublicKey, err.Error())
	case errors.Is(err, wallet.ErrEmptyPassword):
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, err.Error())
	case errors.Is(err, crypto.ErrMalformedBundle):
		writeError(w, http.StatusBadRequest, model.CodeMalformedBundle, err.Error())
	case errors.Is(err, crypto.ErrDecryptionFailure):
		writeError(w, http.StatusUnauthorized, model.CodeDecryptionFailed, err.Error())
	case errors.Is(err, crypto.ErrEntropyUnavailable):
		log.Error().Err(err).Msg("entropy source unavailable")
		writeError(w, http.StatusInternalServerError, model.CodeEntropyUnavailable, err.Error())
	case errors.Is(err, crypto.ErrEncryptionFailure):
		log.Error().Err(err).Msg("encryption failed")
		writeError(w, http.StatusInternalServerError, model.CodeEncryptionFailed, err.Error())
	default:
		log.Error().Err(err).Msg("unclassified wallet error")
		writeError(w, http.StatusInternalServerError, model.CodeInternal, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg, Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
