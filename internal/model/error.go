package model

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Error codes returned in ErrorResponse.Code
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeInvalidScalar      = "INVALID_SCALAR"
	CodeInvalidPublicKey   = "INVALID_PUBLIC_KEY"
	CodeMalformedBundle    = "MALFORMED_BUNDLE"
	CodeDecryptionFailed   = "DECRYPTION_FAILED"
	CodeEncryptionFailed   = "ENCRYPTION_FAILED"
	CodeEntropyUnavailable = "ENTROPY_UNAVAILABLE"
	CodeInternal           = "INTERNAL"
)
