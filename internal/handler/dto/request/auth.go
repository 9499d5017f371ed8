package request

// AuthPrepareRequest asks the lending API for challenge message(s) to sign.
// The full body is forwarded verbatim; only the fields below are validated.
type AuthPrepareRequest struct {
	OrdinalsAddress string `json:"ordinals_address" binding:"required"`
	PaymentAddress  string `json:"payment_address"`
}

// AuthSubmitRequest carries the signed challenge. Address keys the stored
// token record; signature/nonce fields pass through untouched.
type AuthSubmitRequest struct {
	Address         string `json:"address" binding:"required"`
	OrdinalsAddress string `json:"ordinals_address" binding:"required"`
	PaymentAddress  string `json:"payment_address"`
}
