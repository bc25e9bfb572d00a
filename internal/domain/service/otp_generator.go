package service

// OTPGenerator produces the short-lived numeric codes used for email
// verification. Implementations must draw from a cryptographically secure
// random source; the code is a security credential.
type OTPGenerator interface {
	// Generate returns a 6-character numeric string, left-padded with zeros.
	Generate() (string, error)
}
