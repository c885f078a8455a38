package service

// PhoneNormalizer turns user-entered phone numbers into E.164.
type PhoneNormalizer interface {
	// Normalize returns the E.164 form of raw, or an error when raw is not a valid number.
	Normalize(raw string) (string, error)
}
