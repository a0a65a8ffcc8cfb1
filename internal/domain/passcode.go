package domain

// Passcode stores a one-time login code for an email address.
// PK: email (lowercase). At most one active code per email: a new
// issuance overwrites the previous item.
// ExpiresAt is a Unix timestamp also used as the DynamoDB TTL.
type Passcode struct {
	Email     string `json:"email" dynamodbav:"email"`
	Code      string `json:"code" dynamodbav:"code"`
	IssuedAt  int64  `json:"issued_at" dynamodbav:"issued_at"`
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"` // TTL (Unix seconds)
}
