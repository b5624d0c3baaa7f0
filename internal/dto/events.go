package dto

// VerifyEmailEvent is the payload published on the mail topic when a new
// account needs its verification code delivered.
type VerifyEmailEvent struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}
