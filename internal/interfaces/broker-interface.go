package interfaces

import "context"

type ConsumerHandler interface {
	HandleMessage(message string) error
}

type ProducerHandler interface {
	PublishMessage(key, value []byte) error
}

// VerificationNotifier delivers a freshly generated verification code to the
// account's email address out-of-band. Delivery is best-effort: a failure must
// never undo the registration that triggered it.
type VerificationNotifier interface {
	SendVerificationCode(ctx context.Context, email, code string) error
}
