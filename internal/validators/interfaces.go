package validators

import "context"

// Validator schema-checks an incoming payload. Implementations are stateless
// and side-effect free: a nil return means the payload is well-formed, a
// non-nil return is the first violated constraint.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
