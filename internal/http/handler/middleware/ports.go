package middleware

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Authorizer . Authorizer
type Authorizer interface {
	Authorize(token string) (string, error)
}
