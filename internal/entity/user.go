package entity

// UserLoginData is the caller identity extracted from a verified token.
// It lives only for the duration of the request.
type UserLoginData struct {
	ID string
}
