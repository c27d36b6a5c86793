package error

// GenericError is implemented by every typed service error so transport
// layers can map them to a code and HTTP status without type switches.
type GenericError interface {
	Error() string
	ErrCode() string
	StatusCode() int
}
