package utils

type ResponseData struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Results any    `json:"results,omitempty"`
}

// PanicIfNeeded throws the error up to the recovery middleware, which maps
// GenericError implementations to their HTTP status.
func PanicIfNeeded(err any) {
	if err != nil {
		panic(err)
	}
}
