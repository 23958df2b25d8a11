package payload

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

// maxBodyBytes bounds JSON bodies; derivative images are base64 encoded inline.
const maxBodyBytes = 16 << 20

type Decoder struct{}

// DecodeJSONPayload decodes the request body into object, rejecting unknown
// fields, and validates it when object implements validation.Validatable.
func (d Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	defer func() {
		errClose := r.Body.Close()
		if err == nil && errClose != nil {
			err = fmt.Errorf("closing request body: %w", errClose)
		}
	}()

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	if v, ok := object.(validation.Validatable); ok {
		if err = v.Validate(); err != nil {
			return fmt.Errorf("validating payload: %w", err)
		}
	}
	return nil
}
