// Package validation wires custom validations into Gin's binding engine.
package validation

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// Init registers the custom validations used by the request DTOs on the
// global validator behind Gin's binding. Call once at startup (and in
// handler tests) before serving requests.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// pastdate: a YYYY-MM-DD string that is not in the future.
		_ = v.RegisterValidation("pastdate", pastDate)
	}
}

func pastDate(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return false
	}
	return !d.After(time.Now())
}
