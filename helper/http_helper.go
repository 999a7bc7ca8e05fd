package helper

import (
	"errors"
	"math"
	"net/http"

	"stayconnected-api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	entranslations.RegisterDefaultTranslations(validate, translator)

	return &HTTPHelper{
		Validate:   validate,
		Translator: translator,
	}
}

// StatusFromError maps the models error taxonomy to an HTTP status code.
func (u *HTTPHelper) StatusFromError(err error) int {
	var notFound models.ErrorNotFound
	var forbidden models.ErrorForbidden
	var unauthorized models.ErrorUnauthorized
	var validation models.ErrorValidation

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// SendError writes the error in the shape the taxonomy prescribes: field-keyed
// validation errors as {field: [messages]}, everything else as {error: message}
// plus any extra payload the error carries.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status := u.StatusFromError(err)

	var validation models.ErrorValidation
	if errors.As(err, &validation) && len(validation.Fields) > 0 {
		c.JSON(status, validation.Fields)
		return
	}

	body := gin.H{"error": err.Error()}
	var notFound models.ErrorNotFound
	if errors.As(err, &notFound) {
		for key, value := range notFound.Data {
			body[key] = value
		}
	}
	c.JSON(status, body)
}

// SendBindingValidationError translates validator.v9 failures into
// {field: [messages]} keyed by the snake_cased struct field.
func (u *HTTPHelper) SendBindingValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, errorResponse)
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
}

// GeneratePaging builds the pagination block for list responses.
func (u *HTTPHelper) GeneratePaging(limit, page int, totalRecord int64) map[string]interface{} {
	totalPages := int(math.Ceil(float64(totalRecord) / float64(limit)))

	return map[string]interface{}{
		"total_records": totalRecord,
		"per_page":      limit,
		"current_page":  page,
		"total_pages":   totalPages,
	}
}
