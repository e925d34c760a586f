package dto

import (
	stderrors "errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/valueobjects"
)

// RegisterValidators registra no validator do gin as regras do catálogo:
// vote_value (+1/-1), era e tag_category.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return stderrors.New("unexpected validator engine")
	}

	rules := map[string]validator.Func{
		"vote_value":   validateVoteValue,
		"era":          validateEra,
		"tag_category": validateTagCategory,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

func validateVoteValue(fl validator.FieldLevel) bool {
	_, err := valueobjects.NewVoteValue(int(fl.Field().Int()))
	return err == nil
}

func validateEra(fl validator.FieldLevel) bool {
	_, err := entities.ParseEra(fl.Field().String())
	return err == nil
}

func validateTagCategory(fl validator.FieldLevel) bool {
	_, err := entities.ParseTagCategory(fl.Field().String())
	return err == nil
}

// BindingErrors converte erros do ShouldBind em erros de campo traduzidos
func BindingErrors(c *gin.Context, err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return []ValidationError{{Field: "body", Message: T(c, "validation.malformed")}}
	}

	result := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		params := map[string]interface{}{"Field": fe.Field(), "Param": fe.Param()}

		msg := T(c, "validation."+fe.Tag(), params)
		if msg == "validation."+fe.Tag() {
			msg = T(c, "validation.invalid", params)
		}

		result = append(result, ValidationError{
			Field:   fe.Field(),
			Message: msg,
			Tag:     fe.Tag(),
		})
	}
	return result
}
