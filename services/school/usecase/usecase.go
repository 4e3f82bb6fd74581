package usecase

import (
	"schoolmgmt/config"
	"schoolmgmt/domain"

	"github.com/asaskevich/govalidator"
)

var log = config.GetLogrusInstance()

// validate runs the struct's valid tags and folds failures into the
// validation error category.
func validate(s interface{}) error {
	if _, err := govalidator.ValidateStruct(s); err != nil {
		return domain.Validationf("%s", err.Error())
	}
	return nil
}
