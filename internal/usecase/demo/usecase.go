package demo

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"proto-demo/api/gen/go/pithos/common"
	apperrors "proto-demo/pkg/errors"
	"proto-demo/pkg/logger"
)

// Usecase builds a User message and formats its greeting.
type Usecase struct {
	formatter Formatter
	log       *zap.Logger
	validate  *validator.Validate
}

// New creates a new instance of Usecase.
func New(f Formatter, log *zap.Logger) *Usecase {
	return &Usecase{formatter: f, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a ValidationError.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var (
		messages []string
		field    string
	)
	for _, e := range validationErrors {
		if field == "" {
			field = e.Field()
		}
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
		case "gt":
			messages = append(messages, fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	if len(validationErrors) > 1 {
		field = ""
	}
	return apperrors.NewValidationError(field, strings.Join(messages, ", "))
}

// Run constructs the User message from in, passes its name to the formatter
// and reports the greeting together with the user's id line.
func (uc *Usecase) Run(ctx context.Context, in RunRequest) (*RunResponse, error) {
	log := logger.WithContext(ctx, uc.log)

	if err := uc.validate.Struct(in); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	u := &common.User{}
	u.Name = in.Name
	u.Id = in.ID

	log.Debug("user message constructed", zap.String("name", u.GetName()), zap.Int32("id", u.GetId()))

	greeting := uc.formatter.Format(u.GetName())

	return &RunResponse{
		User:     u,
		Greeting: greeting,
		IDLine:   fmt.Sprintf("User ID: %d", u.GetId()),
	}, nil
}
