package service

import "errors"

var (
	PasswordIncorrect = errors.New("password incorrect")
	TokenIncorrect    = errors.New("token incorrect")
	ErrValidation     = errors.New("bride_name and groom_name are required")
	ErrSlugExhausted  = errors.New("slug allocation retries exhausted")
)
