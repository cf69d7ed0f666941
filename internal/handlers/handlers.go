package handlers

import "github.com/go-playground/validator/v10"

// validate is the shared request payload validator.
var validate = validator.New()
