package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrProductNotFound = errors.New("product not found")
var ErrProductExists = errors.New("product already exists")
var ErrCampaignNotFound = errors.New("campaign not found")

// ErrValidationUnavailable marks an infrastructure failure during campaign
// validation. Callers must treat it as retryable, never as "campaign invalid".
var ErrValidationUnavailable = errors.New("product validation unavailable")
