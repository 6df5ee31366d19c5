package repositories

import "errors"

var (
	ErrDuplicateEmail   = errors.New("user with this email already exists")
	ErrDuplicateTaxID   = errors.New("company with this tax id is already registered")
	ErrDuplicateAddress = errors.New("a business at this address is already registered")

	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrSubscriptionExpired = errors.New("subscription has expired")

	ErrUserNotFound       = errors.New("user not found")
	ErrVacancyNotFound    = errors.New("vacancy not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	ErrAlreadyApplied  = errors.New("already applied to this vacancy")
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")

	ErrInvalidRating = errors.New("review rating must be between 1 and 5")
)
