package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrAlreadyEnrolled    = errors.New("user is already enrolled in this course")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
