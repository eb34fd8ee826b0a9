package service

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotOnDashboard  = errors.New("dashboard is only available after an intent is submitted")
)
