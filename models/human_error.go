package models

import "net/http"

// HumanError is a refusal whose message is safe to return to the caller as is.
type HumanError struct {
	Status  int
	Message string
}

func (e HumanError) Error() string {
	return e.Message
}

func NewBadRequest(message string) error {
	return HumanError{Status: http.StatusBadRequest, Message: message}
}

func NewUnauthorized(message string) error {
	return HumanError{Status: http.StatusUnauthorized, Message: message}
}

func NewNotFound(message string) error {
	return HumanError{Status: http.StatusNotFound, Message: message}
}
