package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lingostep/placement/internal/dto"
	"github.com/lingostep/placement/internal/service"
)

// OK writes the success envelope with HTTP 200.
func OK(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Status:  http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Created writes the success envelope with HTTP 201.
func Created(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Status:  http.StatusCreated,
		Message: message,
		Data:    data,
	})
}

// BadRequest writes a 400 envelope, typically for binding failures.
func BadRequest(ctx *gin.Context, message string, details ...string) {
	ctx.JSON(http.StatusBadRequest, dto.APIResponse{
		Status:  http.StatusBadRequest,
		Error:   true,
		Message: message,
		Details: details,
	})
}

// Fail maps a service error to its HTTP status and writes the error envelope.
func Fail(ctx *gin.Context, err error) {
	status := statusFor(err)
	ctx.JSON(status, dto.APIResponse{
		Status:  status,
		Error:   true,
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyTest),
		errors.Is(err, service.ErrNoValidAnswers),
		errors.Is(err, service.ErrAttemptTestMismatch):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrTestNotFound),
		errors.Is(err, service.ErrAttemptNotFound),
		errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrScoreNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
