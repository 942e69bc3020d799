package utils

import "github.com/cesarbruschetta/api-fintech/internal/pkg/models"

func GetErrorCode(err error) string {
	if customErr, ok := err.(*models.CustomError); ok {
		return customErr.ErrorCode()
	}
	return "FINTECH_INTERNAL_ERROR"
}
