package models

import "nik-parser/internal/nik"

// MaxBatchSize caps the number of NIKs accepted by one batch request.
const MaxBatchSize = 100

type ParseBatchRequest struct {
	NIKs []string `json:"niks"`
}

type ParseBatchResponse struct {
	Success bool         `json:"success"`
	Data    []nik.Result `json:"data"`
}
