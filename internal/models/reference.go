package models

import "nik-parser/internal/reference"

type RegionListResponse struct {
	Success bool               `json:"success"`
	Total   int                `json:"total"`
	Data    []reference.Region `json:"data"`
}

// ReferenceEvent is pushed to websocket clients after every load.
type ReferenceEvent struct {
	Type string `json:"type"`
	reference.Status
}
