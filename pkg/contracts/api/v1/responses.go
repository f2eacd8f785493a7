package api

import "upstreamcli/pkg/contracts/domain"

// StatusSuccess is the status of every successful response envelope.
const StatusSuccess = "success"

// LotesResponse is the body of GET /api/lotes.
type LotesResponse struct {
	Status string   `json:"status"`
	Data   []string `json:"data"`
	Count  int      `json:"count"`
}

// ReportResponse is the JSON body of a report request.
type ReportResponse struct {
	Status string         `json:"status"`
	Data   *domain.Report `json:"data"`
}

// ReloadResponse is the body of POST /api/dataset/reload. Data is the
// description of the dataset now in memory.
type ReloadResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}
