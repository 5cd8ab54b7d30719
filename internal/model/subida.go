package model

import "time"

// Subida records one attempt to upload a weekly workbook to remote storage.
// Failed attempts stay in the history until the user retries them.
type Subida struct {
	RegistroID string    `json:"recordId"`
	Archivo    string    `json:"fileName"`
	Bucket     string    `json:"bucket"`
	Exitosa    bool      `json:"ok"`
	Error      string    `json:"error,omitempty"`
	Fecha      time.Time `json:"at"`
}
