package snapshots

// StatusRecord is the monitoring record served by the status endpoint.
// JSON keys are part of the wire contract and keep their historical spelling.
type StatusRecord struct {
	Anomaly     int     `json:"anomaly"` // 0: normal, 1: anomaly detected
	Cause       string  `json:"cause"`
	HeartRate   int     `json:"heartRate"`
	Temperature float64 `json:"temprature"`
	SpO2        int     `json:"spo2"`
	Name        string  `json:"mame"`
	Sex         string  `json:"sex"`
}

// CurrentStatus returns the status record. Values are constant and unrelated to uploads.
func CurrentStatus() StatusRecord {
	return StatusRecord{
		Anomaly:     0,
		Cause:       "None",
		HeartRate:   75,
		Temperature: 36.5,
		SpO2:        98,
		Name:        "田中太郎",
		Sex:         "M",
	}
}
