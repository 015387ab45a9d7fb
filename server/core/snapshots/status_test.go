package snapshots

import (
	"encoding/json"
	"testing"
)

func TestCurrentStatus_WireFormat(t *testing.T) {
	data, err := json.Marshal(CurrentStatus())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"anomaly":0,"cause":"None","heartRate":75,"temprature":36.5,"spo2":98,"mame":"田中太郎","sex":"M"}`
	if string(data) != expected {
		t.Errorf("Unexpected status JSON:\n got %s\nwant %s", data, expected)
	}
}
