package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Comparison is a saved named set of device ids. DeviceIDs is kept as the
// encoded string form it is stored under; referenced ids are resolved lazily
// on read and may dangle after a device delete.
type Comparison struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	DeviceIDs string    `json:"deviceIds"`
	CreatedAt time.Time `json:"createdAt"`
}

// EncodeDeviceIDs serializes an ordered id list into the stored string form.
func EncodeDeviceIDs(ids []int) string {
	if ids == nil {
		ids = []int{}
	}
	b, _ := json.Marshal(ids)
	return string(b)
}

// DecodeDeviceIDs reverses EncodeDeviceIDs, preserving order exactly.
func DecodeDeviceIDs(s string) ([]int, error) {
	var ids []int
	if err := json.Unmarshal([]byte(s), &ids); err != nil {
		return nil, fmt.Errorf("decode device ids: %w", err)
	}
	return ids, nil
}
