package domain

// Brand is a manufacturer entry. DeviceCount is derived: it is recomputed on
// every brand listing from the current device set and is stale everywhere
// else.
type Brand struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Logo        *string `json:"logo"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	DeviceCount int     `json:"deviceCount"`
}
