package dto

type CreateBrandRequest struct {
	Name        string  `json:"name"`
	Logo        *string `json:"logo"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
}
