package dto

// QueryParams bounds and orders a GetAll call. Zero values mean "no limit" and "store order".
type QueryParams struct {
	Limit   int    `json:"limit"    validate:"omitempty,gte=0"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}
