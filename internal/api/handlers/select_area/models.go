package select_area

// SelectAreaRequest HTTP request model
type SelectAreaRequest struct {
	AreaID string `json:"areaId"` // "vision", "basic", ...
}
