package select_type

// SelectTypeRequest HTTP request model
type SelectTypeRequest struct {
	Type string `json:"type"` // "individual" | "package"
}
