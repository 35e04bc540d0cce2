package assign_occupant

// AssignOccupantRequest HTTP request model
type AssignOccupantRequest struct {
	IndividualID int64 `json:"individualId"`
}
