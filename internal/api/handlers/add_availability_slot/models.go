package add_availability_slot

// AddSlotRequest HTTP request model
type AddSlotRequest struct {
	Date string `json:"date"` // "2025-10-15"
	Time string `json:"time"` // "10:00"
}
