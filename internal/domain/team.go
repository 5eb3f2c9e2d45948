package domain

// Team команда консультантов (tbl_team)
type Team struct {
	ID      int64
	Title   *string
	Status  *string
	AddedOn *string
}

// IsActive returns true if the team is active
func (t *Team) IsActive() bool {
	return t.Status != nil && *t.Status == TeamStatusActive
}
