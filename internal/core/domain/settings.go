package domain

// Settings is the single parking-wide configuration record.
type Settings struct {
	ParkingName string  `json:"parkingName"`
	TotalSpots  int     `json:"totalSpots"`
	RatePerHour float64 `json:"ratePerHour"`
	Currency    string  `json:"currency"`
	MaxDuration int     `json:"maxDuration"` // hours
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
}

// DefaultSettings returns the fixed literal defaults used when no settings
// record has been stored yet.
func DefaultSettings() Settings {
	return Settings{
		ParkingName: "AeroPark GOMA",
		TotalSpots:  50,
		RatePerHour: 1000,
		Currency:    "FC",
		MaxDuration: 168,
		Address:     "Aéroport de Goma, RDC",
		Phone:       "+243 XXX XXX XXX",
		Email:       "contact@aeroparkgoma.com",
	}
}

// SettingsPatch carries a partial settings update. Nil fields are left untouched.
type SettingsPatch struct {
	ParkingName *string
	TotalSpots  *int
	RatePerHour *float64
	Currency    *string
	MaxDuration *int
	Address     *string
	Phone       *string
	Email       *string
}

// Apply merges the patch into the settings record.
func (p SettingsPatch) Apply(s *Settings) {
	if p.ParkingName != nil {
		s.ParkingName = *p.ParkingName
	}
	if p.TotalSpots != nil {
		s.TotalSpots = *p.TotalSpots
	}
	if p.RatePerHour != nil {
		s.RatePerHour = *p.RatePerHour
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.MaxDuration != nil {
		s.MaxDuration = *p.MaxDuration
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
}
