package trip_models

// TransportOption is one searchable departure. Price is per traveler, in
// minor-less INR.
type TransportOption struct {
	ID            string        `json:"id"`
	Mode          TransportMode `json:"mode"`
	DisplayName   string        `json:"display_name"`
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	DepartureTime string        `json:"departure_time"`
	ArrivalTime   string        `json:"arrival_time"`
	Duration      string        `json:"duration"`
	Price         int64         `json:"price"`
	Currency      string        `json:"currency"`
	Deeplink      string        `json:"deeplink,omitempty"`
}

type HotelOption struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Address  string     `json:"address"`
	Price    int64      `json:"price"`
	Currency string     `json:"currency"`
	Rating   float64    `json:"rating"`
	Category BudgetTier `json:"category"`
	Deeplink string     `json:"deeplink,omitempty"`
}

// CabLeg is a local transfer estimate. One cab covers the whole party.
type CabLeg struct {
	Provider string `json:"provider"`
	From     string `json:"from"`
	To       string `json:"to"`
	Price    int64  `json:"price"`
	Currency string `json:"currency"`
	Details  string `json:"details,omitempty"`
}

// FinalItinerary is the assembled plan with its combined price. Transport and
// hotel components scale with PartySize; cab legs are charged once.
type FinalItinerary struct {
	Outbound     TransportOption  `json:"outbound"`
	Return       *TransportOption `json:"return,omitempty"`
	Hotel        HotelOption      `json:"hotel"`
	CabToStation CabLeg           `json:"cab_to_station"`
	CabToHotel   CabLeg           `json:"cab_to_hotel"`
	PartySize    int              `json:"party_size"`
	Total        int64            `json:"total"`
	Currency     string           `json:"currency"`
}
