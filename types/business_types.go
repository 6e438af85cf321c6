package types

import "time"

// Business statuses as stored by the backend, always lower-cased.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Social flags are rendered as literal strings, matching what listing
// pages expect to display.
const (
	FlagYes = "YES"
	FlagNo  = "NO"
)

// Business is the canonical merchant listing shape. Every field is always
// populated with a safe default; consumers never need nil checks.
type Business struct {
	ID               string `json:"_id"`
	BusinessName     string `json:"businessName"`
	OwnerName        string `json:"ownerName"`
	Description      string `json:"description"`
	BusinessCategory string `json:"businessCategory"`
	Products         string `json:"products"`
	NoOfEmployee     int    `json:"noOfEmployee"`
	EstablishedIn    string `json:"establishedIn"`

	Address         string   `json:"address"`
	StreetAddresses []string `json:"streetAddresses"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	Pincode         string   `json:"pincode"`

	Whatsapp string `json:"whatsapp"`

	WebsiteLink   string   `json:"websiteLink"`
	WebsiteLinks  []string `json:"websiteLinks"`
	FacebookLink  string   `json:"facebookLink"`
	InstagramLink string   `json:"instagramLink"`
	TwitterLink   string   `json:"twitterLink"`

	// "YES" / "NO" presence flags.
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Website   string `json:"website"`

	Images []string `json:"images"`
	Logo   string   `json:"logo"`
	Banner string   `json:"banner"`
	Selfie string   `json:"selfie"`

	Status   string  `json:"status"`
	Featured bool    `json:"featured"`
	Rating   float64 `json:"rating"`

	SalesPersonID     string `json:"salesPersonId"`
	SalesPersonUserID string `json:"salesPersonUserId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BusinessParams filters the business listing endpoint.
type BusinessParams struct {
	Status   string
	City     string
	Category string
	Search   string
}

type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type Service struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// Slider is one entry of the homepage carousel.
type Slider struct {
	ID    string `json:"_id"`
	Image string `json:"image"`
	Title string `json:"title,omitempty"`
	Link  string `json:"link,omitempty"`
}
