// Package mockdata holds the static fallback datasets the client returns
// when the backend is unreachable, keeping the app demonstrable offline.
package mockdata

import (
	"time"

	"github.com/townbook/client-go/types"
)

var fixtureTime = time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC)

var businesses = []types.Business{
	{
		ID:               "mock-biz-1",
		BusinessName:     "Sharma General Store",
		OwnerName:        "Rakesh Sharma",
		Description:      "Neighbourhood grocery and daily essentials, home delivery within 3 km.",
		BusinessCategory: "Grocery",
		Products:         "Groceries, dairy, household supplies",
		NoOfEmployee:     4,
		EstablishedIn:    "2009",
		Address:          "14 MG Road",
		StreetAddresses:  []string{"14 MG Road"},
		City:             "Pune",
		State:            "Maharashtra",
		Pincode:          "411001",
		Whatsapp:         "+919812345670",
		WebsiteLink:      "",
		WebsiteLinks:     []string{},
		Facebook:         types.FlagNo,
		Instagram:        types.FlagNo,
		Twitter:          types.FlagNo,
		Website:          types.FlagNo,
		Images:           []string{"https://cdn.townbook.app/demo/sharma-store-1.jpg"},
		Logo:             "https://cdn.townbook.app/demo/sharma-logo.png",
		Status:           types.StatusApproved,
		Featured:         true,
		Rating:           4.3,
		CreatedAt:        fixtureTime,
		UpdatedAt:        fixtureTime,
	},
	{
		ID:               "mock-biz-2",
		BusinessName:     "Lotus Beauty Salon",
		OwnerName:        "Priya Nair",
		Description:      "Unisex salon with bridal packages and skin care.",
		BusinessCategory: "Salon",
		Products:         "Haircuts, facials, bridal makeup",
		NoOfEmployee:     7,
		EstablishedIn:    "2015",
		Address:          "2nd Floor, Crystal Plaza, FC Road",
		StreetAddresses:  []string{"2nd Floor, Crystal Plaza, FC Road"},
		City:             "Pune",
		State:            "Maharashtra",
		Pincode:          "411004",
		Whatsapp:         "+919812345671",
		WebsiteLink:      "https://lotusbeauty.example.com",
		WebsiteLinks:     []string{"https://lotusbeauty.example.com"},
		InstagramLink:    "https://instagram.com/lotusbeautypune",
		Facebook:         types.FlagNo,
		Instagram:        types.FlagYes,
		Twitter:          types.FlagNo,
		Website:          types.FlagYes,
		Images: []string{
			"https://cdn.townbook.app/demo/lotus-1.jpg",
			"https://cdn.townbook.app/demo/lotus-2.jpg",
		},
		Status:    types.StatusApproved,
		Featured:  true,
		Rating:    4.7,
		CreatedAt: fixtureTime,
		UpdatedAt: fixtureTime,
	},
	{
		ID:               "mock-biz-3",
		BusinessName:     "Deccan Hardware & Paints",
		OwnerName:        "Suresh Patil",
		Description:      "Hardware, paints and plumbing supplies for contractors and homes.",
		BusinessCategory: "Hardware",
		Products:         "Paints, tools, pipes, fittings",
		NoOfEmployee:     11,
		EstablishedIn:    "1998",
		Address:          "Shop 6, Deccan Market",
		StreetAddresses:  []string{"Shop 6, Deccan Market", "Godown: Lane 4, Kothrud"},
		City:             "Pune",
		State:            "Maharashtra",
		Pincode:          "411038",
		Whatsapp:         "+919812345672",
		FacebookLink:     "https://facebook.com/deccanhardware",
		Facebook:         types.FlagYes,
		Instagram:        types.FlagNo,
		Twitter:          types.FlagNo,
		Website:          types.FlagNo,
		WebsiteLinks:     []string{},
		Images:           []string{"https://cdn.townbook.app/demo/deccan-1.jpg"},
		Status:           types.StatusApproved,
		Featured:         false,
		Rating:           4.1,
		CreatedAt:        fixtureTime,
		UpdatedAt:        fixtureTime,
	},
	{
		ID:               "mock-biz-4",
		BusinessName:     "Annapurna Tiffin Services",
		OwnerName:        "Meena Kulkarni",
		Description:      "Home-style veg tiffins delivered to offices and hostels.",
		BusinessCategory: "Food",
		Products:         "Lunch tiffins, monthly meal plans",
		NoOfEmployee:     3,
		EstablishedIn:    "2021",
		Address:          "Flat 2, Shree Apartments, Karve Nagar",
		StreetAddresses:  []string{"Flat 2, Shree Apartments, Karve Nagar"},
		City:             "Mumbai",
		State:            "Maharashtra",
		Pincode:          "400052",
		Whatsapp:         "+919812345673",
		Facebook:         types.FlagNo,
		Instagram:        types.FlagNo,
		Twitter:          types.FlagNo,
		Website:          types.FlagNo,
		WebsiteLinks:     []string{},
		Images:           []string{},
		Status:           types.StatusPending,
		Featured:         false,
		Rating:           0,
		CreatedAt:        fixtureTime,
		UpdatedAt:        fixtureTime,
	},
}

var categories = []types.Category{
	{ID: "mock-cat-1", Name: "Grocery", Icon: "shopping-cart"},
	{ID: "mock-cat-2", Name: "Salon", Icon: "scissors"},
	{ID: "mock-cat-3", Name: "Hardware", Icon: "wrench"},
	{ID: "mock-cat-4", Name: "Food", Icon: "utensils"},
	{ID: "mock-cat-5", Name: "Electronics", Icon: "cpu"},
}

var services = []types.Service{
	{ID: "mock-srv-1", Name: "Home Delivery"},
	{ID: "mock-srv-2", Name: "Doorstep Repair"},
	{ID: "mock-srv-3", Name: "Catering"},
}

var sliders = []types.Slider{
	{ID: "mock-slider-1", Image: "https://cdn.townbook.app/demo/banner-festive.jpg", Title: "Festive offers near you"},
	{ID: "mock-slider-2", Image: "https://cdn.townbook.app/demo/banner-feature.jpg", Title: "List your business for free", Link: "/register-business"},
}

// Businesses returns a fresh copy of the fallback business list; callers
// own the returned slice.
func Businesses() []types.Business {
	out := make([]types.Business, len(businesses))
	copy(out, businesses)
	return out
}

func Categories() []types.Category {
	out := make([]types.Category, len(categories))
	copy(out, categories)
	return out
}

func Services() []types.Service {
	out := make([]types.Service, len(services))
	copy(out, services)
	return out
}

func Sliders() []types.Slider {
	out := make([]types.Slider, len(sliders))
	copy(out, sliders)
	return out
}

// FeaturedBusinesses returns up to limit featured entries from the
// fallback list.
func FeaturedBusinesses(limit int) []types.Business {
	out := []types.Business{}
	for _, b := range businesses {
		if !b.Featured {
			continue
		}
		out = append(out, b)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// BusinessByID returns the fallback entry with the given id, or the first
// entry when nothing matches.
func BusinessByID(id string) types.Business {
	for _, b := range businesses {
		if b.ID == id {
			return b
		}
	}
	return businesses[0]
}
