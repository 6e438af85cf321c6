package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/townbook/client-go/mockdata"
	"github.com/townbook/client-go/transform"
	"github.com/townbook/client-go/types"
)

const featuredLimit = 6

// GetBusinesses lists businesses matching the given filters. On backend
// failure it falls back to the static mock list so directory pages stay
// demonstrable offline.
func (c *Client) GetBusinesses(ctx context.Context, params types.BusinessParams) []types.Business {
	query := url.Values{}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.City != "" {
		query.Set("city", params.City)
	}
	if params.Category != "" {
		query.Set("category", params.Category)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	v, err := c.do(ctx, http.MethodGet, "/api/admin/business/all", query, nil)
	if err != nil {
		c.warn("/api/admin/business/all", err)
		return mockdata.Businesses()
	}
	return transform.BusinessArray(listPayload(v, "businesses", "data"))
}

// GetFeaturedBusinesses returns at most six featured listings for the
// homepage rail.
func (c *Client) GetFeaturedBusinesses(ctx context.Context, city string) []types.Business {
	query := url.Values{}
	if city != "" {
		query.Set("city", city)
	}

	v, err := c.do(ctx, http.MethodGet, "/api/admin/featured/all", query, nil)
	if err != nil {
		c.warn("/api/admin/featured/all", err)
		return mockdata.FeaturedBusinesses(featuredLimit)
	}
	businesses := transform.BusinessArray(listPayload(v, "businesses", "data"))
	if len(businesses) > featuredLimit {
		businesses = businesses[:featuredLimit]
	}
	return businesses
}

// GetBusinessByID fetches one listing. On backend failure the matching
// mock entry (or the first mock) stands in; a backend null answer yields
// nil.
func (c *Client) GetBusinessByID(ctx context.Context, id string) *types.Business {
	v, err := c.do(ctx, http.MethodGet, "/api/admin/business/get/"+url.PathEscape(id), nil, nil)
	if err != nil {
		c.warn("/api/admin/business/get", err)
		b := mockdata.BusinessByID(id)
		return &b
	}
	payload := objectPayload(v, "business", "data")
	if payload == nil {
		return nil
	}
	b := transform.Business(payload)
	return &b
}

// SearchBusinesses is a thin veneer over GetBusinesses, so it inherits
// the same mock fallback.
func (c *Client) SearchBusinesses(ctx context.Context, q, city string) []types.Business {
	return c.GetBusinesses(ctx, types.BusinessParams{Search: q, City: city})
}

func (c *Client) GetCategories(ctx context.Context) []types.Category {
	v, err := c.do(ctx, http.MethodGet, "/api/admin/alter/categories", nil, nil)
	if err != nil {
		c.warn("/api/admin/alter/categories", err)
		return mockdata.Categories()
	}
	return transform.CategoryArray(listPayload(v, "categories", "data"))
}

func (c *Client) GetServices(ctx context.Context) []types.Service {
	v, err := c.do(ctx, http.MethodGet, "/api/admin/alter/services", nil, nil)
	if err != nil {
		c.warn("/api/admin/alter/services", err)
		return mockdata.Services()
	}
	return transform.ServiceArray(listPayload(v, "services", "data"))
}

// GetActiveSliders returns the homepage carousel entries.
func (c *Client) GetActiveSliders(ctx context.Context) []types.Slider {
	v, err := c.do(ctx, http.MethodGet, "/api/sliders/active", nil, nil)
	if err != nil {
		c.warn("/api/sliders/active", err)
		return mockdata.Sliders()
	}
	return transform.SliderArray(listPayload(v, "sliders", "data"))
}

// GetUserBusinesses lists the businesses owned by one user. Empty on
// failure; a profile page with no listings and an unreachable backend
// look the same.
func (c *Client) GetUserBusinesses(ctx context.Context, userID string) []types.Business {
	v, err := c.do(ctx, http.MethodGet, "/api/users/businesses/"+url.PathEscape(userID), nil, nil)
	if err != nil {
		c.warn("/api/users/businesses", err)
		return []types.Business{}
	}
	return transform.BusinessArray(listPayload(v, "businesses", "data"))
}
