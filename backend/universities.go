package backend

import (
	"context"
	"net/url"
)

// UniversitiesByCountry lists universities for one country.
func (c *Client) UniversitiesByCountry(ctx context.Context, country string) ([]University, error) {
	var out []University
	err := c.do(ctx, "GET", "/universities?country="+url.QueryEscape(country), nil, &out)
	return out, err
}

// SearchUniversities runs a full-text search over the directory.
func (c *Client) SearchUniversities(ctx context.Context, query string) ([]University, error) {
	var out []University
	err := c.do(ctx, "GET", "/universities/search?q="+url.QueryEscape(query), nil, &out)
	return out, err
}

func (c *Client) University(ctx context.Context, id string) (University, error) {
	var out University
	err := c.do(ctx, "GET", "/universities/"+url.PathEscape(id), nil, &out)
	return out, err
}

// AddUniversity creates a directory entry. Admin only; the backend enforces it.
func (c *Client) AddUniversity(ctx context.Context, u University) (University, error) {
	var out University
	err := c.do(ctx, "POST", "/universities", u, &out)
	return out, err
}
