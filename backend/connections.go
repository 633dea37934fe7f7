package backend

import (
	"context"
	"net/url"
)

// ApplyConnection submits a student's consultation request to a mentor.
func (c *Client) ApplyConnection(ctx context.Context, mentorID, message string) (Connection, error) {
	var out Connection
	payload := map[string]string{"mentor_id": mentorID, "message": message}
	err := c.do(ctx, "POST", "/connections", payload, &out)
	return out, err
}

// PendingConnections lists requests awaiting a decision, scoped by the
// backend to the authenticated principal (a mentor sees requests to them, a
// student their own).
func (c *Client) PendingConnections(ctx context.Context) ([]Connection, error) {
	var out []Connection
	err := c.do(ctx, "GET", "/connections?status=pending", nil, &out)
	return out, err
}

func (c *Client) ApprovedConnections(ctx context.Context) ([]Connection, error) {
	var out []Connection
	err := c.do(ctx, "GET", "/connections?status=approved", nil, &out)
	return out, err
}

func (c *Client) ApproveConnection(ctx context.Context, id string) (Connection, error) {
	var out Connection
	err := c.do(ctx, "PATCH", "/connections/"+url.PathEscape(id)+"/approve", nil, &out)
	return out, err
}

func (c *Client) RejectConnection(ctx context.Context, id string) (Connection, error) {
	var out Connection
	err := c.do(ctx, "PATCH", "/connections/"+url.PathEscape(id)+"/reject", nil, &out)
	return out, err
}

func (c *Client) DeleteConnection(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/connections/"+url.PathEscape(id), nil, nil)
}

// ApplyAffiliation submits a mentor's request to be associated with a
// university. Admins approve or reject it.
func (c *Client) ApplyAffiliation(ctx context.Context, universityID string) (Affiliation, error) {
	var out Affiliation
	err := c.do(ctx, "POST", "/affiliations", map[string]string{"university_id": universityID}, &out)
	return out, err
}

func (c *Client) PendingAffiliations(ctx context.Context) ([]Affiliation, error) {
	var out []Affiliation
	err := c.do(ctx, "GET", "/affiliations?status=pending", nil, &out)
	return out, err
}

func (c *Client) ApproveAffiliation(ctx context.Context, id string) (Affiliation, error) {
	var out Affiliation
	err := c.do(ctx, "PATCH", "/affiliations/"+url.PathEscape(id)+"/approve", nil, &out)
	return out, err
}

func (c *Client) RejectAffiliation(ctx context.Context, id string) (Affiliation, error) {
	var out Affiliation
	err := c.do(ctx, "PATCH", "/affiliations/"+url.PathEscape(id)+"/reject", nil, &out)
	return out, err
}
