package backend

import (
	"context"
	"net/url"
)

func (c *Client) Rooms(ctx context.Context) ([]DiscussionRoom, error) {
	var out []DiscussionRoom
	err := c.do(ctx, "GET", "/rooms", nil, &out)
	return out, err
}

// CreateRoom proposes a discussion room; it stays pending until an admin
// approves it.
func (c *Client) CreateRoom(ctx context.Context, topic, description string) (DiscussionRoom, error) {
	var out DiscussionRoom
	payload := map[string]string{"topic": topic, "description": description}
	err := c.do(ctx, "POST", "/rooms", payload, &out)
	return out, err
}

func (c *Client) JoinRoom(ctx context.Context, id string) error {
	return c.do(ctx, "POST", "/rooms/"+url.PathEscape(id)+"/join", nil, nil)
}

// PendingRooms lists rooms awaiting moderation. Admin only.
func (c *Client) PendingRooms(ctx context.Context) ([]DiscussionRoom, error) {
	var out []DiscussionRoom
	err := c.do(ctx, "GET", "/rooms?status=pending", nil, &out)
	return out, err
}

func (c *Client) ApproveRoom(ctx context.Context, id string) (DiscussionRoom, error) {
	var out DiscussionRoom
	err := c.do(ctx, "PATCH", "/rooms/"+url.PathEscape(id)+"/approve", nil, &out)
	return out, err
}

func (c *Client) RejectRoom(ctx context.Context, id string) (DiscussionRoom, error) {
	var out DiscussionRoom
	err := c.do(ctx, "PATCH", "/rooms/"+url.PathEscape(id)+"/reject", nil, &out)
	return out, err
}
