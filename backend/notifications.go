package backend

import (
	"context"
	"net/url"
)

func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	err := c.do(ctx, "GET", "/notifications", nil, &out)
	return out, err
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, "PATCH", "/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

func (c *Client) MarkNotificationUnread(ctx context.Context, id string) error {
	return c.do(ctx, "PATCH", "/notifications/"+url.PathEscape(id)+"/unread", nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/notifications/"+url.PathEscape(id), nil, nil)
}
