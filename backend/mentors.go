package backend

import (
	"context"
	"io"
	"net/url"
)

func (c *Client) Mentors(ctx context.Context) ([]Mentor, error) {
	var out []Mentor
	err := c.do(ctx, "GET", "/mentors", nil, &out)
	return out, err
}

func (c *Client) Mentor(ctx context.Context, id string) (Mentor, error) {
	var out Mentor
	err := c.do(ctx, "GET", "/mentor/"+url.PathEscape(id), nil, &out)
	return out, err
}

// UpdateMentorProfile updates the authenticated mentor's profile. The avatar,
// when present, rides along as a multipart file part.
func (c *Client) UpdateMentorProfile(ctx context.Context, fields map[string]string, avatarName string, avatar io.Reader) (Mentor, error) {
	var out Mentor
	err := c.doMultipart(ctx, "PUT", "/mentor/profile", fields, "avatar", avatarName, avatar, &out)
	return out, err
}

func (c *Client) MentorReviews(ctx context.Context, mentorID string) ([]Review, error) {
	var out []Review
	err := c.do(ctx, "GET", "/mentor/"+url.PathEscape(mentorID)+"/reviews", nil, &out)
	return out, err
}

// RateMentor posts a review with a 1-5 rating.
func (c *Client) RateMentor(ctx context.Context, mentorID string, rating int, body string) (Review, error) {
	var out Review
	payload := map[string]any{"rating": rating, "body": body}
	err := c.do(ctx, "POST", "/mentor/"+url.PathEscape(mentorID)+"/reviews", payload, &out)
	return out, err
}
