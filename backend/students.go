package backend

import (
	"context"
	"io"
)

// StudentProfileMe fetches the authenticated student's profile.
func (c *Client) StudentProfileMe(ctx context.Context) (StudentProfile, error) {
	var out StudentProfile
	err := c.do(ctx, "GET", "/student/profile", nil, &out)
	return out, err
}

// UpdateStudentProfile updates the authenticated student's profile, with an
// optional avatar upload.
func (c *Client) UpdateStudentProfile(ctx context.Context, fields map[string]string, avatarName string, avatar io.Reader) (StudentProfile, error) {
	var out StudentProfile
	err := c.doMultipart(ctx, "PUT", "/student/profile", fields, "avatar", avatarName, avatar, &out)
	return out, err
}
