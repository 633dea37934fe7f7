package backend

import "time"

// Server-owned records. The portal holds transient, read-mostly copies
// fetched per page; nothing here is cached between navigations.

type Principal struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

type University struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	City        string   `json:"city,omitempty"`
	Website     string   `json:"website,omitempty"`
	Description string   `json:"description,omitempty"`
	Courses     []string `json:"courses,omitempty"`
}

type Mentor struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Headline    string   `json:"headline,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	AvatarURL   string   `json:"avatar_url,omitempty"`
	Expertise   []string `json:"expertise,omitempty"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	FeeCents    int64    `json:"fee_cents"`
	Currency    string   `json:"currency,omitempty"`
}

type StudentProfile struct {
	ID            string   `json:"id"`
	DisplayName   string   `json:"display_name"`
	Email         string   `json:"email"`
	AvatarURL     string   `json:"avatar_url,omitempty"`
	Country       string   `json:"country,omitempty"`
	TargetCourses []string `json:"target_courses,omitempty"`
}

type Review struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Connection is a student->mentor consultation request. Affiliation is a
// mentor->university association request approved by an admin. Both share the
// same status vocabulary; the state machine lives server-side and the portal
// only displays and re-requests it.
type Connection struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	MentorID    string    `json:"mentor_id"`
	MentorName  string    `json:"mentor_name,omitempty"`
	Message     string    `json:"message,omitempty"`
	Status      string    `json:"status"` // pending | approved | rejected
	CreatedAt   time.Time `json:"created_at"`
}

type Affiliation struct {
	ID             string    `json:"id"`
	MentorID       string    `json:"mentor_id"`
	MentorName     string    `json:"mentor_name,omitempty"`
	UniversityID   string    `json:"university_id"`
	UniversityName string    `json:"university_name,omitempty"`
	Status         string    `json:"status"` // pending | approved | rejected
	CreatedAt      time.Time `json:"created_at"`
}

type DiscussionRoom struct {
	ID          string    `json:"id"`
	Topic       string    `json:"topic"`
	Description string    `json:"description,omitempty"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name,omitempty"`
	MemberCount int       `json:"member_count"`
	Status      string    `json:"status"` // pending | approved | rejected
	CreatedAt   time.Time `json:"created_at"`
}

type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Negotiation is a server-tracked back-and-forth over a consultation fee.
// The portal displays rounds and submits responses; it computes nothing.
type Negotiation struct {
	ID            string    `json:"id"`
	MentorID      string    `json:"mentor_id"`
	StudentID     string    `json:"student_id,omitempty"`
	StudentName   string    `json:"student_name,omitempty"`
	ProposedCents int64     `json:"proposed_cents"`
	CounterCents  int64     `json:"counter_cents,omitempty"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"` // open | accepted | declined | countered
	LastActorRole string    `json:"last_actor_role,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
	CreatedAt     time.Time `json:"created_at"`
}

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	AmountCents  int64  `json:"amount_cents"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}
