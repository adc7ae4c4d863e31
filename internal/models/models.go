package models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Blogs        []string  `json:"blogs" db:"-"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Owner is the public projection of a blog's owner.
type Owner struct {
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

// Blog carries the editor's raw rich-text document in Content (a
// {"blocks": [...]} tree of typed text blocks). The document is stored and
// returned unchanged.
type Blog struct {
	BlogID    string          `json:"blogId" db:"blog_id"`
	UserID    string          `json:"userId" db:"user_id"`
	Title     string          `json:"title" db:"title"`
	Subtitle  string          `json:"subtitle" db:"subtitle"`
	Author    string          `json:"author" db:"author"`
	Date      time.Time       `json:"date" db:"date"`
	Content   json.RawMessage `json:"content" db:"content"`
	Image     string          `json:"image" db:"image"`
	Images    pq.StringArray  `json:"images" db:"images"`
	Owner     *Owner          `json:"user,omitempty" db:"-"`
	Views     []BlogView      `json:"views" db:"-"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}

// BlogView is one entry of a blog's append-only view log. UserID is nil for
// anonymous views.
type BlogView struct {
	ViewID   string    `json:"viewId" db:"view_id"`
	BlogID   string    `json:"-" db:"blog_id"`
	UserID   *string   `json:"user" db:"user_id"`
	ViewedAt time.Time `json:"date" db:"viewed_at"`
}
