package models

import (
	"time"

	"github.com/avandyck/daypack/internal/sanitize"
)

// Contact is a person worth staying in touch with. Company is free text and
// may encode "role at company".
type Contact struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	TraceDate string    `gorm:"column:trace_date;size:10;index" json:"traceDate"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Company   string    `gorm:"size:256" json:"company"`
	Email     string    `gorm:"size:256" json:"email"`
	LinkedIn  string    `gorm:"column:linkedin;size:512" json:"linkedin"`
	XAccount  string    `gorm:"column:x_account;size:128" json:"xAccount"`
	Notes     string    `gorm:"type:text" json:"notes"`
	AvatarURL string    `gorm:"column:avatar_url;size:512" json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Contact) RecordID() string      { return c.ID }
func (c *Contact) SetRecordID(id string) { c.ID = id }
func (c *Contact) TraceDay() string      { return c.TraceDate }

// EnsureTrace backfills the trace date, defaulting to today.
func (c *Contact) EnsureTrace(today string) {
	if c.TraceDate == "" {
		c.TraceDate = today
	}
}

// Clean sanitizes free-text, URL, and email fields in place.
func (c *Contact) Clean() {
	c.Name = sanitize.Text(c.Name)
	c.Company = sanitize.Text(c.Company)
	c.Notes = sanitize.Text(c.Notes)
	c.Email = sanitize.Email(c.Email)
	c.LinkedIn = sanitize.URL(c.LinkedIn)
	c.AvatarURL = sanitize.URL(c.AvatarURL)
	c.XAccount = sanitize.Text(c.XAccount)
}
