package domain

import (
	"fmt"
	"strings"
	"time"
)

const TimeLayout = "02/Jan/2006:15:04:05 -0700"

// Record is one parsed access-log line.
type Record struct {
	ClientAddress string
	User          string
	Time          time.Time
	Request       string
	Status        int
	Size          int64
	Referer       string
	UserAgent     string
}

// Method returns the first token of the request line.
func (r Record) Method() string {
	return r.requestPart(0)
}

// Resource returns the second token of the request line.
func (r Record) Resource() string {
	return r.requestPart(1)
}

func (r Record) requestPart(i int) string {
	parts := strings.Fields(r.Request)
	if len(parts) <= i {
		return ""
	}

	return parts[i]
}

// String formats the record as an access-log line.
func (r Record) String() string {
	return fmt.Sprintf(
		`%s - %s [%s] "%s" %03d %d "%s" "%s"`,
		r.ClientAddress,
		r.User,
		r.Time.Format(TimeLayout),
		r.Request,
		r.Status,
		r.Size,
		r.Referer,
		r.UserAgent,
	)
}
