package domain

import "time"

type Job struct {
	ID             int32     `json:"id"`
	EmployerID     int32     `json:"employer_id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	Remote         bool      `json:"remote"`
	Tags           []string  `json:"tags"`
	SalaryMinCents int64     `json:"salary_min_cents"`
	SalaryMaxCents int64     `json:"salary_max_cents"`
	CreatedOn      time.Time `json:"created_on"`
}
