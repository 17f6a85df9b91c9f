// Package models holds the record types shared between the database
// layer and the HTTP handlers.
package models

import "time"

// Student is a row in the students table.
type Student struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	RollNo    string    `json:"rollNo"`
	Class     string    `json:"class"`
	CreatedAt time.Time `json:"createdAt"`
}

// Teacher is a row in the teachers table.
type Teacher struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Class     string    `json:"class"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewStudent is the payload for creating a student. The identifier and
// timestamp are assigned by the database.
type NewStudent struct {
	Name   string `json:"name"`
	RollNo string `json:"rollNo"`
	Class  string `json:"class"`
}

// NewTeacher is the payload for creating a teacher.
type NewTeacher struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Class   string `json:"class"`
}
