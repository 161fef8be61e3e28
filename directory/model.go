package directory

import (
	"time"

	"github.com/viant/personnel/payload"
)

// User represents directory account
type User struct {
	ID       int    `json:"id,omitempty"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password,omitempty" validate:"required"`
}

// Department represents a department with its address
type Department struct {
	ID             int        `json:"id,omitempty"`
	DepartmentName string     `json:"departmentName" validate:"required"`
	AddressLineOne string     `json:"addressLineOne" validate:"required,label='Address Line 1'"`
	AddressLineTwo string     `json:"addressLineTwo,omitempty"`
	Town           string     `json:"town" validate:"required"`
	County         string     `json:"county" validate:"required"`
	Postcode       string     `json:"postcode" validate:"required"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// DepartmentListItem represents department selection option
type DepartmentListItem struct {
	ID             int    `json:"id"`
	DepartmentName string `json:"departmentName"`
}

// Employee represents an employee record
type Employee struct {
	ID                int     `json:"id"`
	Title             string  `json:"title"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	EmpNo             string  `json:"empNo"`
	JobTitle          string  `json:"jobTitle"`
	DepartmentID      int     `json:"departmentId"`
	DepartmentName    string  `json:"departmentName,omitempty"`
	Telephone         string  `json:"telephone"`
	Email             string  `json:"email"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
}

// EmployeeInput represents employee create or update request
type EmployeeInput struct {
	Title          string              `json:"title" validate:"required,oneof='Mr.|Mrs.|Miss|Ms.|Dr.'"`
	FirstName      string              `json:"firstName" validate:"required"`
	LastName       string              `json:"lastName" validate:"required"`
	EmpNo          string              `json:"empNo" validate:"required,label='Employee Number'"`
	JobTitle       string              `json:"jobTitle" validate:"required"`
	DepartmentID   int                 `json:"departmentId" validate:"required,label='Department ID'"`
	Telephone      string              `json:"telephone" validate:"required,label='Telephone number'"`
	Email          string              `json:"email" validate:"required,email"`
	ProfilePicture *payload.Attachment `json:"profilePicture,omitempty"`
}

// EmployeeOverview represents employee overview listing row
type EmployeeOverview struct {
	ID                int     `json:"id"`
	Title             string  `json:"title,omitempty"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	JobTitle          string  `json:"jobTitle"`
	DepartmentName    string  `json:"departmentName"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
}

// FullName returns employee display name
func (e *EmployeeOverview) FullName() string {
	if e.Title == "" {
		return e.FirstName + " " + e.LastName
	}
	return e.Title + " " + e.FirstName + " " + e.LastName
}
