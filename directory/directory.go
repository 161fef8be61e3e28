// Package directory exposes typed personnel directory services on top of the REST client.
package directory

import (
	"errors"
	"fmt"

	"github.com/viant/personnel/client"
)

const (
	pathRegister     = "/register"
	pathLogin        = "/login"
	pathLogout       = "/logout"
	pathProfile      = "/profile"
	pathCheckSession = "/api/check-session"
	pathDepartments  = "/departments"
	pathEmployees    = "/employees"
	pathOverview     = "/employees/overview"
)

// CacheablePaths lists collections whose GET responses may be cached with client.WithCache.
// Session endpoints are never cached.
var CacheablePaths = []string{pathDepartments, pathEmployees}

// ErrInvalidID is returned for non positive identifiers
var ErrInvalidID = errors.New("directory: invalid id")

// Directory groups directory services sharing one client
type Directory struct {
	Auth        *AuthService
	Departments *DepartmentService
	Employees   *EmployeeService
}

// New creates directory services
func New(c *client.Client) *Directory {
	return &Directory{
		Auth:        &AuthService{client: c},
		Departments: &DepartmentService{client: c},
		Employees:   &EmployeeService{client: c},
	}
}

func itemPath(collection string, id int) (string, error) {
	if id <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return fmt.Sprintf("%s/%d", collection, id), nil
}
