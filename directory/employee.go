package directory

import (
	"context"

	"github.com/viant/personnel/client"
	"github.com/viant/personnel/validate"
)

// EmployeeService handles employee endpoints
type EmployeeService struct {
	client *client.Client
}

// List returns all employees
func (s *EmployeeService) List(ctx context.Context) ([]*Employee, error) {
	var ret []*Employee
	if _, err := s.client.Get(ctx, pathEmployees, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Overview returns employee overview listing
func (s *EmployeeService) Overview(ctx context.Context) ([]*EmployeeOverview, error) {
	var ret []*EmployeeOverview
	if _, err := s.client.Get(ctx, pathOverview, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Get returns employee by id
func (s *EmployeeService) Get(ctx context.Context, id int) (*Employee, error) {
	path, err := itemPath(pathEmployees, id)
	if err != nil {
		return nil, err
	}
	ret := &Employee{}
	if _, err = s.client.Get(ctx, path, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Create validates and creates an employee, a profile picture is required.
// It returns response status code and created employee if returned.
func (s *EmployeeService) Create(ctx context.Context, input *EmployeeInput) (int, *Employee, error) {
	err := validate.Struct(input)
	if input != nil && input.ProfilePicture == nil {
		err = validate.Append(err, validate.Required("ProfilePicture", "Profile Picture"))
	}
	if err != nil {
		return 0, nil, err
	}
	response, err := s.client.Post(ctx, pathEmployees, input, nil)
	if err != nil {
		return 0, nil, err
	}
	created, err := decodeEmployee(response)
	return response.StatusCode, created, err
}

// Update validates and updates an employee, profile picture is optional
func (s *EmployeeService) Update(ctx context.Context, id int, input *EmployeeInput) (*Employee, error) {
	path, err := itemPath(pathEmployees, id)
	if err != nil {
		return nil, err
	}
	if err = validate.Struct(input); err != nil {
		return nil, err
	}
	response, err := s.client.Put(ctx, path, input, nil)
	if err != nil {
		return nil, err
	}
	return decodeEmployee(response)
}

// Delete removes an employee
func (s *EmployeeService) Delete(ctx context.Context, id int) error {
	path, err := itemPath(pathEmployees, id)
	if err != nil {
		return err
	}
	_, err = s.client.Delete(ctx, path, nil)
	return err
}

func decodeEmployee(response *client.Response) (*Employee, error) {
	if response.Payload == nil {
		return nil, nil
	}
	ret := &Employee{}
	if err := response.Decode(ret); err != nil {
		return nil, err
	}
	return ret, nil
}
