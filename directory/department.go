package directory

import (
	"context"

	"github.com/viant/personnel/client"
	"github.com/viant/personnel/validate"
)

// DepartmentService handles department endpoints
type DepartmentService struct {
	client *client.Client
}

// List returns all departments
func (s *DepartmentService) List(ctx context.Context) ([]*Department, error) {
	var ret []*Department
	if _, err := s.client.Get(ctx, pathDepartments, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Options returns department selection options
func (s *DepartmentService) Options(ctx context.Context) ([]*DepartmentListItem, error) {
	var ret []*DepartmentListItem
	if _, err := s.client.Get(ctx, pathDepartments, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Get returns department by id
func (s *DepartmentService) Get(ctx context.Context, id int) (*Department, error) {
	path, err := itemPath(pathDepartments, id)
	if err != nil {
		return nil, err
	}
	ret := &Department{}
	if _, err = s.client.Get(ctx, path, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Create validates and creates a department, it returns response status code and created department if returned
func (s *DepartmentService) Create(ctx context.Context, department *Department) (int, *Department, error) {
	if err := validate.Struct(department); err != nil {
		return 0, nil, err
	}
	response, err := s.client.Post(ctx, pathDepartments, department, nil)
	if err != nil {
		return 0, nil, err
	}
	created, err := decodeDepartment(response)
	return response.StatusCode, created, err
}

// Update validates and updates a department
func (s *DepartmentService) Update(ctx context.Context, id int, department *Department) (*Department, error) {
	path, err := itemPath(pathDepartments, id)
	if err != nil {
		return nil, err
	}
	if err = validate.Struct(department); err != nil {
		return nil, err
	}
	response, err := s.client.Put(ctx, path, department, nil)
	if err != nil {
		return nil, err
	}
	if err = s.client.Invalidate(ctx, pathEmployees); err != nil {
		return nil, err
	}
	return decodeDepartment(response)
}

// Delete removes a department
func (s *DepartmentService) Delete(ctx context.Context, id int) error {
	path, err := itemPath(pathDepartments, id)
	if err != nil {
		return err
	}
	if _, err = s.client.Delete(ctx, path, nil); err != nil {
		return err
	}
	return s.client.Invalidate(ctx, pathEmployees)
}

func decodeDepartment(response *client.Response) (*Department, error) {
	if response.Payload == nil {
		return nil, nil
	}
	ret := &Department{}
	if err := response.Decode(ret); err != nil {
		return nil, err
	}
	return ret, nil
}
