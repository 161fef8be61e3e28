package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StructVisitor_Visit(t *testing.T) {

	type Employee struct {
		ID        int
		FirstName string `json:"firstName"`
		JobTitle  string
		internal  string
	}

	emp := &Employee{ID: 1, FirstName: "Ada", JobTitle: "Engineer", internal: "x"}

	for _, value := range []interface{}{emp, *emp} {
		visit, err := StructVisitorOf(value)
		if !assert.Nil(t, err) {
			return
		}
		var clone = &Employee{}
		var names []string
		err = visit(func(field *Field, value interface{}) (bool, error) {
			names = append(names, field.Name)
			switch field.Name {
			case "ID":
				clone.ID = value.(int)
			case "FirstName":
				assert.Equal(t, "firstName", field.Tag.Get("json"))
				clone.FirstName = value.(string)
			case "JobTitle":
				clone.JobTitle = value.(string)
			}
			return true, nil
		})
		assert.Nil(t, err)
		assert.EqualValues(t, []string{"ID", "FirstName", "JobTitle"}, names)
		assert.EqualValues(t, emp.FirstName, clone.FirstName)
		assert.EqualValues(t, emp.JobTitle, clone.JobTitle)
	}
}

func TestStructVisitorOf_Errors(t *testing.T) {
	type Employee struct{ ID int }
	var nilEmp *Employee
	_, err := StructVisitorOf(nilEmp)
	assert.NotNil(t, err)
	_, err = StructVisitorOf(1)
	assert.NotNil(t, err)
	_, err = StructVisitorOf(nil)
	assert.NotNil(t, err)
	assert.True(t, IsStruct(&Employee{}))
	assert.False(t, IsStruct(nilEmp))
}

func TestSyncMap_GetOrCreate(t *testing.T) {
	cache := NewSyncMap[string, int]()
	calls := 0
	create := func() int {
		calls++
		return 42
	}
	assert.Equal(t, 42, cache.GetOrCreate("answer", create))
	assert.Equal(t, 42, cache.GetOrCreate("answer", create))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, cache.Len())
	cache.Put("other", 7)
	value, ok := cache.Get("other")
	assert.True(t, ok)
	assert.Equal(t, 7, value)
}
