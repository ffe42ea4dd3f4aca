package employee

import (
	employeeDatamodel "github.com/frahmantamala/lead-tracker/internal/core/datamodel/employee"
)

type Department string

const (
	DepartmentIPS    Department = "IPS"
	DepartmentGMEC   Department = "GMEC"
	DepartmentTASCON Department = "TASCON"
	DepartmentFPS    Department = "FPS"
)

// Departments lists the companies an employee can belong to.
var Departments = []Department{DepartmentIPS, DepartmentGMEC, DepartmentTASCON, DepartmentFPS}

func (d Department) IsValid() bool {
	for _, known := range Departments {
		if d == known {
			return true
		}
	}
	return false
}

type Employee struct {
	ID         int64      `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Department Department `json:"department"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func NewEmployee(id int64, dto CreateEmployeeDTO) *Employee {
	return &Employee{
		ID:         id,
		FirstName:  dto.FirstName,
		LastName:   dto.LastName,
		Email:      dto.Email,
		Phone:      dto.Phone,
		Department: Department(dto.Department),
	}
}

func ToDataModel(e *Employee) employeeDatamodel.Employee {
	return employeeDatamodel.Employee{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: string(e.Department),
	}
}

func FromDataModel(e employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: Department(e.Department),
	}
}

func FromDataModelSlice(employees []employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(employees))
	for i, e := range employees {
		result[i] = FromDataModel(e)
	}
	return result
}
