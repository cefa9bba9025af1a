package models

// Personnel roles recognized by the directory.
const (
	RoleFaculty = "faculty"
	RoleStaff   = "staff"
	RoleAdjunct = "adjunct"
	RoleStudent = "student"
)

// Person is a directory entry for a department member.
type Person struct {
	ID        string   `bson:"id" json:"id"`
	Name      string   `bson:"name" json:"name"`
	Email     string   `bson:"email,omitempty" json:"email,omitempty"`
	Role      string   `bson:"role" json:"role"` // faculty, staff, adjunct, student
	JobTitle  string   `bson:"jobTitle,omitempty" json:"jobTitle,omitempty"`
	Buildings []string `bson:"buildings,omitempty" json:"buildings,omitempty"`
	Office    string   `bson:"office,omitempty" json:"office,omitempty"`
}

// PersonUpdateRequest carries the mutable fields of a directory entry.
type PersonUpdateRequest struct {
	ID        string    `json:"id" binding:"required"`
	Name      *string   `json:"name,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Role      *string   `json:"role,omitempty"`
	JobTitle  *string   `json:"jobTitle,omitempty"`
	Buildings *[]string `json:"buildings,omitempty"`
	Office    *string   `json:"office,omitempty"`
}
