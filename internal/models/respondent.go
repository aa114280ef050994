package models

// Role is the respondent's position at Elmcrest. The set is fixed; narrative
// content is written against "Program Supervisor" and personalized to the
// selected role at resolution time.
type Role string

const (
	RoleProgramSupervisor Role = "Program Supervisor"
	RoleShiftSupervisor   Role = "Shift Supervisor"
	RoleYDP               Role = "YDP"
)

// RoleOption pairs a role value with its display label.
type RoleOption struct {
	Value Role   `json:"value"`
	Label string `json:"label"`
}

var RoleOptions = []RoleOption{
	{Value: RoleProgramSupervisor, Label: "Program Supervisor"},
	{Value: RoleShiftSupervisor, Label: "Shift Supervisor"},
	{Value: RoleYDP, Label: "Youth Development Professional (YDP)"},
}

// IsValidRole reports whether r is one of the fixed role options.
func IsValidRole(r Role) bool {
	for _, opt := range RoleOptions {
		if opt.Value == r {
			return true
		}
	}
	return false
}

// Respondent identifies the person completing the assessment. It lives only
// inside the owning session and is transmitted once on submission.
type Respondent struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email,max=200"`
	Role  Role   `json:"role" validate:"required,compass_role"`
}

// Complete reports whether all identity fields are filled. Submission and
// report assembly are gated on this together with a full answer set.
func (r Respondent) Complete() bool {
	return r.Name != "" && r.Email != "" && IsValidRole(r.Role)
}
