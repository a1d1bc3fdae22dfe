package constants

import "fmt"

// Role values stored on users.role and carried in the JWT.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleStaff   = "staff"
	RoleAdmin   = "admin"
)

// Role error message templates
const (
	ErrOnlyTeachersCanAccess = "Only teachers or admins may access %s."
	ErrOnlyAdminsCanAccess   = "Only admins may access %s."
	ErrOnlyStaffCanAccess    = "Only staff, teachers or admins may access %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleTeacher,
		RoleStaff,
		RoleAdmin,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RoleTeacher,
		RoleAdmin,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
