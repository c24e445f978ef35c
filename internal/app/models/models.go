package models

// RoleType defines the user role type
type RoleType string

const (
	RoleTPO RoleType = "tpo"
)

// NotificationCategory separates landing page hero banners from the important notices list
type NotificationCategory string

const (
	NotificationHero      NotificationCategory = "HERO"
	NotificationImportant NotificationCategory = "IMPORTANT"
)

// StringValue dereferences an optional string, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// IntValue dereferences an optional int, returning 0 for nil.
func IntValue(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
