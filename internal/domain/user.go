package domain

const (
	RoleFan       = "fan"
	RoleOrganizer = "organizer"
	RoleSecurity  = "security"
	RoleEmergency = "emergency"
)

type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
	FCMToken    string `json:"fcm_token,omitempty"`
}

type ProfileState string

const (
	ProfilePending   ProfileState = "pending_profile"
	ProfileResolved  ProfileState = "profile_resolved"
	ProfileDefaulted ProfileState = "profile_defaulted"
)

type BootstrapUserRequest struct {
	Email       string `json:"email" validate:"omitempty,email"`
	DisplayName string `json:"display_name" validate:"omitempty,max=128"`
}

type BootstrapResult struct {
	UserID       string       `json:"user_id"`
	Role         string       `json:"role"`
	State        ProfileState `json:"state"`
	Attempts     int          `json:"attempts"`
	Subscribed   []string     `json:"subscribed"`
	FailedTopics []string     `json:"failed_topics,omitempty"`
}
