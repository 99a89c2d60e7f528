package dto

// ===== Request =====
type CreateUserDTO struct {
	Username      string  `json:"username"      yaml:"username"      validate:"required,max=50"`
	DisplayName   string  `json:"displayName"   yaml:"displayName"   validate:"required,max=100"`
	Bio           string  `json:"bio"           yaml:"bio"           validate:"max=500"`
	ProfilePicURL *string `json:"profilePicUrl" yaml:"profilePicUrl"`
}
