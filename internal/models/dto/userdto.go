package dto

// UserSignupRequestDTO carries a registration request. Length rules are
// deliberately not expressed as validate tags: the user service checks them in
// a fixed order so callers always see the first failing rule's message.
type UserSignupRequestDTO struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// UserResponseDTO is the public view of a user. The password hash never leaves
// the service.
type UserResponseDTO struct {
	ID       string            `json:"id"`
	Username string            `json:"username"`
	Name     string            `json:"name"`
	Blogs    []BlogResponseDTO `json:"blogs"`
}
