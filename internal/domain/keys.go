package domain

// Gin context keys. Gin only resolves string keys through c.Value,
// so these stay plain strings.
const (
	KeyIdentity  = "identity"
	KeyRequestID = "request_id"
)

const (
	RoleCandidate = "CANDIDATE"
	RoleCompany   = "COMPANY"
)

// Identity is the decoded token attached to an authenticated request.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

func IsValidRole(role string) bool {
	return role == RoleCandidate || role == RoleCompany
}
