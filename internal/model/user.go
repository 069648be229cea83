package model

// User represents a registered alumni account. Email is the identity key.
// PasswordHash holds a bcrypt digest and is never serialized.
type User struct {
	Email         string   `json:"email"`
	FullName      string   `json:"fullname"`
	PasswordHash  string   `json:"-"`
	DOB           string   `json:"dob"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Country       string   `json:"country"`
	Phone         string   `json:"phone"`
	Status        Category `json:"status"`
	Qualification string   `json:"qualification"`
	Branch        string   `json:"branch"`
	PassoutYear   string   `json:"passoutyear"`
}

// UserProfile is the reduced view returned after a successful login.
type UserProfile struct {
	Email         string   `json:"email"`
	FullName      string   `json:"fullName"`
	City          string   `json:"city"`
	Status        Category `json:"status"`
	Qualification string   `json:"qualification"`
	PassoutYear   string   `json:"passoutYear"`
}

// Profile returns the login view of a user.
func (u *User) Profile() UserProfile {
	return UserProfile{
		Email:         u.Email,
		FullName:      u.FullName,
		City:          u.City,
		Status:        u.Status,
		Qualification: u.Qualification,
		PassoutYear:   u.PassoutYear,
	}
}

// QualificationKey groups users by qualification, passout year and status.
// Struct keys keep grouping unambiguous even when a field contains the
// delimiter used in the rendered form.
type QualificationKey struct {
	Qualification string
	PassoutYear   string
	Status        Category
}

// BranchKey extends QualificationKey with the branch.
type BranchKey struct {
	Branch        string
	Qualification string
	PassoutYear   string
	Status        Category
}

// UserStats is the aggregate view computed from a full scan of users.
type UserStats struct {
	TotalUsers   int
	StatusCount  map[Category]int
	CityCount    map[string]int
	StateCount   map[string]int
	CountryCount map[string]int
	ByQualYear   map[QualificationKey]int
	ByBranchQual map[BranchKey]int
}
