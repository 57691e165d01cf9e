package model

// Student represents a learner registered in a catechism class.
// Identity (ID) is immutable; everything else may change.
type Student struct {
	ID          string `json:"id"`
	SaintName   string `json:"saintName"`
	FamilyName  string `json:"familyName"`
	GivenName   string `json:"givenName"`
	ClassID     string `json:"classId"`
	BirthDate   string `json:"birthDate"`
	BaptismDate string `json:"baptismDate"`
	Guardian    string `json:"guardian"`
	District    string `json:"district"`
	Phone       string `json:"phone"`
}

// FullName joins the name parts in display order.
func (s Student) FullName() string {
	switch {
	case s.FamilyName == "":
		return s.GivenName
	case s.GivenName == "":
		return s.FamilyName
	default:
		return s.FamilyName + " " + s.GivenName
	}
}

// StudentFilter encapsulates the user-controlled roster filters. Role
// scoping is not part of the filter: it is a hard boundary applied by
// the data manager before any of these.
type StudentFilter struct {
	ClassID string
	Search  string
}
