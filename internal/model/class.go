package model

// Class is a lightweight class reference. Students point at classes by
// id only; a dangling ClassID is tolerated and displayed raw.
type Class struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
