// Package demo bundles the static fallback dataset used whenever the
// backend is unreachable. It is a disconnected demo mode, not an
// authentication mechanism: the plaintext credentials below must never
// guard anything in a networked deployment.
package demo

import (
	"slices"

	"github.com/lamdoan/classdesk/internal/model"
)

var classes = []model.Class{
	{ID: "TL1A", Name: "Thiếu Nhi 1A"},
	{ID: "TL2B", Name: "Thiếu Nhi 2B"},
	{ID: "TL3A", Name: "Thiếu Nhi 3A"},
}

var students = []model.Student{
	{
		ID:          "HS001",
		SaintName:   "Maria",
		FamilyName:  "Nguyễn",
		GivenName:   "An",
		ClassID:     "TL3A",
		BirthDate:   "2014-03-12",
		BaptismDate: "2014-06-01",
		Guardian:    "Nguyễn Văn Bảy",
		District:    "Giáo khu 1",
		Phone:       "0901234567",
	},
	{
		ID:          "HS002",
		SaintName:   "Giuse",
		FamilyName:  "Trần",
		GivenName:   "Bình",
		ClassID:     "TL3A",
		BirthDate:   "2014-07-22",
		BaptismDate: "2014-10-15",
		Guardian:    "Trần Thị Hoa",
		District:    "Giáo khu 2",
		Phone:       "0907654321",
	},
	{
		ID:          "HS003",
		SaintName:   "Anna",
		FamilyName:  "Lê",
		GivenName:   "Chi",
		ClassID:     "TL2B",
		BirthDate:   "2015-01-05",
		BaptismDate: "2015-04-19",
		Guardian:    "Lê Minh Tú",
		District:    "Giáo khu 1",
		Phone:       "0912345678",
	},
	{
		ID:          "HS004",
		SaintName:   "Phêrô",
		FamilyName:  "Phạm",
		GivenName:   "Dũng",
		ClassID:     "TL1A",
		BirthDate:   "2016-09-30",
		BaptismDate: "2016-12-25",
		Guardian:    "Phạm Quốc Hùng",
		District:    "Giáo khu 3",
		Phone:       "0923456789",
	},
	{
		ID:          "HS005",
		SaintName:   "Têrêsa",
		FamilyName:  "Hoàng",
		GivenName:   "Lan",
		ClassID:     "TL2B",
		BirthDate:   "2015-11-11",
		BaptismDate: "2016-02-14",
		Guardian:    "Hoàng Thị Mai",
		District:    "Giáo khu 2",
		Phone:       "0934567890",
	},
	{
		// class was dissolved; the raw id is still displayed
		ID:          "HS006",
		SaintName:   "Đaminh",
		FamilyName:  "Vũ",
		GivenName:   "Khang",
		ClassID:     "TL4C",
		BirthDate:   "2013-05-18",
		BaptismDate: "2013-08-04",
		Guardian:    "Vũ Đức Thắng",
		District:    "Giáo khu 3",
		Phone:       "0945678901",
	},
}

var users = []model.User{
	{
		ID:              "U001",
		Email:           "admin@classdesk.local",
		FullName:        "Quản Trị Viên",
		Role:            model.RoleAdmin,
		AssignedClasses: []string{model.ClassAll},
	},
	{
		ID:              "U002",
		Email:           "glv.thao@classdesk.local",
		FullName:        "Đỗ Thu Thảo",
		Role:            model.RoleTeacher,
		AssignedClasses: []string{"TL3A"},
	},
	{
		ID:              "U003",
		Email:           "glv.nam@classdesk.local",
		FullName:        "Bùi Hải Nam",
		Role:            model.RoleTeacher,
		AssignedClasses: []string{"TL1A", "TL2B"},
	},
	{
		ID:              "U004",
		Email:           "guest@classdesk.local",
		FullName:        "Khách",
		Role:            model.RoleGuest,
		AssignedClasses: nil,
	},
}

var scores = []model.Score{
	{StudentID: "HS001", Type: model.ScoreTypeMidterm, Value: 8.5, Date: "2025-11-02"},
	{StudentID: "HS001", Type: model.ScoreTypeCatechism, Value: 9, Date: "2025-12-14"},
	{StudentID: "HS002", Type: model.ScoreTypeMidterm, Value: 7, Date: "2025-11-02"},
	{StudentID: "HS003", Type: model.ScoreTypeFinal, Value: 8, Date: "2026-05-10"},
	{StudentID: "HS005", Type: model.ScoreTypeActivity, Value: 10, Date: "2026-01-25"},
}

var passwords = map[string]string{
	"admin@classdesk.local":    "admin123",
	"glv.thao@classdesk.local": "teacher123",
	"glv.nam@classdesk.local":  "teacher123",
	"guest@classdesk.local":    "guest123",
}

// Classes returns a copy of the demo class list.
func Classes() []model.Class {
	return slices.Clone(classes)
}

// Students returns a copy of the demo student list.
func Students() []model.Student {
	return slices.Clone(students)
}

// Users returns a copy of the demo account list, passwords excluded.
func Users() []model.User {
	return slices.Clone(users)
}

// Scores returns a copy of the demo score list.
func Scores() []model.Score {
	return slices.Clone(scores)
}

// Credentials returns the offline login list. Each entry pairs a demo
// user with its plaintext demo password.
func Credentials() []model.DemoUser {
	out := make([]model.DemoUser, 0, len(users))
	for _, u := range users {
		out = append(out, model.DemoUser{User: u, Password: passwords[u.Email]})
	}
	return out
}
