package data

import (
	"strings"

	"github.com/lamdoan/classdesk/internal/model"
)

// FilteredStudents applies, in order: the teacher-role class boundary,
// the selected-class filter and the free-text search. The role boundary
// comes first on purpose: it is a hard limit no user-controlled filter
// can widen.
func (m *Manager) FilteredStudents(viewer model.User, filter model.StudentFilter) []model.Student {
	students := m.Students()

	if viewer.Role == model.RoleTeacher {
		students = keep(students, func(s model.Student) bool {
			return viewer.CanAccessClass(s.ClassID)
		})
	}

	if filter.ClassID != "" {
		students = keep(students, func(s model.Student) bool {
			return s.ClassID == filter.ClassID
		})
	}

	if term := strings.ToLower(strings.TrimSpace(filter.Search)); term != "" {
		students = keep(students, func(s model.Student) bool {
			return strings.Contains(strings.ToLower(s.FullName()), term) ||
				strings.Contains(strings.ToLower(s.SaintName), term) ||
				strings.Contains(strings.ToLower(s.GivenName), term) ||
				strings.Contains(strings.ToLower(s.ID), term)
		})
	}

	return students
}

// VisibleClasses applies the same teacher-role boundary to the class
// collection.
func (m *Manager) VisibleClasses(viewer model.User) []model.Class {
	classes := m.Classes()

	if viewer.Role != model.RoleTeacher {
		return classes
	}

	out := classes[:0]
	for _, c := range classes {
		if viewer.CanAccessClass(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

func keep(students []model.Student, pred func(model.Student) bool) []model.Student {
	out := students[:0]
	for _, s := range students {
		if pred(s) {
			out = append(out, s)
		}
	}
	return out
}
