package demoserver

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/lamdoan/classdesk/internal/demo"
	"github.com/lamdoan/classdesk/internal/model"
)

type seed struct {
	users     []model.User
	passwords map[string][]byte
	students  []model.Student
	classes   []model.Class
	scores    []model.Score
}

// buildSeed copies the demo dataset and hashes the demo passwords, so
// the running server never holds them in plaintext.
func buildSeed() (*seed, error) {
	credentials := demo.Credentials()

	passwords := make(map[string][]byte, len(credentials))
	for _, cred := range credentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(cred.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password: %w", err)
		}
		passwords[cred.Email] = hash
	}

	return &seed{
		users:     demo.Users(),
		passwords: passwords,
		students:  demo.Students(),
		classes:   demo.Classes(),
		scores:    demo.Scores(),
	}, nil
}
