package model

import "context"

// AuthAPI defines the backend auth operations the session manager uses.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Logout(ctx context.Context) error
	Verify(ctx context.Context) (User, error)
	SetToken(token string) error
}

// CatalogAPI defines the backend collection fetches the data manager
// uses.
type CatalogAPI interface {
	Students(ctx context.Context) ([]Student, error)
	Users(ctx context.Context) ([]User, error)
	Classes(ctx context.Context) ([]Class, error)
	Scores(ctx context.Context) ([]Score, error)
}

// HealthAPI defines the reachability check used by the probe.
type HealthAPI interface {
	Ping(ctx context.Context) error
}
