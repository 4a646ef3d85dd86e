package ports

import "context"

// HealthChecker is a dependency the readiness probe asks about, such as the
// tracker stores or the remote fixture source. HealthCheck returns nil when
// the dependency can serve and must honour ctx's deadline.
type HealthChecker interface {
	Name() string
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers. CheckAll runs them and reports each
// result by checker name, nil meaning healthy.
type HealthRegistry interface {
	Register(checker HealthChecker)
	CheckAll(ctx context.Context) map[string]error
}
